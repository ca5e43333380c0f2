// file: internals/features/social/posts/model/post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
	=============================================================================
	  MODEL: posts
	  Tags & mentions diekstrak dari konten saat create/update.

=============================================================================
*/
type PostModel struct {
	// PK
	PostID uuid.UUID `json:"post_id" gorm:"column:post_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	PostAuthorID uuid.UUID `json:"post_author_id" gorm:"column:post_author_id;type:uuid;not null;index:idx_posts_author"`

	// Data
	PostContent  string         `json:"post_content" gorm:"column:post_content;type:text;not null"`
	PostTags     pq.StringArray `json:"post_tags" gorm:"column:post_tags;type:text[]"`
	PostMentions pq.StringArray `json:"post_mentions" gorm:"column:post_mentions;type:text[]"`

	// Timestamps
	PostCreatedAt time.Time `json:"post_created_at" gorm:"column:post_created_at;autoCreateTime;index:idx_posts_created_at,sort:desc"`
	PostUpdatedAt time.Time `json:"post_updated_at" gorm:"column:post_updated_at;autoUpdateTime"`

	// Relasi
	Likes    []PostLikeModel    `json:"likes,omitempty" gorm:"foreignKey:PostLikePostID;references:PostID"`
	Comments []PostCommentModel `json:"comments,omitempty" gorm:"foreignKey:PostCommentPostID;references:PostID"`
}

func (PostModel) TableName() string { return "posts" }

/*
	=============================================================================
	  MODEL: post_likes (unik per (post, user) — like itu toggle)

=============================================================================
*/
type PostLikeModel struct {
	PostLikeID     uuid.UUID `json:"post_like_id" gorm:"column:post_like_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PostLikePostID uuid.UUID `json:"post_like_post_id" gorm:"column:post_like_post_id;type:uuid;not null;uniqueIndex:uq_post_likes_post_user,priority:1"`
	PostLikeUserID uuid.UUID `json:"post_like_user_id" gorm:"column:post_like_user_id;type:uuid;not null;uniqueIndex:uq_post_likes_post_user,priority:2"`

	PostLikeCreatedAt time.Time `json:"post_like_created_at" gorm:"column:post_like_created_at;autoCreateTime"`
}

func (PostLikeModel) TableName() string { return "post_likes" }

/*
	=============================================================================
	  MODEL: post_comments

=============================================================================
*/
type PostCommentModel struct {
	PostCommentID     uuid.UUID `json:"post_comment_id" gorm:"column:post_comment_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PostCommentPostID uuid.UUID `json:"post_comment_post_id" gorm:"column:post_comment_post_id;type:uuid;not null;index:idx_post_comments_post"`
	PostCommentUserID uuid.UUID `json:"post_comment_user_id" gorm:"column:post_comment_user_id;type:uuid;not null"`

	PostCommentContent string `json:"post_comment_content" gorm:"column:post_comment_content;type:text;not null"`

	PostCommentCreatedAt time.Time `json:"post_comment_created_at" gorm:"column:post_comment_created_at;autoCreateTime"`
}

func (PostCommentModel) TableName() string { return "post_comments" }
