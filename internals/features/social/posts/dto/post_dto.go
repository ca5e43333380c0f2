// file: internals/features/social/posts/dto/post_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"jinaq_backend/internals/features/social/posts/model"
	usermodel "jinaq_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type PostSummaryResponse struct {
	ID        uuid.UUID      `json:"id"`
	Author    AuthorResponse `json:"author"`
	Content   string         `json:"content"`
	Tags      []string       `json:"tags"`
	Mentions  []string       `json:"mentions"`
	Likes     int            `json:"likes"`
	Comments  int            `json:"comments"`
	IsLiked   bool           `json:"is_liked"`
	CreatedAt time.Time      `json:"created_at"`
}

type CommentResponse struct {
	ID        uuid.UUID      `json:"id"`
	Author    AuthorResponse `json:"author"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}

/* =======================================================
   REQUEST DTO
   ======================================================= */

type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type UpdatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type SubmitCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=2000"`
}

/* =======================================================
   CONVERTER
   ======================================================= */

func AuthorFromUser(u *usermodel.UserModel) AuthorResponse {
	if u == nil {
		return AuthorResponse{Name: "Unknown"}
	}
	return AuthorResponse{
		ID:   u.UserID,
		Name: strings.TrimSpace(u.UserFirstName + " " + u.UserLastName),
	}
}

func FromPostModel(p *model.PostModel, author AuthorResponse, isLiked bool) PostSummaryResponse {
	return PostSummaryResponse{
		ID:        p.PostID,
		Author:    author,
		Content:   p.PostContent,
		Tags:      p.PostTags,
		Mentions:  p.PostMentions,
		Likes:     len(p.Likes),
		Comments:  len(p.Comments),
		IsLiked:   isLiked,
		CreatedAt: p.PostCreatedAt,
	}
}

/* =======================================================
   EKSTRAKSI TAG & MENTION
   ======================================================= */

var (
	hashtagRe = regexp.MustCompile(`#(\w+)`)
	mentionRe = regexp.MustCompile(`@(\w+)`)
)

// ExtractHashtags ambil semua #tag unik dari konten (tanpa '#').
func ExtractHashtags(content string) []string {
	return extractUnique(hashtagRe, content)
}

// ExtractMentions ambil semua @username unik dari konten (tanpa '@').
func ExtractMentions(content string) []string {
	return extractUnique(mentionRe, content)
}

func extractUnique(re *regexp.Regexp, content string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		tag := strings.ToLower(m[1])
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}
