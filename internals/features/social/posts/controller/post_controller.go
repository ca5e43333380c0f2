// file: internals/features/social/posts/controller/post_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/social/posts/dto"
	"jinaq_backend/internals/features/social/posts/model"
	usermodel "jinaq_backend/internals/features/users/user/model"
)

type PostController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		DB:       db,
		Validate: validator.New(),
	}
}

func (ctrl *PostController) author(c *fiber.Ctx, userID uuid.UUID) dto.AuthorResponse {
	var user usermodel.UserModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&user, "user_id = ?", userID).Error; err != nil {
		return dto.AuthorResponse{Name: "Unknown"}
	}
	return dto.AuthorFromUser(&user)
}

func (ctrl *PostController) isLikedBy(c *fiber.Ctx, postID, userID uuid.UUID) bool {
	var count int64
	ctrl.DB.WithContext(c.Context()).Model(&model.PostLikeModel{}).
		Where("post_like_post_id = ? AND post_like_user_id = ?", postID, userID).
		Count(&count)
	return count > 0
}

// GET /api/u/posts?search=&tag=&author_id=&page=&per_page=
func (ctrl *PostController) ListPosts(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.PostModel{})
	if search := c.Query("search"); search != "" {
		q = q.Where("post_content ILIKE ?", "%"+search+"%")
	}
	if tag := c.Query("tag"); tag != "" {
		q = q.Where("post_tags @> ?", pq.StringArray{tag})
	}
	if raw := c.Query("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "author_id tidak valid")
		}
		q = q.Where("post_author_id = ?", authorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	orderClause, err := p.SafeOrderClause(map[string]string{
		"created_at": "post_created_at",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var posts []model.PostModel
	if err := q.Preload("Likes").
		Preload("Comments").
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&posts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.PostSummaryResponse, 0, len(posts))
	for i := range posts {
		post := &posts[i]
		out = append(out, dto.FromPostModel(post,
			ctrl.author(c, post.PostAuthorID),
			ctrl.isLikedBy(c, post.PostID, userID)))
	}
	return helper.JsonList(c, out, helper.BuildMeta(total, p))
}

// GET /api/u/posts/:id
func (ctrl *PostController) GetPost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Likes").
		Preload("Comments").
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromPostModel(&post,
		ctrl.author(c, post.PostAuthorID),
		ctrl.isLikedBy(c, post.PostID, userID))
	return helper.JsonOK(c, "Post berhasil diambil", resp)
}

// POST /api/u/posts
func (ctrl *PostController) CreatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	post := model.PostModel{
		PostAuthorID: userID,
		PostContent:  req.Content,
		PostTags:     dto.ExtractHashtags(req.Content),
		PostMentions: dto.ExtractMentions(req.Content),
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&post).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromPostModel(&post, ctrl.author(c, userID), false)
	return helper.JsonCreated(c, "Post berhasil dibuat", resp)
}

// PATCH /api/u/posts/:id (hanya author)
func (ctrl *PostController) UpdatePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}

	var req dto.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if post.PostAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan post milik Anda")
	}

	if err := ctrl.DB.WithContext(c.Context()).Model(&post).Updates(map[string]any{
		"post_content":  req.Content,
		"post_tags":     pq.StringArray(dto.ExtractHashtags(req.Content)),
		"post_mentions": pq.StringArray(dto.ExtractMentions(req.Content)),
	}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromPostModel(&post, ctrl.author(c, userID), ctrl.isLikedBy(c, post.PostID, userID))
	return helper.JsonUpdated(c, "Post berhasil diperbarui", resp)
}

// DELETE /api/u/posts/:id (hanya author)
func (ctrl *PostController) DeletePost(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if post.PostAuthorID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Bukan post milik Anda")
	}

	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_like_post_id = ?", postID).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_comment_post_id = ?", postID).Delete(&model.PostCommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Post berhasil dihapus", fiber.Map{"id": postID})
}

// POST /api/u/posts/:id/like — toggle like
func (ctrl *PostController) ToggleLike(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	res := ctrl.DB.WithContext(c.Context()).
		Where("post_like_post_id = ? AND post_like_user_id = ?", postID, userID).
		Delete(&model.PostLikeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected > 0 {
		return helper.JsonOK(c, "Like dibatalkan", fiber.Map{"is_liked": false})
	}

	like := model.PostLikeModel{
		PostLikePostID: postID,
		PostLikeUserID: userID,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&like).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// Request paralel sudah menang, anggap sukses.
			return helper.JsonOK(c, "Post disukai", fiber.Map{"is_liked": true})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "Post disukai", fiber.Map{"is_liked": true})
}

// GET /api/u/posts/:id/comments
func (ctrl *PostController) ListComments(c *fiber.Ctx) error {
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}
	p := helper.ParseFiber(c, "created_at", "asc", helper.DefaultOpts)

	q := ctrl.DB.WithContext(c.Context()).Model(&model.PostCommentModel{}).
		Where("post_comment_post_id = ?", postID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var comments []model.PostCommentModel
	if err := q.Order("post_comment_created_at ASC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&comments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		out = append(out, dto.CommentResponse{
			ID:        cm.PostCommentID,
			Author:    ctrl.author(c, cm.PostCommentUserID),
			Content:   cm.PostCommentContent,
			CreatedAt: cm.PostCommentCreatedAt,
		})
	}
	return helper.JsonList(c, out, helper.BuildMeta(total, p))
}

// POST /api/u/posts/:id/comments
func (ctrl *PostController) SubmitComment(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	postID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID post tidak valid")
	}

	var req dto.SubmitCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var post model.PostModel
	if err := ctrl.DB.WithContext(c.Context()).
		First(&post, "post_id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Post tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	comment := model.PostCommentModel{
		PostCommentPostID:  postID,
		PostCommentUserID:  userID,
		PostCommentContent: req.Content,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.CommentResponse{
		ID:        comment.PostCommentID,
		Author:    ctrl.author(c, userID),
		Content:   comment.PostCommentContent,
		CreatedAt: comment.PostCommentCreatedAt,
	}
	return helper.JsonCreated(c, "Komentar berhasil dikirim", resp)
}
