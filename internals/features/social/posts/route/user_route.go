// file: internals/features/social/posts/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/social/posts/controller"
)

// PostsUserRoutes mendaftarkan seluruh endpoint post untuk user login.
// Base path: /api/u
func PostsUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPostController(db)

	posts := user.Group("/posts")
	posts.Get("/", ctrl.ListPosts)
	posts.Post("/", ctrl.CreatePost)
	posts.Get("/:id", ctrl.GetPost)
	posts.Patch("/:id", ctrl.UpdatePost)
	posts.Delete("/:id", ctrl.DeletePost)
	posts.Post("/:id/like", ctrl.ToggleLike)
	posts.Get("/:id/comments", ctrl.ListComments)
	posts.Post("/:id/comments", ctrl.SubmitComment)
}
