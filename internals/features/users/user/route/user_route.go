// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/users/user/controller"
	"jinaq_backend/internals/features/users/user/service"
)

// UserRoutes: endpoint profil user login (prefix /api/u).
func UserRoutes(user fiber.Router, db *gorm.DB) {
	repo := service.NewRepository(db)
	svc := service.NewUserService(repo)
	ctrl := controller.NewUserController(svc)

	users := user.Group("/users")
	users.Get("/me", ctrl.GetProfile)
	users.Patch("/me", ctrl.UpdateProfile)
}
