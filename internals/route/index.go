// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "jinaq_backend/internals/middlewares/auth"

	"jinaq_backend/internals/llm"

	postsRoute "jinaq_backend/internals/features/social/posts/route"
	testsRoute "jinaq_backend/internals/features/tests/route"
	universitiesRoute "jinaq_backend/internals/features/universities/route"
	usersRoute "jinaq_backend/internals/features/users/user/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, provider llm.Provider) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// PRIVATE (USER) → wajib JWT
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	usersRoute.UserRoutes(private, db)

	log.Println("[INFO] Mounting Tests routes...")
	testsRoute.TestsUserRoutes(private, db, provider)

	log.Println("[INFO] Mounting Universities routes...")
	universitiesRoute.UniversitiesUserRoutes(private, db, provider)

	log.Println("[INFO] Mounting Posts routes...")
	postsRoute.PostsUserRoutes(private, db)

	public.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
