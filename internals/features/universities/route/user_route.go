// file: internals/features/universities/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/universities/controller"
	"jinaq_backend/internals/features/universities/service"
	userservice "jinaq_backend/internals/features/users/user/service"
	"jinaq_backend/internals/llm"
	"jinaq_backend/internals/middlewares"
)

// UniversitiesUserRoutes: endpoint universitas untuk user login (prefix /api/u).
func UniversitiesUserRoutes(user fiber.Router, db *gorm.DB, provider llm.Provider) {
	repo := service.NewRepository(db)
	users := userservice.NewRepository(db)
	svc := service.NewUniversitiesService(repo, users, provider)
	ctrl := controller.NewUniversitiesController(svc)

	universities := user.Group("/universities")

	universities.Get("/countries", ctrl.GetCountries)
	universities.Get("/institutions", ctrl.ListInstitutions)
	universities.Get("/institutions/:id", ctrl.GetInstitution)

	// Endpoint LLM dibatasi rate limiter khusus.
	universities.Post("/analysis", middlewares.AnalysisRateLimiter(), ctrl.CreateAnalysis)
	universities.Get("/analysis", ctrl.GetLatestAnalysis)
}
