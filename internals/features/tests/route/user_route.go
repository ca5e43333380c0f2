// file: internals/features/tests/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/tests/controller"
	"jinaq_backend/internals/features/tests/service"
	"jinaq_backend/internals/llm"
	"jinaq_backend/internals/middlewares"
)

// TestsUserRoutes: endpoint test untuk user login (prefix /api/u).
func TestsUserRoutes(user fiber.Router, db *gorm.DB, provider llm.Provider) {
	repo := service.NewRepository(db)
	svc := service.NewTestsService(repo, provider)
	ctrl := controller.NewTestsController(svc)

	tests := user.Group("/tests")

	// Endpoint LLM dibatasi rate limiter khusus.
	tests.Post("/analysis", middlewares.AnalysisRateLimiter(), ctrl.AnalyzePersonality)
	tests.Get("/analysis", ctrl.GetPersonalityAnalysis)

	tests.Get("/", ctrl.ListTests)
	tests.Get("/:id", ctrl.GetTestDetails)
	tests.Get("/:id/questions/:qid", ctrl.GetQuestion)
	tests.Post("/:id/questions/:qid", ctrl.SubmitAnswer)
}
