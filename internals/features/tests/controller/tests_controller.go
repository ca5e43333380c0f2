// file: internals/features/tests/controller/tests_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/tests/dto"
	"jinaq_backend/internals/features/tests/service"
)

type TestsController struct {
	Service  *service.TestsService
	Validate *validator.Validate
}

func NewTestsController(svc *service.TestsService) *TestsController {
	return &TestsController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// GET /api/u/tests
func (ctrl *TestsController) ListTests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	summaries, err := ctrl.Service.ListTests(c.Context(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar test berhasil diambil", summaries)
}

// GET /api/u/tests/:id
func (ctrl *TestsController) GetTestDetails(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID test tidak valid")
	}

	details, err := ctrl.Service.GetTestDetails(c.Context(), userID, testID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail test berhasil diambil", details)
}

// GET /api/u/tests/:id/questions/:qid
func (ctrl *TestsController) GetQuestion(c *fiber.Ctx) error {
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID test tidak valid")
	}
	questionID, err := uuid.Parse(c.Params("qid"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	question, err := ctrl.Service.GetQuestion(c.Context(), testID, questionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Pertanyaan berhasil diambil", question)
}

// POST /api/u/tests/:id/questions/:qid
func (ctrl *TestsController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID test tidak valid")
	}
	questionID, err := uuid.Parse(c.Params("qid"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	result, err := ctrl.Service.SubmitAnswer(c.Context(), userID, testID, questionID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Jawaban berhasil disimpan", result)
}

// POST /api/u/tests/analysis
func (ctrl *TestsController) AnalyzePersonality(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	result, err := ctrl.Service.AnalyzePersonality(c.Context(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Analisis kepribadian berhasil dibuat", result)
}

// GET /api/u/tests/analysis
func (ctrl *TestsController) GetPersonalityAnalysis(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	result, err := ctrl.Service.GetPersonalityAnalysis(c.Context(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Hasil analisis kepribadian berhasil diambil", result)
}
