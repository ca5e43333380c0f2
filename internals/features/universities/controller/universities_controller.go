// file: internals/features/universities/controller/universities_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/universities/dto"
	"jinaq_backend/internals/features/universities/service"
)

type UniversitiesController struct {
	Service  *service.UniversitiesService
	Validate *validator.Validate
}

func NewUniversitiesController(svc *service.UniversitiesService) *UniversitiesController {
	return &UniversitiesController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// GET /api/u/universities/countries
func (ctrl *UniversitiesController) GetCountries(c *fiber.Ctx) error {
	countries, err := ctrl.Service.GetCountries(c.Context())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Daftar negara berhasil diambil", countries)
}

// GET /api/u/universities/institutions?country_id=&search=&page=&per_page=
func (ctrl *UniversitiesController) ListInstitutions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "name", "asc", helper.DefaultOpts)

	filter := dto.InstitutionFilter{
		Search: c.Query("search"),
	}
	if raw := c.Query("country_id"); raw != "" {
		countryID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "country_id tidak valid")
		}
		filter.CountryID = &countryID
	}

	institutions, meta, err := ctrl.Service.ListInstitutions(c.Context(), filter, p)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, institutions, meta)
}

// GET /api/u/universities/institutions/:id
func (ctrl *UniversitiesController) GetInstitution(c *fiber.Ctx) error {
	institutionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID institusi tidak valid")
	}

	inst, err := ctrl.Service.GetInstitution(c.Context(), institutionID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Detail institusi berhasil diambil", inst)
}

// POST /api/u/universities/analysis
func (ctrl *UniversitiesController) CreateAnalysis(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnalysisRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
		}
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	result, err := ctrl.Service.CreateAnalysis(c.Context(), userID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Analisis universitas berhasil dibuat", result)
}

// GET /api/u/universities/analysis
func (ctrl *UniversitiesController) GetLatestAnalysis(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	result, err := ctrl.Service.GetLatestAnalysis(c.Context(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Hasil analisis universitas berhasil diambil", result)
}
