// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/users/user/dto"
	"jinaq_backend/internals/features/users/user/service"
)

type UserController struct {
	Service  *service.UserService
	Validate *validator.Validate
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{
		Service:  svc,
		Validate: validator.New(),
	}
}

// GET /api/u/users/me
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	profile, err := ctrl.Service.GetProfile(c.Context(), userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Profil berhasil diambil", profile)
}

// PATCH /api/u/users/me
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	profile, err := ctrl.Service.UpdateProfile(c.Context(), userID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Profil berhasil diperbarui", profile)
}
