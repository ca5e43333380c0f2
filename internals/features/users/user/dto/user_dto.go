// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"jinaq_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type UserAcademicResponse struct {
	GPA   *float64 `json:"gpa"`
	SAT   *int     `json:"sat"`
	IELTS *float64 `json:"ielts"`
	TOEFL *int     `json:"toefl"`
}

type UserLanguageResponse struct {
	Language string              `json:"language"`
	Level    model.LanguageLevel `json:"level"`
}

type UserProfileResponse struct {
	ID                    string                 `json:"id"`
	FirstName             string                 `json:"first_name"`
	LastName              string                 `json:"last_name"`
	Email                 string                 `json:"email"`
	Username              string                 `json:"username"`
	DateOfBirth           *time.Time             `json:"date_of_birth"`
	BioAbout              string                 `json:"bio_about"`
	Interests             []string               `json:"interests"`
	AcademicInfo          *UserAcademicResponse  `json:"academic_info"`
	LanguageProficiencies []UserLanguageResponse `json:"language_proficiencies"`
}

func FromUserModel(u *model.UserModel) UserProfileResponse {
	resp := UserProfileResponse{
		ID:                    u.UserID.String(),
		FirstName:             u.UserFirstName,
		LastName:              u.UserLastName,
		Email:                 u.UserEmail,
		Username:              u.UserUsername,
		DateOfBirth:           u.UserDateOfBirth,
		BioAbout:              u.UserBioAbout,
		Interests:             u.UserInterests,
		LanguageProficiencies: make([]UserLanguageResponse, 0, len(u.LanguageProficiencies)),
	}
	if u.AcademicInfo != nil {
		resp.AcademicInfo = &UserAcademicResponse{
			GPA:   u.AcademicInfo.UserAcademicGPA,
			SAT:   u.AcademicInfo.UserAcademicSAT,
			IELTS: u.AcademicInfo.UserAcademicIELTS,
			TOEFL: u.AcademicInfo.UserAcademicTOEFL,
		}
	}
	for _, lp := range u.LanguageProficiencies {
		resp.LanguageProficiencies = append(resp.LanguageProficiencies, UserLanguageResponse{
			Language: lp.UserLanguageName,
			Level:    lp.UserLanguageLevel,
		})
	}
	return resp
}

/* =======================================================
   REQUEST DTO
   ======================================================= */

type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,max=100"`
	Level    string `json:"level" validate:"required,oneof=NATIVE FLUENT BEGINNER"`
}

type UpdateAcademicRequest struct {
	GPA   *float64 `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	SAT   *int     `json:"sat" validate:"omitempty,gte=400,lte=1600"`
	IELTS *float64 `json:"ielts" validate:"omitempty,gte=0,lte=9"`
	TOEFL *int     `json:"toefl" validate:"omitempty,gte=0,lte=120"`
}

// UpdateProfileRequest: semua field opsional, hanya yang dikirim yang diubah.
type UpdateProfileRequest struct {
	FirstName   *string                  `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string                  `json:"last_name" validate:"omitempty,max=100"`
	DateOfBirth *time.Time               `json:"date_of_birth"`
	BioAbout    *string                  `json:"bio_about" validate:"omitempty,max=2000"`
	Interests   *[]string                `json:"interests" validate:"omitempty,dive,max=50"`
	Academic    *UpdateAcademicRequest   `json:"academic_info"`
	Languages   *[]UpdateLanguageRequest `json:"language_proficiencies" validate:"omitempty,dive"`
}
