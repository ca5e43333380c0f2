// file: internals/features/users/user/service/user_service.go
package service

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/users/user/dto"
	"jinaq_backend/internals/features/users/user/model"
)

/* =======================================================
   REPOSITORY
   ======================================================= */

// Repository akses data user + profil pendukung analisis.
type Repository interface {
	// GetByID muat user lengkap dengan academic info + bahasa.
	GetByID(ctx context.Context, userID uuid.UUID) (*model.UserModel, error)
	UpdateColumns(ctx context.Context, userID uuid.UUID, cols map[string]any) error
	UpsertAcademic(ctx context.Context, academic *model.UserAcademicModel) error
	ReplaceLanguages(ctx context.Context, userID uuid.UUID, languages []model.UserLanguageProficiencyModel) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetByID(ctx context.Context, userID uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	err := r.db.WithContext(ctx).
		Preload("AcademicInfo").
		Preload("LanguageProficiencies").
		First(&user, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *gormRepository) UpdateColumns(ctx context.Context, userID uuid.UUID, cols map[string]any) error {
	if len(cols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&model.UserModel{}).
		Where("user_id = ?", userID).
		Updates(cols).Error
}

func (r *gormRepository) UpsertAcademic(ctx context.Context, academic *model.UserAcademicModel) error {
	var existing model.UserAcademicModel
	err := r.db.WithContext(ctx).
		Where("user_academic_user_id = ?", academic.UserAcademicUserID).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.WithContext(ctx).Create(academic).Error
	}
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&existing).Updates(map[string]any{
		"user_academic_gpa":   academic.UserAcademicGPA,
		"user_academic_sat":   academic.UserAcademicSAT,
		"user_academic_ielts": academic.UserAcademicIELTS,
		"user_academic_toefl": academic.UserAcademicTOEFL,
	}).Error
}

func (r *gormRepository) ReplaceLanguages(ctx context.Context, userID uuid.UUID, languages []model.UserLanguageProficiencyModel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_language_user_id = ?", userID).
			Delete(&model.UserLanguageProficiencyModel{}).Error; err != nil {
			return err
		}
		if len(languages) == 0 {
			return nil
		}
		return tx.Create(&languages).Error
	})
}

/* =======================================================
   SERVICE
   ======================================================= */

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	resp := dto.FromUserModel(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return nil, err
	}

	cols := map[string]any{}
	if req.FirstName != nil {
		cols["user_first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		cols["user_last_name"] = *req.LastName
	}
	if req.DateOfBirth != nil {
		cols["user_date_of_birth"] = *req.DateOfBirth
	}
	if req.BioAbout != nil {
		cols["user_bio_about"] = *req.BioAbout
	}
	if req.Interests != nil {
		cols["user_interests"] = pq.StringArray(*req.Interests)
	}
	if err := s.repo.UpdateColumns(ctx, userID, cols); err != nil {
		return nil, err
	}

	if req.Academic != nil {
		academic := &model.UserAcademicModel{
			UserAcademicUserID: userID,
			UserAcademicGPA:    req.Academic.GPA,
			UserAcademicSAT:    req.Academic.SAT,
			UserAcademicIELTS:  req.Academic.IELTS,
			UserAcademicTOEFL:  req.Academic.TOEFL,
		}
		if err := s.repo.UpsertAcademic(ctx, academic); err != nil {
			return nil, err
		}
	}

	if req.Languages != nil {
		languages := make([]model.UserLanguageProficiencyModel, 0, len(*req.Languages))
		for _, l := range *req.Languages {
			languages = append(languages, model.UserLanguageProficiencyModel{
				UserLanguageUserID: userID,
				UserLanguageName:   l.Language,
				UserLanguageLevel:  model.LanguageLevel(l.Level),
			})
		}
		if err := s.repo.ReplaceLanguages(ctx, userID, languages); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}

/* =======================================================
   SERIALISASI PROFIL UNTUK LLM
   ======================================================= */

// SerializeProfile bentuk profil user untuk prompt analisis universitas.
func SerializeProfile(u *model.UserModel) map[string]any {
	profile := map[string]any{
		"first_name": u.UserFirstName,
		"last_name":  u.UserLastName,
		"email":      u.UserEmail,
		"username":   u.UserUsername,
		"interests":  []string(u.UserInterests),
	}
	if u.UserDateOfBirth != nil {
		profile["date_of_birth"] = u.UserDateOfBirth.Format("2006-01-02")
	} else {
		profile["date_of_birth"] = nil
	}
	if u.AcademicInfo != nil {
		profile["academic_info"] = map[string]any{
			"gpa":   u.AcademicInfo.UserAcademicGPA,
			"sat":   u.AcademicInfo.UserAcademicSAT,
			"ielts": u.AcademicInfo.UserAcademicIELTS,
			"toefl": u.AcademicInfo.UserAcademicTOEFL,
		}
	} else {
		profile["academic_info"] = nil
	}
	languages := make([]map[string]any, 0, len(u.LanguageProficiencies))
	for _, lp := range u.LanguageProficiencies {
		languages = append(languages, map[string]any{
			"language": lp.UserLanguageName,
			"level":    lp.UserLanguageLevel.String(),
		})
	}
	profile["language_proficiencies"] = languages
	return profile
}
