// file: internals/features/universities/service/universities_repository.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/universities/dto"
	"jinaq_backend/internals/features/universities/model"
)

// CountryWithCount baris hasil join countries x institutions.
type CountryWithCount struct {
	model.CountryModel
	UniversitiesCount int64
}

// Repository akses data fitur universities.
type Repository interface {
	GetCountriesWithUniversityCount(ctx context.Context) ([]CountryWithCount, error)
	GetInstitutions(ctx context.Context, filter dto.InstitutionFilter, p helper.Params) ([]model.InstitutionModel, int64, error)
	GetInstitutionByID(ctx context.Context, institutionID uuid.UUID) (*model.InstitutionModel, error)
	GetTopInstitutions(ctx context.Context, limit int) ([]model.InstitutionModel, error)

	CreateAnalysis(ctx context.Context, analysis *model.UniversitiesAnalysisModel) error
	GetLatestAnalysis(ctx context.Context, userID uuid.UUID) (*model.UniversitiesAnalysisModel, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetCountriesWithUniversityCount(ctx context.Context) ([]CountryWithCount, error) {
	var rows []CountryWithCount
	err := r.db.WithContext(ctx).
		Model(&model.CountryModel{}).
		Select("countries.*, COUNT(institutions.institution_id) AS universities_count").
		Joins("LEFT JOIN institutions ON institutions.institution_country_id = countries.country_id").
		Group("countries.country_id").
		Order("countries.country_name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *gormRepository) GetInstitutions(ctx context.Context, filter dto.InstitutionFilter, p helper.Params) ([]model.InstitutionModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.InstitutionModel{})

	if filter.CountryID != nil {
		q = q.Where("institution_country_id = ?", *filter.CountryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("institution_name ILIKE ? OR institution_short_name ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderClause, err := p.SafeOrderClause(map[string]string{
		"name":       "institution_name",
		"created_at": "institution_created_at",
	}, "name")
	if err != nil {
		return nil, 0, err
	}

	var institutions []model.InstitutionModel
	err = q.Preload("City").
		Preload("Country").
		Order(orderClause).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&institutions).Error
	return institutions, total, err
}

func (r *gormRepository) GetInstitutionByID(ctx context.Context, institutionID uuid.UUID) (*model.InstitutionModel, error) {
	var inst model.InstitutionModel
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Country").
		Preload("Majors").
		Preload("EnrollmentDocuments").
		Preload("EnrollmentRequirements").
		First(&inst, "institution_id = ?", institutionID).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *gormRepository) GetTopInstitutions(ctx context.Context, limit int) ([]model.InstitutionModel, error) {
	var institutions []model.InstitutionModel
	err := r.db.WithContext(ctx).
		Preload("City").
		Preload("Country").
		Preload("Majors").
		Preload("EnrollmentDocuments").
		Preload("EnrollmentRequirements").
		Order("institution_name ASC").
		Limit(limit).
		Find(&institutions).Error
	return institutions, err
}

func (r *gormRepository) CreateAnalysis(ctx context.Context, analysis *model.UniversitiesAnalysisModel) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *gormRepository) GetLatestAnalysis(ctx context.Context, userID uuid.UUID) (*model.UniversitiesAnalysisModel, error) {
	var analysis model.UniversitiesAnalysisModel
	err := r.db.WithContext(ctx).
		Preload("Institutes").
		Preload("Institutes.Institution").
		Preload("Institutes.Institution.City").
		Preload("Institutes.Institution.Country").
		Preload("Institutes.Attributes").
		Preload("Institutes.Plan", func(db *gorm.DB) *gorm.DB {
			return db.Order("universities_analysis_plan_order ASC")
		}).
		Where("universities_analysis_user_id = ?", userID).
		Order("universities_analysis_created_at DESC").
		First(&analysis).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
