// file: internals/features/universities/service/universities_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jinaq_backend/internals/configs"
	"jinaq_backend/internals/features/universities/dto"
	"jinaq_backend/internals/features/universities/model"
	usermodel "jinaq_backend/internals/features/users/user/model"
	userservice "jinaq_backend/internals/features/users/user/service"
	helper "jinaq_backend/internals/helpers"
	"jinaq_backend/internals/llm"
)

// UserLoader subset repository user yang dibutuhkan analisis (profil lengkap).
type UserLoader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*usermodel.UserModel, error)
}

type UniversitiesService struct {
	repo     Repository
	users    UserLoader
	provider llm.Provider
}

func NewUniversitiesService(repo Repository, users UserLoader, provider llm.Provider) *UniversitiesService {
	return &UniversitiesService{repo: repo, users: users, provider: provider}
}

// GetCountries daftar negara + jumlah institusi per negara.
func (s *UniversitiesService) GetCountries(ctx context.Context) ([]dto.CountryWithCountResponse, error) {
	rows, err := s.repo.GetCountriesWithUniversityCount(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CountryWithCountResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CountryWithCountResponse{
			CountryResponse: dto.CountryResponse{
				ID:    row.CountryID,
				Name:  row.CountryName,
				Emoji: row.CountryEmoji,
			},
			UniversitiesCount: row.UniversitiesCount,
		})
	}
	return out, nil
}

// ListInstitutions daftar institusi terfilter + meta pagination.
func (s *UniversitiesService) ListInstitutions(ctx context.Context, filter dto.InstitutionFilter, p helper.Params) ([]dto.InstitutionResponse, helper.Meta, error) {
	institutions, total, err := s.repo.GetInstitutions(ctx, filter, p)
	if err != nil {
		return nil, helper.Meta{}, err
	}
	out := make([]dto.InstitutionResponse, 0, len(institutions))
	for i := range institutions {
		out = append(out, dto.FromInstitutionModel(&institutions[i]))
	}
	return out, helper.BuildMeta(total, p), nil
}

// GetInstitution detail satu institusi (majors, dokumen, syarat).
func (s *UniversitiesService) GetInstitution(ctx context.Context, institutionID uuid.UUID) (*dto.InstitutionDetailsResponse, error) {
	inst, err := s.repo.GetInstitutionByID(ctx, institutionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Institusi tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	resp := dto.FromInstitutionModelDetailed(inst)
	return &resp, nil
}

// CreateAnalysis analisis peluang masuk: profil user + daftar institusi
// (pilihan user atau default top-N) dikirim ke LLM, hasil valid dipersist
// sebagai aggregate baru. Kegagalan LLM/validasi = 503, tidak ada yang
// dipersist.
func (s *UniversitiesService) CreateAnalysis(ctx context.Context, userID uuid.UUID, req dto.CreateAnalysisRequest) (*dto.UniversityAnalysisResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}

	var institutions []model.InstitutionModel
	if len(req.InstitutionIDs) > 0 {
		for _, id := range req.InstitutionIDs {
			inst, err := s.repo.GetInstitutionByID(ctx, id)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "Institusi tidak ditemukan")
			}
			if err != nil {
				return nil, err
			}
			institutions = append(institutions, *inst)
		}
	} else {
		institutions, err = s.repo.GetTopInstitutions(ctx, configs.MaxUniversities)
		if err != nil {
			return nil, err
		}
	}
	if len(institutions) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tidak ada institusi untuk dianalisis")
	}

	profile := userservice.SerializeProfile(user)
	universitiesData := make([]map[string]any, 0, len(institutions))
	byID := make(map[uuid.UUID]*model.InstitutionModel, len(institutions))
	for i := range institutions {
		inst := &institutions[i]
		byID[inst.InstitutionID] = inst
		universitiesData = append(universitiesData, serializeInstitution(inst))
	}

	llmReq, err := llm.BuildUniversityAnalysisRequest(profile, universitiesData)
	if err != nil {
		return nil, err
	}
	llmReq.MaxTokens = configs.LLMMaxTokens

	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		log.Printf("[ERROR] Analisis universitas user %s gagal: %v", userID, err)
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan analisis sedang tidak tersedia")
	}

	var payload dto.UniversityAnalysisPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		log.Printf("[ERROR] Gagal decode hasil analisis universitas: %v", err)
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan analisis sedang tidak tersedia")
	}

	analysis := &model.UniversitiesAnalysisModel{
		UniversitiesAnalysisUserID: userID,
	}
	for _, item := range payload.Institutes {
		instID, err := uuid.Parse(item.InstitutionID)
		if err != nil {
			log.Printf("[ERROR] institution_id tidak valid dari LLM: %q", item.InstitutionID)
			continue
		}
		inst, ok := byID[instID]
		if !ok {
			log.Printf("[ERROR] institution_id %s tidak ada di daftar yang dianalisis", instID)
			continue
		}

		entry := model.UniversitiesAnalysisInstituteModel{
			UAInstituteInstitutionID:    inst.InstitutionID,
			UAInstituteChancePercentage: item.ChancePercentage,
		}
		for _, a := range item.Attributes {
			entry.Attributes = append(entry.Attributes, model.UniversitiesAnalysisAttributeModel{
				UAAttributeName:           a.Name,
				UAAttributeType:           model.AnalysisAttributeType(a.Type),
				UAAttributeRecommendation: a.Recommendation,
			})
		}
		for _, p := range item.Plan {
			entry.Plan = append(entry.Plan, model.UniversitiesAnalysisPlanModel{
				UAPlanOrder:         p.Order,
				UAPlanName:          p.Name,
				UAPlanDescription:   p.Description,
				UAPlanDurationMonth: p.DurationMonth,
			})
		}
		analysis.Institutes = append(analysis.Institutes, entry)
	}

	if len(analysis.Institutes) == 0 {
		log.Printf("[ERROR] Hasil analisis universitas tidak memuat satu pun institusi yang diminta")
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan analisis sedang tidak tersedia")
	}

	if err := s.repo.CreateAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	// Lengkapi relasi institusi untuk response tanpa query ulang.
	for i := range analysis.Institutes {
		analysis.Institutes[i].Institution = byID[analysis.Institutes[i].UAInstituteInstitutionID]
	}

	result := dto.FromUniversitiesAnalysisModel(analysis)
	return &result, nil
}

// GetLatestAnalysis hasil analisis terbaru user.
func (s *UniversitiesService) GetLatestAnalysis(ctx context.Context, userID uuid.UUID) (*dto.UniversityAnalysisResponse, error) {
	analysis, err := s.repo.GetLatestAnalysis(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada hasil analisis universitas")
	}
	if err != nil {
		return nil, err
	}
	result := dto.FromUniversitiesAnalysisModel(analysis)
	return &result, nil
}

// serializeInstitution bentuk data institusi untuk prompt LLM.
// institution_id ikut dikirim dan wajib di-echo oleh model.
func serializeInstitution(inst *model.InstitutionModel) map[string]any {
	data := map[string]any{
		"institution_id":  inst.InstitutionID.String(),
		"name":            inst.InstitutionName,
		"short_name":      inst.InstitutionShortName,
		"description":     inst.InstitutionDescription,
		"foundation_year": inst.InstitutionFoundationYear,
		"financing_type":  inst.InstitutionFinancingType.String(),
		"type":            inst.InstitutionType.String(),
		"website":         inst.InstitutionWebsite,
		"email":           inst.InstitutionEmail,
		"contact_number":  inst.InstitutionContactNumber,
		"address":         inst.InstitutionAddress,
		"has_dorm":        inst.InstitutionHasDorm,
	}
	if inst.City != nil {
		data["city"] = inst.City.CityName
	}
	if inst.Country != nil {
		data["country"] = inst.Country.CountryName
	}

	majors := make([]map[string]any, 0, len(inst.Majors))
	for _, m := range inst.Majors {
		majors = append(majors, map[string]any{
			"name":              m.MajorName,
			"duration_years":    m.MajorDurationYears,
			"learning_language": m.MajorLearningLanguage,
			"description":       m.MajorDescription,
			"price":             m.MajorPrice,
			"category":          m.MajorCategory.String(),
		})
	}
	data["majors"] = majors

	docs := make([]string, 0, len(inst.EnrollmentDocuments))
	for _, d := range inst.EnrollmentDocuments {
		docs = append(docs, d.EnrollmentDocName)
	}
	data["enrollment_documents"] = docs

	reqs := make([]map[string]any, 0, len(inst.EnrollmentRequirements))
	for _, r := range inst.EnrollmentRequirements {
		reqs = append(reqs, map[string]any{
			"name":  r.EnrollmentReqName,
			"type":  r.EnrollmentReqType.String(),
			"value": r.EnrollmentReqValue,
		})
	}
	data["enrollment_requirements"] = reqs

	return data
}
