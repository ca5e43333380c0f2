// file: internals/features/universities/dto/universities_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"jinaq_backend/internals/features/universities/model"
)

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type CountryResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Emoji string    `json:"emoji"`
}

// CountryWithCountResponse negara + jumlah institusi di dalamnya.
type CountryWithCountResponse struct {
	CountryResponse
	UniversitiesCount int64 `json:"universities_count"`
}

type CityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type InstitutionResponse struct {
	ID             uuid.UUID                      `json:"id"`
	Name           string                         `json:"name"`
	ShortName      string                         `json:"short_name"`
	Description    string                         `json:"description"`
	FoundationYear string                         `json:"foundation_year"`
	FinancingType  model.InstitutionFinancingType `json:"financing_type"`
	Type           model.InstitutionType          `json:"type"`
	Website        string                         `json:"website"`
	Email          string                         `json:"email"`
	ContactNumber  string                         `json:"contact_number"`
	City           *CityResponse                  `json:"city"`
	Country        *CountryResponse               `json:"country"`
	Address        string                         `json:"address"`
	HasDorm        bool                           `json:"has_dorm"`
	ImageURL       string                         `json:"image_url"`
}

type InstitutionMajorResponse struct {
	ID               uuid.UUID                      `json:"id"`
	Name             string                         `json:"name"`
	DurationYears    int                            `json:"duration_years"`
	LearningLanguage string                         `json:"learning_language"`
	Description      string                         `json:"description"`
	Price            float64                        `json:"price"`
	Category         model.InstitutionMajorCategory `json:"category"`
}

type EnrollmentDocumentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type EnrollmentRequirementResponse struct {
	ID    uuid.UUID                       `json:"id"`
	Name  string                          `json:"name"`
	Type  model.EnrollmentRequirementType `json:"type"`
	Value string                          `json:"value"`
}

type InstitutionDetailsResponse struct {
	InstitutionResponse
	Majors                 []InstitutionMajorResponse      `json:"majors"`
	EnrollmentDocuments    []EnrollmentDocumentResponse    `json:"enrollment_documents"`
	EnrollmentRequirements []EnrollmentRequirementResponse `json:"enrollment_requirements"`
}

type AnalysisAttributeResponse struct {
	Name           string                      `json:"name"`
	Type           model.AnalysisAttributeType `json:"type"`
	Recommendation string                      `json:"recommendation"`
}

type AnalysisPlanResponse struct {
	Order         int    `json:"order"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	DurationMonth int    `json:"duration_month"`
}

type AnalysisInstituteResponse struct {
	Institution      *InstitutionResponse        `json:"institution"`
	ChancePercentage float64                     `json:"chance_percentage"`
	Attributes       []AnalysisAttributeResponse `json:"attributes"`
	Plan             []AnalysisPlanResponse      `json:"plan"`
}

type UniversityAnalysisResponse struct {
	ID         uuid.UUID                   `json:"id"`
	CreatedAt  time.Time                   `json:"created_at"`
	Institutes []AnalysisInstituteResponse `json:"institutes"`
}

/* =======================================================
   REQUEST DTO
   ======================================================= */

// CreateAnalysisRequest: kosong = pakai institusi default (top-N).
type CreateAnalysisRequest struct {
	InstitutionIDs []uuid.UUID `json:"institution_ids" validate:"omitempty,max=10"`
}

// InstitutionFilter query-param filter daftar institusi.
type InstitutionFilter struct {
	CountryID *uuid.UUID
	Search    string
}

/* =======================================================
   CONVERTER (model -> DTO)
   ======================================================= */

func FromInstitutionModel(m *model.InstitutionModel) InstitutionResponse {
	resp := InstitutionResponse{
		ID:             m.InstitutionID,
		Name:           m.InstitutionName,
		ShortName:      m.InstitutionShortName,
		Description:    m.InstitutionDescription,
		FoundationYear: m.InstitutionFoundationYear,
		FinancingType:  m.InstitutionFinancingType,
		Type:           m.InstitutionType,
		Website:        m.InstitutionWebsite,
		Email:          m.InstitutionEmail,
		ContactNumber:  m.InstitutionContactNumber,
		Address:        m.InstitutionAddress,
		HasDorm:        m.InstitutionHasDorm,
		ImageURL:       m.InstitutionImageURL,
	}
	if m.City != nil {
		resp.City = &CityResponse{ID: m.City.CityID, Name: m.City.CityName}
	}
	if m.Country != nil {
		resp.Country = &CountryResponse{
			ID:    m.Country.CountryID,
			Name:  m.Country.CountryName,
			Emoji: m.Country.CountryEmoji,
		}
	}
	return resp
}

func FromInstitutionModelDetailed(m *model.InstitutionModel) InstitutionDetailsResponse {
	resp := InstitutionDetailsResponse{
		InstitutionResponse:    FromInstitutionModel(m),
		Majors:                 make([]InstitutionMajorResponse, 0, len(m.Majors)),
		EnrollmentDocuments:    make([]EnrollmentDocumentResponse, 0, len(m.EnrollmentDocuments)),
		EnrollmentRequirements: make([]EnrollmentRequirementResponse, 0, len(m.EnrollmentRequirements)),
	}
	for _, mj := range m.Majors {
		resp.Majors = append(resp.Majors, InstitutionMajorResponse{
			ID:               mj.MajorID,
			Name:             mj.MajorName,
			DurationYears:    mj.MajorDurationYears,
			LearningLanguage: mj.MajorLearningLanguage,
			Description:      mj.MajorDescription,
			Price:            mj.MajorPrice,
			Category:         mj.MajorCategory,
		})
	}
	for _, doc := range m.EnrollmentDocuments {
		resp.EnrollmentDocuments = append(resp.EnrollmentDocuments, EnrollmentDocumentResponse{
			ID:   doc.EnrollmentDocID,
			Name: doc.EnrollmentDocName,
		})
	}
	for _, req := range m.EnrollmentRequirements {
		resp.EnrollmentRequirements = append(resp.EnrollmentRequirements, EnrollmentRequirementResponse{
			ID:    req.EnrollmentReqID,
			Name:  req.EnrollmentReqName,
			Type:  req.EnrollmentReqType,
			Value: req.EnrollmentReqValue,
		})
	}
	return resp
}

func FromUniversitiesAnalysisModel(m *model.UniversitiesAnalysisModel) UniversityAnalysisResponse {
	resp := UniversityAnalysisResponse{
		ID:         m.UniversitiesAnalysisID,
		CreatedAt:  m.UniversitiesAnalysisCreatedAt,
		Institutes: make([]AnalysisInstituteResponse, 0, len(m.Institutes)),
	}
	for i := range m.Institutes {
		inst := &m.Institutes[i]
		item := AnalysisInstituteResponse{
			ChancePercentage: inst.UAInstituteChancePercentage,
			Attributes:       make([]AnalysisAttributeResponse, 0, len(inst.Attributes)),
			Plan:             make([]AnalysisPlanResponse, 0, len(inst.Plan)),
		}
		if inst.Institution != nil {
			ir := FromInstitutionModel(inst.Institution)
			item.Institution = &ir
		}
		for _, a := range inst.Attributes {
			item.Attributes = append(item.Attributes, AnalysisAttributeResponse{
				Name:           a.UAAttributeName,
				Type:           a.UAAttributeType,
				Recommendation: a.UAAttributeRecommendation,
			})
		}
		for _, p := range inst.Plan {
			item.Plan = append(item.Plan, AnalysisPlanResponse{
				Order:         p.UAPlanOrder,
				Name:          p.UAPlanName,
				Description:   p.UAPlanDescription,
				DurationMonth: p.UAPlanDurationMonth,
			})
		}
		resp.Institutes = append(resp.Institutes, item)
	}
	return resp
}

/* =======================================================
   PAYLOAD LLM (hasil parse response analisis universitas)
   ======================================================= */

type UniversityAnalysisPayload struct {
	Institutes []struct {
		InstitutionID    string  `json:"institution_id"`
		ChancePercentage float64 `json:"chance_percentage"`
		Attributes       []struct {
			Name           string `json:"name"`
			Type           string `json:"type"`
			Recommendation string `json:"recommendation"`
		} `json:"attributes"`
		Plan []struct {
			Order         int    `json:"order"`
			Name          string `json:"name"`
			Description   string `json:"description"`
			DurationMonth int    `json:"duration_month"`
		} `json:"plan"`
	} `json:"institutes"`
}
