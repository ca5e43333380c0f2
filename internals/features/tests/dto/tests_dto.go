// file: internals/features/tests/dto/tests_dto.go
package dto

import (
	"github.com/google/uuid"

	"jinaq_backend/internals/features/tests/model"
)

/* =======================================================
   RESPONSE DTO
   ======================================================= */

// TestSummaryResponse ringkasan satu test + progress user.
type TestSummaryResponse struct {
	ID                      uuid.UUID                  `json:"id"`
	Title                   string                     `json:"title"`
	Description             string                     `json:"description"`
	Tags                    []string                   `json:"tags"`
	AllQuestionsCount       int                        `json:"all_questions_count"`
	EstimatedTimeInMinutes  int                        `json:"estimated_time_in_minutes"`
	CompletedQuestionsCount int                        `json:"completed_questions_count"`
	Status                  model.TestSubmissionStatus `json:"status"`
}

// TestDetailsResponse = summary + titik resume.
type TestDetailsResponse struct {
	TestSummaryResponse
	LastQuestionID *uuid.UUID `json:"last_question_id"`
}

type AnswerResponse struct {
	ID     uuid.UUID `json:"id"`
	Answer string    `json:"answer"`
}

type TestQuestionResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Question           string           `json:"question"`
	Answers            []AnswerResponse `json:"answers"`
	NextQuestionID     *uuid.UUID       `json:"next_question_id"`
	PreviousQuestionID *uuid.UUID       `json:"previous_question_id"`
}

// SubmitAnswerResponse progress setelah satu jawaban diterima.
type SubmitAnswerResponse struct {
	SubmissionID            uuid.UUID                  `json:"submission_id"`
	Status                  model.TestSubmissionStatus `json:"status"`
	CompletedQuestionsCount int                        `json:"completed_questions_count"`
	AllQuestionsCount       int                        `json:"all_questions_count"`
}

type PersonalityAnalysisMbtiResponse struct {
	Title                  string   `json:"title"`
	Description            string   `json:"description"`
	MbtiCode               string   `json:"mbti_code"`
	MbtiName               string   `json:"mbti_name"`
	ShortAttributes        []string `json:"short_attributes"`
	WorkStyles             []string `json:"work_styles"`
	IntroversionPercentage int      `json:"introversion_percentage"`
	ThinkingPercentage     int      `json:"thinking_percentage"`
	CreativityPercentage   int      `json:"creativity_percentage"`
	IntuitionPercentage    int      `json:"intuition_percentage"`
	PlanningPercentage     int      `json:"planning_percentage"`
	LeadingPercentage      int      `json:"leading_percentage"`
}

type PersonalityAnalysisProfessionResponse struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

type PersonalityAnalysisMajorResponse struct {
	Category string `json:"category"`
}

type PersonalityAnalysisAttributeResponse struct {
	Type            model.AnalysisAttributeType `json:"type"`
	Name            string                      `json:"name"`
	Description     string                      `json:"description"`
	Recommendations string                      `json:"recommendations"`
}

type PersonalityAnalysisResponse struct {
	ID          uuid.UUID                               `json:"id"`
	Mbti        PersonalityAnalysisMbtiResponse         `json:"mbti"`
	Professions []PersonalityAnalysisProfessionResponse `json:"professions"`
	Majors      []PersonalityAnalysisMajorResponse      `json:"majors"`
	Attributes  []PersonalityAnalysisAttributeResponse  `json:"attributes"`
}

/* =======================================================
   REQUEST DTO
   ======================================================= */

// SubmitAnswerRequest body POST submit jawaban.
type SubmitAnswerRequest struct {
	AnswerID uuid.UUID `json:"answer_id" validate:"required"`
}

/* =======================================================
   CONVERTER (model -> DTO)
   ======================================================= */

func FromPersonalityAnalysisModel(m *model.PersonalityAnalysisModel) PersonalityAnalysisResponse {
	resp := PersonalityAnalysisResponse{
		ID:          m.PersonalityAnalysisID,
		Professions: make([]PersonalityAnalysisProfessionResponse, 0, len(m.Professions)),
		Majors:      make([]PersonalityAnalysisMajorResponse, 0, len(m.Majors)),
		Attributes:  make([]PersonalityAnalysisAttributeResponse, 0, len(m.Attributes)),
	}

	if m.Mbti != nil {
		resp.Mbti = PersonalityAnalysisMbtiResponse{
			Title:                  m.Mbti.PAMbtiTitle,
			Description:            m.Mbti.PAMbtiDescription,
			MbtiCode:               m.Mbti.PAMbtiCode,
			MbtiName:               m.Mbti.PAMbtiName,
			ShortAttributes:        m.Mbti.PAMbtiShortAttributes,
			WorkStyles:             m.Mbti.PAMbtiWorkStyles,
			IntroversionPercentage: m.Mbti.PAMbtiIntroversionPercentage,
			ThinkingPercentage:     m.Mbti.PAMbtiThinkingPercentage,
			CreativityPercentage:   m.Mbti.PAMbtiCreativityPercentage,
			IntuitionPercentage:    m.Mbti.PAMbtiIntuitionPercentage,
			PlanningPercentage:     m.Mbti.PAMbtiPlanningPercentage,
			LeadingPercentage:      m.Mbti.PAMbtiLeadingPercentage,
		}
	}

	for _, p := range m.Professions {
		resp.Professions = append(resp.Professions, PersonalityAnalysisProfessionResponse{
			Name:       p.PAProfessionName,
			Percentage: p.PAProfessionPercentage,
		})
	}
	for _, mj := range m.Majors {
		resp.Majors = append(resp.Majors, PersonalityAnalysisMajorResponse{
			Category: mj.PAMajorCategory,
		})
	}
	for _, a := range m.Attributes {
		resp.Attributes = append(resp.Attributes, PersonalityAnalysisAttributeResponse{
			Type:            a.PAAttributeType,
			Name:            a.PAAttributeName,
			Description:     a.PAAttributeDescription,
			Recommendations: a.PAAttributeRecommendations,
		})
	}

	return resp
}

/* =======================================================
   PAYLOAD LLM (hasil parse response analisis kepribadian)
   ======================================================= */

// PersonalityAnalysisPayload bentuk JSON yang dibalas LLM
// (sudah lolos validasi schema sebelum di-unmarshal ke sini).
type PersonalityAnalysisPayload struct {
	Mbti struct {
		Title                  string   `json:"title"`
		Description            string   `json:"description"`
		MbtiCode               string   `json:"mbti_code"`
		MbtiName               string   `json:"mbti_name"`
		ShortAttributes        []string `json:"short_attributes"`
		WorkStyles             []string `json:"work_styles"`
		IntroversionPercentage int      `json:"introversion_percentage"`
		ThinkingPercentage     int      `json:"thinking_percentage"`
		CreativityPercentage   int      `json:"creativity_percentage"`
		IntuitionPercentage    int      `json:"intuition_percentage"`
		PlanningPercentage     int      `json:"planning_percentage"`
		LeadingPercentage      int      `json:"leading_percentage"`
	} `json:"mbti"`
	Professions []struct {
		Name       string `json:"name"`
		Percentage int    `json:"percentage"`
	} `json:"professions"`
	Majors []struct {
		Category string `json:"category"`
	} `json:"majors"`
	Attributes []struct {
		Type            string `json:"type"`
		Name            string `json:"name"`
		Description     string `json:"description"`
		Recommendations string `json:"recommendations"`
	} `json:"attributes"`
}

// ToModel susun aggregate personality_analysis dari payload LLM.
func (p *PersonalityAnalysisPayload) ToModel(userID uuid.UUID) *model.PersonalityAnalysisModel {
	m := &model.PersonalityAnalysisModel{
		PersonalityAnalysisUserID: userID,
		Mbti: &model.PersonalityAnalysisMbtiModel{
			PAMbtiTitle:                  p.Mbti.Title,
			PAMbtiDescription:            p.Mbti.Description,
			PAMbtiCode:                   p.Mbti.MbtiCode,
			PAMbtiName:                   p.Mbti.MbtiName,
			PAMbtiShortAttributes:        p.Mbti.ShortAttributes,
			PAMbtiWorkStyles:             p.Mbti.WorkStyles,
			PAMbtiIntroversionPercentage: p.Mbti.IntroversionPercentage,
			PAMbtiThinkingPercentage:     p.Mbti.ThinkingPercentage,
			PAMbtiCreativityPercentage:   p.Mbti.CreativityPercentage,
			PAMbtiIntuitionPercentage:    p.Mbti.IntuitionPercentage,
			PAMbtiPlanningPercentage:     p.Mbti.PlanningPercentage,
			PAMbtiLeadingPercentage:      p.Mbti.LeadingPercentage,
		},
	}

	for _, pr := range p.Professions {
		m.Professions = append(m.Professions, model.PersonalityAnalysisProfessionModel{
			PAProfessionName:       pr.Name,
			PAProfessionPercentage: pr.Percentage,
		})
	}
	for _, mj := range p.Majors {
		m.Majors = append(m.Majors, model.PersonalityAnalysisMajorModel{
			PAMajorCategory: mj.Category,
		})
	}
	for _, a := range p.Attributes {
		m.Attributes = append(m.Attributes, model.PersonalityAnalysisAttributeModel{
			PAAttributeType:            model.AnalysisAttributeType(a.Type),
			PAAttributeName:            a.Name,
			PAAttributeDescription:     a.Description,
			PAAttributeRecommendations: a.Recommendations,
		})
	}

	return m
}

// ShortAnalysisPayload bentuk JSON analisis singkat dari LLM.
type ShortAnalysisPayload struct {
	AnalysisSummary    string   `json:"analysis_summary"`
	AnalysisKeyFactors []string `json:"analysis_key_factors"`
}
