// file: internals/features/tests/service/tests_service.go
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
	"jinaq_backend/internals/features/tests/dto"
	"jinaq_backend/internals/features/tests/model"
	"jinaq_backend/internals/llm"
)

/* =======================================================
   SERVICE
   ======================================================= */

type TestsService struct {
	repo     Repository
	provider llm.Provider
}

func NewTestsService(repo Repository, provider llm.Provider) *TestsService {
	return &TestsService{repo: repo, provider: provider}
}

// ListTests semua test + progress user yang sedang login.
func (s *TestsService) ListTests(ctx context.Context, userID uuid.UUID) ([]dto.TestSummaryResponse, error) {
	tests, err := s.repo.GetAllTests(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.TestSummaryResponse, 0, len(tests))
	for i := range tests {
		test := &tests[i]
		sub, err := s.repo.GetUserSubmission(ctx, userID, test.TestID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, buildSummary(test, sub))
	}
	return summaries, nil
}

// GetTestDetails summary satu test + titik resume (pertanyaan terakhir
// yang dijawab, atau pertanyaan pertama kalau belum mulai).
func (s *TestsService) GetTestDetails(ctx context.Context, userID, testID uuid.UUID) (*dto.TestDetailsResponse, error) {
	test, err := s.repo.GetTestByID(ctx, testID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Test tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}

	sub, err := s.repo.GetUserSubmission(ctx, userID, testID)
	if err != nil {
		return nil, err
	}

	var lastQuestionID *uuid.UUID
	switch {
	case sub != nil && len(sub.SubmittedAnswers) > 0:
		id := sub.SubmittedAnswers[len(sub.SubmittedAnswers)-1].TSQQuestionID
		lastQuestionID = &id
	case len(test.Questions) > 0:
		id := test.Questions[0].QuestionID
		lastQuestionID = &id
	}

	return &dto.TestDetailsResponse{
		TestSummaryResponse: buildSummary(test, sub),
		LastQuestionID:      lastQuestionID,
	}, nil
}

// GetQuestion satu pertanyaan + pilihan jawaban + id next/prev
// berdasarkan question_order.
func (s *TestsService) GetQuestion(ctx context.Context, testID, questionID uuid.UUID) (*dto.TestQuestionResponse, error) {
	q, err := s.repo.GetQuestionByID(ctx, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if q.QuestionTestID != testID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}

	next, err := s.repo.GetNextQuestion(ctx, testID, q.QuestionOrder)
	if err != nil {
		return nil, err
	}
	prev, err := s.repo.GetPreviousQuestion(ctx, testID, q.QuestionOrder)
	if err != nil {
		return nil, err
	}

	resp := &dto.TestQuestionResponse{
		ID:       q.QuestionID,
		Question: q.QuestionText,
		Answers:  make([]dto.AnswerResponse, 0, len(q.Answers)),
	}
	for _, a := range q.Answers {
		resp.Answers = append(resp.Answers, dto.AnswerResponse{
			ID:     a.AnswerID,
			Answer: a.AnswerText,
		})
	}
	if next != nil {
		id := next.QuestionID
		resp.NextQuestionID = &id
	}
	if prev != nil {
		id := prev.QuestionID
		resp.PreviousQuestionID = &id
	}
	return resp, nil
}

// SubmitAnswer terima satu jawaban. Jawaban pertama membuat submission
// (ACTIVE); jawaban terakhir memicu transisi COMPLETED + analisis singkat.
// Kegagalan analisis singkat tidak menggagalkan request.
func (s *TestsService) SubmitAnswer(ctx context.Context, userID, testID, questionID uuid.UUID, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	q, err := s.repo.GetQuestionByID(ctx, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if q.QuestionTestID != testID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}

	answer, err := s.repo.GetAnswerByID(ctx, req.AnswerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Pilihan jawaban tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	if answer.AnswerQuestionID != questionID {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Pilihan jawaban bukan milik pertanyaan ini")
	}

	out, err := s.repo.RecordAnswer(ctx, userID, testID, questionID, req.AnswerID)
	switch {
	case errors.Is(err, ErrAlreadyAnswered):
		return nil, fiber.NewError(fiber.StatusConflict, "Pertanyaan ini sudah dijawab")
	case errors.Is(err, ErrSubmissionCompleted):
		return nil, fiber.NewError(fiber.StatusBadRequest, "Test sudah selesai dikerjakan")
	case err != nil:
		return nil, err
	}

	if out.JustCompleted {
		s.runShortAnalysis(ctx, out.Submission)
	}

	return &dto.SubmitAnswerResponse{
		SubmissionID:            out.Submission.TestSubmissionID,
		Status:                  out.Submission.TestSubmissionStatus,
		CompletedQuestionsCount: out.AnsweredCount,
		AllQuestionsCount:       out.TotalQuestions,
	}, nil
}

// runShortAnalysis analisis singkat pasca COMPLETED. Soft-fail: error cuma
// dicatat, submission tetap COMPLETED dengan kolom analisis NULL.
func (s *TestsService) runShortAnalysis(ctx context.Context, sub *model.TestSubmissionModel) {
	test, err := s.repo.GetTestByID(ctx, sub.TestSubmissionTestID)
	if err != nil {
		log.Printf("[ERROR] Gagal memuat test untuk analisis singkat: %v", err)
		return
	}
	rows, err := s.repo.GetSubmissionAnswers(ctx, sub.TestSubmissionID)
	if err != nil {
		log.Printf("[ERROR] Gagal memuat jawaban untuk analisis singkat: %v", err)
		return
	}

	type qa struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}
	results := struct {
		TestName string `json:"test_name"`
		Answers  []qa   `json:"answers"`
	}{TestName: test.TestName}
	for _, row := range rows {
		if row.Question == nil || row.Answer == nil {
			continue
		}
		results.Answers = append(results.Answers, qa{
			Question: row.Question.QuestionText,
			Answer:   row.Answer.AnswerText,
		})
	}

	req, err := llm.BuildShortAnalysisRequest(results)
	if err != nil {
		log.Printf("[ERROR] Gagal membangun prompt analisis singkat: %v", err)
		return
	}
	req.MaxTokens = configs.LLMMaxTokens

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Analisis singkat submission %s gagal: %v", sub.TestSubmissionID, err)
		return
	}

	var payload dto.ShortAnalysisPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		log.Printf("[ERROR] Gagal decode hasil analisis singkat: %v", err)
		return
	}

	if err := s.repo.UpdateSubmissionAnalysis(ctx, sub.TestSubmissionID, payload.AnalysisSummary, payload.AnalysisKeyFactors); err != nil {
		log.Printf("[ERROR] Gagal menyimpan hasil analisis singkat: %v", err)
	}
}

// AnalyzePersonality agregasi semua submission COMPLETED menjadi analisis
// kepribadian. Precondition dicek sebelum ada panggilan LLM; kegagalan
// LLM/validasi = 503, tidak ada yang dipersist.
func (s *TestsService) AnalyzePersonality(ctx context.Context, userID uuid.UUID) (*dto.PersonalityAnalysisResponse, error) {
	subs, err := s.repo.GetAllUserSubmissions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Semua test harus diselesaikan sebelum analisis")
	}
	for _, sub := range subs {
		if sub.TestSubmissionStatus != model.SubmissionCompleted {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Semua test harus diselesaikan sebelum analisis")
		}
	}

	type testResult struct {
		TestName           string   `json:"test_name"`
		AnalysisSummary    *string  `json:"analysis_summary"`
		AnalysisKeyFactors []string `json:"analysis_key_factors"`
	}
	results := make([]testResult, 0, len(subs))
	for _, sub := range subs {
		name := ""
		if sub.Test != nil {
			name = sub.Test.TestName
		}
		results = append(results, testResult{
			TestName:           name,
			AnalysisSummary:    sub.TestSubmissionAnalysisSummary,
			AnalysisKeyFactors: sub.TestSubmissionAnalysisKeyFactors,
		})
	}

	req, err := llm.BuildPersonalityAnalysisRequest(results)
	if err != nil {
		return nil, err
	}
	req.MaxTokens = configs.LLMMaxTokens

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		log.Printf("[ERROR] Analisis kepribadian user %s gagal: %v", userID, err)
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan analisis sedang tidak tersedia")
	}

	var payload dto.PersonalityAnalysisPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		log.Printf("[ERROR] Gagal decode hasil analisis kepribadian: %v", err)
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "Layanan analisis sedang tidak tersedia")
	}

	analysis := payload.ToModel(userID)
	if err := s.repo.CreatePersonalityAnalysis(ctx, analysis); err != nil {
		return nil, err
	}

	result := dto.FromPersonalityAnalysisModel(analysis)
	return &result, nil
}

// GetPersonalityAnalysis hasil analisis terbaru user.
func (s *TestsService) GetPersonalityAnalysis(ctx context.Context, userID uuid.UUID) (*dto.PersonalityAnalysisResponse, error) {
	analysis, err := s.repo.GetLatestPersonalityAnalysis(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Belum ada hasil analisis kepribadian")
	}
	if err != nil {
		return nil, err
	}
	result := dto.FromPersonalityAnalysisModel(analysis)
	return &result, nil
}

func buildSummary(test *model.TestModel, sub *model.TestSubmissionModel) dto.TestSummaryResponse {
	summary := dto.TestSummaryResponse{
		ID:                     test.TestID,
		Title:                  test.TestName,
		Description:            test.TestDescription,
		Tags:                   test.TestTags,
		AllQuestionsCount:      len(test.Questions),
		EstimatedTimeInMinutes: test.TestEstimatedTimeMinutes,
		Status:                 model.SubmissionNotStarted,
	}
	if sub != nil {
		summary.CompletedQuestionsCount = len(sub.SubmittedAnswers)
		summary.Status = sub.TestSubmissionStatus
	}
	return summary
}
