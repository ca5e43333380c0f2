// file: internals/features/tests/service/tests_repository.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	helper "jinaq_backend/internals/helpers"

	"jinaq_backend/internals/features/tests/model"
)

/* =======================================================
   ERROR SENTINEL
   ======================================================= */

var (
	// ErrAlreadyAnswered: pertanyaan ini sudah pernah dijawab pada
	// submission yang sama (record jawaban append-only).
	ErrAlreadyAnswered = errors.New("question already answered for this submission")

	// ErrSubmissionCompleted: submission sudah COMPLETED, tidak menerima
	// jawaban lagi.
	ErrSubmissionCompleted = errors.New("submission already completed")
)

/* =======================================================
   OUTCOME
   ======================================================= */

// AnswerOutcome hasil transaksi pencatatan satu jawaban.
type AnswerOutcome struct {
	Submission     *model.TestSubmissionModel
	AnsweredCount  int
	TotalQuestions int

	// JustCompleted true hanya pada panggilan yang benar-benar
	// melakukan transisi ke COMPLETED (maksimal satu panggilan
	// per submission, dijaga update kondisional di dalam lock).
	JustCompleted bool
}

/* =======================================================
   REPOSITORY
   ======================================================= */

// Repository akses data fitur tests. Service hanya bicara lewat interface
// ini supaya bisa ditest dengan fake tanpa database.
type Repository interface {
	GetAllTests(ctx context.Context) ([]model.TestModel, error)
	GetTestByID(ctx context.Context, testID uuid.UUID) (*model.TestModel, error)
	GetQuestionByID(ctx context.Context, questionID uuid.UUID) (*model.QuestionModel, error)
	GetNextQuestion(ctx context.Context, testID uuid.UUID, order int) (*model.QuestionModel, error)
	GetPreviousQuestion(ctx context.Context, testID uuid.UUID, order int) (*model.QuestionModel, error)
	GetAnswerByID(ctx context.Context, answerID uuid.UUID) (*model.AnswerModel, error)

	GetUserSubmission(ctx context.Context, userID, testID uuid.UUID) (*model.TestSubmissionModel, error)
	GetAllUserSubmissions(ctx context.Context, userID uuid.UUID) ([]model.TestSubmissionModel, error)
	GetSubmissionAnswers(ctx context.Context, submissionID uuid.UUID) ([]model.TestSubmissionQuestionModel, error)

	// RecordAnswer catat satu jawaban dalam satu transaksi: buat submission
	// kalau belum ada, append record jawaban (unik per pertanyaan), lalu
	// flip ke COMPLETED secara kondisional di bawah row lock.
	RecordAnswer(ctx context.Context, userID, testID, questionID, answerID uuid.UUID) (*AnswerOutcome, error)

	UpdateSubmissionAnalysis(ctx context.Context, submissionID uuid.UUID, summary string, keyFactors []string) error

	CreatePersonalityAnalysis(ctx context.Context, analysis *model.PersonalityAnalysisModel) error
	GetLatestPersonalityAnalysis(ctx context.Context, userID uuid.UUID) (*model.PersonalityAnalysisModel, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository repository berbasis GORM.
func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) GetAllTests(ctx context.Context) ([]model.TestModel, error) {
	var tests []model.TestModel
	err := r.db.WithContext(ctx).
		Preload("Questions").
		Order("test_created_at ASC").
		Find(&tests).Error
	return tests, err
}

func (r *gormRepository) GetTestByID(ctx context.Context, testID uuid.UUID) (*model.TestModel, error) {
	var test model.TestModel
	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("question_order ASC")
		}).
		First(&test, "test_id = ?", testID).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *gormRepository) GetQuestionByID(ctx context.Context, questionID uuid.UUID) (*model.QuestionModel, error) {
	var q model.QuestionModel
	err := r.db.WithContext(ctx).
		Preload("Answers").
		First(&q, "question_id = ?", questionID).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *gormRepository) GetNextQuestion(ctx context.Context, testID uuid.UUID, order int) (*model.QuestionModel, error) {
	var q model.QuestionModel
	err := r.db.WithContext(ctx).
		Where("question_test_id = ? AND question_order > ?", testID, order).
		Order("question_order ASC").
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *gormRepository) GetPreviousQuestion(ctx context.Context, testID uuid.UUID, order int) (*model.QuestionModel, error) {
	var q model.QuestionModel
	err := r.db.WithContext(ctx).
		Where("question_test_id = ? AND question_order < ?", testID, order).
		Order("question_order DESC").
		First(&q).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *gormRepository) GetAnswerByID(ctx context.Context, answerID uuid.UUID) (*model.AnswerModel, error) {
	var a model.AnswerModel
	err := r.db.WithContext(ctx).First(&a, "answer_id = ?", answerID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *gormRepository) GetUserSubmission(ctx context.Context, userID, testID uuid.UUID) (*model.TestSubmissionModel, error) {
	var sub model.TestSubmissionModel
	err := r.db.WithContext(ctx).
		Preload("SubmittedAnswers", func(db *gorm.DB) *gorm.DB {
			return db.Order("test_submission_question_created_at ASC")
		}).
		Where("test_submission_user_id = ? AND test_submission_test_id = ?", userID, testID).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *gormRepository) GetAllUserSubmissions(ctx context.Context, userID uuid.UUID) ([]model.TestSubmissionModel, error) {
	var subs []model.TestSubmissionModel
	err := r.db.WithContext(ctx).
		Preload("Test").
		Where("test_submission_user_id = ?", userID).
		Order("test_submission_created_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *gormRepository) GetSubmissionAnswers(ctx context.Context, submissionID uuid.UUID) ([]model.TestSubmissionQuestionModel, error) {
	var rows []model.TestSubmissionQuestionModel
	err := r.db.WithContext(ctx).
		Preload("Question").
		Preload("Answer").
		Where("test_submission_question_submission_id = ?", submissionID).
		Order("test_submission_question_created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *gormRepository) RecordAnswer(ctx context.Context, userID, testID, questionID, answerID uuid.UUID) (*AnswerOutcome, error) {
	var out AnswerOutcome

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Ambil / buat submission di bawah row lock supaya dua request
		// paralel untuk (user, test) yang sama diserialisasi di sini.
		var sub model.TestSubmissionModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("test_submission_user_id = ? AND test_submission_test_id = ?", userID, testID).
			First(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sub = model.TestSubmissionModel{
				TestSubmissionUserID: userID,
				TestSubmissionTestID: testID,
				TestSubmissionStatus: model.SubmissionActive,
			}
			if err := tx.Create(&sub).Error; err != nil {
				if helper.IsUniqueViolation(err) {
					// Kalah race pembuatan: ambil lagi dengan lock.
					if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						Where("test_submission_user_id = ? AND test_submission_test_id = ?", userID, testID).
						First(&sub).Error; err != nil {
						return err
					}
				} else {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		if sub.TestSubmissionStatus == model.SubmissionCompleted {
			return ErrSubmissionCompleted
		}

		record := model.TestSubmissionQuestionModel{
			TSQSubmissionID: sub.TestSubmissionID,
			TSQQuestionID:   questionID,
			TSQAnswerID:     answerID,
		}
		if err := tx.Create(&record).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return ErrAlreadyAnswered
			}
			return err
		}

		var answered, total int64
		if err := tx.Model(&model.TestSubmissionQuestionModel{}).
			Where("test_submission_question_submission_id = ?", sub.TestSubmissionID).
			Count(&answered).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.QuestionModel{}).
			Where("question_test_id = ?", testID).
			Count(&total).Error; err != nil {
			return err
		}

		if total > 0 && answered >= total {
			// Update kondisional: hanya transisi ACTIVE -> COMPLETED yang
			// kena; panggilan kedua tidak pernah melihat RowsAffected > 0.
			res := tx.Model(&model.TestSubmissionModel{}).
				Where("test_submission_id = ? AND test_submission_status <> ?",
					sub.TestSubmissionID, model.SubmissionCompleted).
				Update("test_submission_status", model.SubmissionCompleted)
			if res.Error != nil {
				return res.Error
			}
			out.JustCompleted = res.RowsAffected == 1
			sub.TestSubmissionStatus = model.SubmissionCompleted
		} else if sub.TestSubmissionStatus != model.SubmissionActive {
			if err := tx.Model(&model.TestSubmissionModel{}).
				Where("test_submission_id = ?", sub.TestSubmissionID).
				Update("test_submission_status", model.SubmissionActive).Error; err != nil {
				return err
			}
			sub.TestSubmissionStatus = model.SubmissionActive
		}

		out.Submission = &sub
		out.AnsweredCount = int(answered)
		out.TotalQuestions = int(total)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *gormRepository) UpdateSubmissionAnalysis(ctx context.Context, submissionID uuid.UUID, summary string, keyFactors []string) error {
	res := r.db.WithContext(ctx).Model(&model.TestSubmissionModel{}).
		Where("test_submission_id = ?", submissionID).
		Updates(map[string]any{
			"test_submission_analysis_summary":     summary,
			"test_submission_analysis_key_factors": pq.StringArray(keyFactors),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("submission %s not found", submissionID)
	}
	return nil
}

func (r *gormRepository) CreatePersonalityAnalysis(ctx context.Context, analysis *model.PersonalityAnalysisModel) error {
	// Create sekaligus menyimpan mbti + anak-anak lain (association create)
	// dalam satu transaksi.
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *gormRepository) GetLatestPersonalityAnalysis(ctx context.Context, userID uuid.UUID) (*model.PersonalityAnalysisModel, error) {
	var analysis model.PersonalityAnalysisModel
	err := r.db.WithContext(ctx).
		Preload("Mbti").
		Preload("Professions").
		Preload("Majors").
		Preload("Attributes").
		Where("personality_analysis_user_id = ?", userID).
		Order("personality_analysis_created_at DESC").
		First(&analysis).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}
