// file: internals/features/tests/model/test_submission_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
	=============================================================================
	  ENUM-like: Submission Status ('NOT_STARTED','ACTIVE','COMPLETED')

=============================================================================
*/
type TestSubmissionStatus string

const (
	SubmissionNotStarted TestSubmissionStatus = "NOT_STARTED"
	SubmissionActive     TestSubmissionStatus = "ACTIVE"
	SubmissionCompleted  TestSubmissionStatus = "COMPLETED"
)

func (s TestSubmissionStatus) String() string { return string(s) }
func (s TestSubmissionStatus) Valid() bool {
	switch s {
	case SubmissionNotStarted, SubmissionActive, SubmissionCompleted:
		return true
	default:
		return false
	}
}

// sql.Scanner + driver.Valuer (aman saat scan ke enum)
func (s *TestSubmissionStatus) Scan(value any) error {
	if value == nil {
		*s = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = TestSubmissionStatus(v)
	case []byte:
		*s = TestSubmissionStatus(string(v))
	default:
		return fmt.Errorf("unsupported type for TestSubmissionStatus: %T", value)
	}
	if !s.Valid() {
		return fmt.Errorf("invalid TestSubmissionStatus: %q", *s)
	}
	return nil
}
func (s TestSubmissionStatus) Value() (driver.Value, error) {
	if s == "" {
		return nil, nil
	}
	if !s.Valid() {
		return nil, fmt.Errorf("invalid TestSubmissionStatus: %q", s)
	}
	return string(s), nil
}

/*
	=============================================================================
	  MODEL: test_submissions
	  Satu submission per (user, test) — dijaga unique index komposit.
	  analysis_summary & key_factors diisi setelah analisis singkat sukses;
	  kalau analisis gagal keduanya tetap NULL dan submission tetap COMPLETED.

=============================================================================
*/
type TestSubmissionModel struct {
	// PK
	TestSubmissionID uuid.UUID `json:"test_submission_id" gorm:"column:test_submission_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	TestSubmissionTestID uuid.UUID `json:"test_submission_test_id" gorm:"column:test_submission_test_id;type:uuid;not null;uniqueIndex:uq_test_submissions_user_test,priority:2"`
	TestSubmissionUserID uuid.UUID `json:"test_submission_user_id" gorm:"column:test_submission_user_id;type:uuid;not null;uniqueIndex:uq_test_submissions_user_test,priority:1;index:idx_test_submissions_user"`

	// Status
	TestSubmissionStatus TestSubmissionStatus `json:"test_submission_status" gorm:"column:test_submission_status;type:varchar(20);not null;default:'ACTIVE'"`

	// Hasil analisis singkat (nullable)
	TestSubmissionAnalysisSummary    *string        `json:"test_submission_analysis_summary,omitempty" gorm:"column:test_submission_analysis_summary;type:text"`
	TestSubmissionAnalysisKeyFactors pq.StringArray `json:"test_submission_analysis_key_factors,omitempty" gorm:"column:test_submission_analysis_key_factors;type:text[]"`

	// Timestamps
	TestSubmissionCreatedAt time.Time `json:"test_submission_created_at" gorm:"column:test_submission_created_at;autoCreateTime"`
	TestSubmissionUpdatedAt time.Time `json:"test_submission_updated_at" gorm:"column:test_submission_updated_at;autoUpdateTime"`

	// Relasi
	Test             *TestModel                    `json:"test,omitempty" gorm:"foreignKey:TestSubmissionTestID;references:TestID"`
	SubmittedAnswers []TestSubmissionQuestionModel `json:"submitted_answers,omitempty" gorm:"foreignKey:TSQSubmissionID;references:TestSubmissionID"`
}

func (TestSubmissionModel) TableName() string { return "test_submissions" }

/*
	=============================================================================
	  MODEL: test_submission_questions
	  Append-only: satu record per (submission, question), tidak pernah
	  di-update atau dihapus. Ini sumber kebenaran progress.

=============================================================================
*/
type TestSubmissionQuestionModel struct {
	// PK
	TSQID uuid.UUID `json:"test_submission_question_id" gorm:"column:test_submission_question_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	TSQSubmissionID uuid.UUID `json:"test_submission_question_submission_id" gorm:"column:test_submission_question_submission_id;type:uuid;not null;uniqueIndex:uq_tsq_submission_question,priority:1;index:idx_tsq_submission"`
	TSQQuestionID   uuid.UUID `json:"test_submission_question_question_id" gorm:"column:test_submission_question_question_id;type:uuid;not null;uniqueIndex:uq_tsq_submission_question,priority:2"`
	TSQAnswerID     uuid.UUID `json:"test_submission_question_answer_id" gorm:"column:test_submission_question_answer_id;type:uuid;not null"`

	// Timestamps
	TSQCreatedAt time.Time `json:"test_submission_question_created_at" gorm:"column:test_submission_question_created_at;autoCreateTime"`

	// Relasi
	Question *QuestionModel `json:"question,omitempty" gorm:"foreignKey:TSQQuestionID;references:QuestionID"`
	Answer   *AnswerModel   `json:"answer,omitempty" gorm:"foreignKey:TSQAnswerID;references:AnswerID"`
}

func (TestSubmissionQuestionModel) TableName() string { return "test_submission_questions" }
