// file: internals/features/tests/model/test_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/*
	=============================================================================
	  MODEL: tests
	  Katalog test yang tersedia untuk semua user.

=============================================================================
*/
type TestModel struct {
	// PK
	TestID uuid.UUID `json:"test_id" gorm:"column:test_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Data
	TestName                 string         `json:"test_name" gorm:"column:test_name;type:varchar(150);not null"`
	TestDescription          string         `json:"test_description" gorm:"column:test_description;type:text"`
	TestTags                 pq.StringArray `json:"test_tags" gorm:"column:test_tags;type:text[]"`
	TestEstimatedTimeMinutes int            `json:"test_estimated_time_minutes" gorm:"column:test_estimated_time_minutes"`

	// Timestamps
	TestCreatedAt time.Time `json:"test_created_at" gorm:"column:test_created_at;autoCreateTime"`
	TestUpdatedAt time.Time `json:"test_updated_at" gorm:"column:test_updated_at;autoUpdateTime"`

	// Relasi
	Questions []QuestionModel `json:"questions,omitempty" gorm:"foreignKey:QuestionTestID;references:TestID"`
}

func (TestModel) TableName() string { return "tests" }

/*
	=============================================================================
	  MODEL: questions
	  Urutan per test dijaga unik (test_id, order) — sequencer next/prev
	  bergantung pada ini.

=============================================================================
*/
type QuestionModel struct {
	// PK
	QuestionID uuid.UUID `json:"question_id" gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	QuestionTestID uuid.UUID `json:"question_test_id" gorm:"column:question_test_id;type:uuid;not null;uniqueIndex:uq_questions_test_order,priority:1;index:idx_questions_test"`

	// Data
	QuestionText  string `json:"question_text" gorm:"column:question_text;type:text;not null"`
	QuestionOrder int    `json:"question_order" gorm:"column:question_order;not null;uniqueIndex:uq_questions_test_order,priority:2"`

	// Timestamps
	QuestionCreatedAt time.Time `json:"question_created_at" gorm:"column:question_created_at;autoCreateTime"`

	// Relasi
	Answers []AnswerModel `json:"answers,omitempty" gorm:"foreignKey:AnswerQuestionID;references:QuestionID"`
}

func (QuestionModel) TableName() string { return "questions" }

/*
	=============================================================================
	  MODEL: answers
	  Pilihan jawaban per pertanyaan. is_correct opsional (test kepribadian
	  tidak punya jawaban benar).

=============================================================================
*/
type AnswerModel struct {
	// PK
	AnswerID uuid.UUID `json:"answer_id" gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	AnswerQuestionID uuid.UUID `json:"answer_question_id" gorm:"column:answer_question_id;type:uuid;not null;index:idx_answers_question"`

	// Data
	AnswerText      string `json:"answer_text" gorm:"column:answer_text;type:text;not null"`
	AnswerIsCorrect *bool  `json:"answer_is_correct,omitempty" gorm:"column:answer_is_correct"`

	// Timestamps
	AnswerCreatedAt time.Time `json:"answer_created_at" gorm:"column:answer_created_at;autoCreateTime"`
}

func (AnswerModel) TableName() string { return "answers" }
