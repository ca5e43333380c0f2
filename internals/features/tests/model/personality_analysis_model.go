// file: internals/features/tests/model/personality_analysis_model.go
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
	  ENUM-like: Attribute Type ('PROS','CONS')

=============================================================================
*/
type AnalysisAttributeType string

const (
	AttributePros AnalysisAttributeType = "PROS"
	AttributeCons AnalysisAttributeType = "CONS"
)

func (t AnalysisAttributeType) String() string { return string(t) }
func (t AnalysisAttributeType) Valid() bool {
	return t == AttributePros || t == AttributeCons
}

func (t *AnalysisAttributeType) Scan(value any) error {
	if value == nil {
		*t = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = AnalysisAttributeType(v)
	case []byte:
		*t = AnalysisAttributeType(string(v))
	default:
		return fmt.Errorf("unsupported type for AnalysisAttributeType: %T", value)
	}
	if !t.Valid() {
		return fmt.Errorf("invalid AnalysisAttributeType: %q", *t)
	}
	return nil
}
func (t AnalysisAttributeType) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if !t.Valid() {
		return nil, fmt.Errorf("invalid AnalysisAttributeType: %q", t)
	}
	return string(t), nil
}

/*
	=============================================================================
	  MODEL: personality_analysis (+ anak-anaknya)
	  Aggregate hasil analisis kepribadian. Ditulis sekali per panggilan
	  analisis; pembacaan selalu ambil yang terbaru per user.

=============================================================================
*/
type PersonalityAnalysisModel struct {
	// PK
	PersonalityAnalysisID uuid.UUID `json:"personality_analysis_id" gorm:"column:personality_analysis_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	PersonalityAnalysisUserID uuid.UUID `json:"personality_analysis_user_id" gorm:"column:personality_analysis_user_id;type:uuid;not null;index:idx_personality_analysis_user"`

	// Timestamps
	PersonalityAnalysisCreatedAt time.Time `json:"personality_analysis_created_at" gorm:"column:personality_analysis_created_at;autoCreateTime"`

	// Relasi
	Mbti        *PersonalityAnalysisMbtiModel        `json:"mbti,omitempty" gorm:"foreignKey:PAMbtiAnalysisID;references:PersonalityAnalysisID"`
	Professions []PersonalityAnalysisProfessionModel `json:"professions,omitempty" gorm:"foreignKey:PAProfessionAnalysisID;references:PersonalityAnalysisID"`
	Majors      []PersonalityAnalysisMajorModel      `json:"majors,omitempty" gorm:"foreignKey:PAMajorAnalysisID;references:PersonalityAnalysisID"`
	Attributes  []PersonalityAnalysisAttributeModel  `json:"attributes,omitempty" gorm:"foreignKey:PAAttributeAnalysisID;references:PersonalityAnalysisID"`
}

func (PersonalityAnalysisModel) TableName() string { return "personality_analysis" }

type PersonalityAnalysisMbtiModel struct {
	PAMbtiID         uuid.UUID `json:"personality_analysis_mbti_id" gorm:"column:personality_analysis_mbti_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PAMbtiAnalysisID uuid.UUID `json:"personality_analysis_mbti_analysis_id" gorm:"column:personality_analysis_mbti_analysis_id;type:uuid;not null;index:idx_pa_mbti_analysis"`

	PAMbtiTitle           string         `json:"personality_analysis_mbti_title" gorm:"column:personality_analysis_mbti_title;type:varchar(150)"`
	PAMbtiDescription     string         `json:"personality_analysis_mbti_description" gorm:"column:personality_analysis_mbti_description;type:text"`
	PAMbtiCode            string         `json:"personality_analysis_mbti_code" gorm:"column:personality_analysis_mbti_code;type:varchar(10)"`
	PAMbtiName            string         `json:"personality_analysis_mbti_name" gorm:"column:personality_analysis_mbti_name;type:varchar(100)"`
	PAMbtiShortAttributes pq.StringArray `json:"personality_analysis_mbti_short_attributes" gorm:"column:personality_analysis_mbti_short_attributes;type:text[]"`
	PAMbtiWorkStyles      pq.StringArray `json:"personality_analysis_mbti_work_styles" gorm:"column:personality_analysis_mbti_work_styles;type:text[]"`

	PAMbtiIntroversionPercentage int `json:"personality_analysis_mbti_introversion_percentage" gorm:"column:personality_analysis_mbti_introversion_percentage"`
	PAMbtiThinkingPercentage     int `json:"personality_analysis_mbti_thinking_percentage" gorm:"column:personality_analysis_mbti_thinking_percentage"`
	PAMbtiCreativityPercentage   int `json:"personality_analysis_mbti_creativity_percentage" gorm:"column:personality_analysis_mbti_creativity_percentage"`
	PAMbtiIntuitionPercentage    int `json:"personality_analysis_mbti_intuition_percentage" gorm:"column:personality_analysis_mbti_intuition_percentage"`
	PAMbtiPlanningPercentage     int `json:"personality_analysis_mbti_planning_percentage" gorm:"column:personality_analysis_mbti_planning_percentage"`
	PAMbtiLeadingPercentage      int `json:"personality_analysis_mbti_leading_percentage" gorm:"column:personality_analysis_mbti_leading_percentage"`
}

func (PersonalityAnalysisMbtiModel) TableName() string { return "personality_analysis_mbti" }

type PersonalityAnalysisProfessionModel struct {
	PAProfessionID         uuid.UUID `json:"personality_analysis_profession_id" gorm:"column:personality_analysis_profession_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PAProfessionAnalysisID uuid.UUID `json:"personality_analysis_profession_analysis_id" gorm:"column:personality_analysis_profession_analysis_id;type:uuid;not null;index:idx_pa_professions_analysis"`

	PAProfessionName       string `json:"personality_analysis_profession_name" gorm:"column:personality_analysis_profession_name;type:varchar(150);not null"`
	PAProfessionPercentage int    `json:"personality_analysis_profession_percentage" gorm:"column:personality_analysis_profession_percentage"`
}

func (PersonalityAnalysisProfessionModel) TableName() string {
	return "personality_analysis_professions"
}

type PersonalityAnalysisMajorModel struct {
	PAMajorID         uuid.UUID `json:"personality_analysis_major_id" gorm:"column:personality_analysis_major_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PAMajorAnalysisID uuid.UUID `json:"personality_analysis_major_analysis_id" gorm:"column:personality_analysis_major_analysis_id;type:uuid;not null;index:idx_pa_majors_analysis"`

	PAMajorCategory string `json:"personality_analysis_major_category" gorm:"column:personality_analysis_major_category;type:varchar(150);not null"`
}

func (PersonalityAnalysisMajorModel) TableName() string { return "personality_analysis_majors" }

type PersonalityAnalysisAttributeModel struct {
	PAAttributeID         uuid.UUID `json:"personality_analysis_attribute_id" gorm:"column:personality_analysis_attribute_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PAAttributeAnalysisID uuid.UUID `json:"personality_analysis_attribute_analysis_id" gorm:"column:personality_analysis_attribute_analysis_id;type:uuid;not null;index:idx_pa_attributes_analysis"`

	PAAttributeType            AnalysisAttributeType `json:"personality_analysis_attribute_type" gorm:"column:personality_analysis_attribute_type;type:varchar(10);not null"`
	PAAttributeName            string                `json:"personality_analysis_attribute_name" gorm:"column:personality_analysis_attribute_name;type:varchar(150)"`
	PAAttributeDescription     string                `json:"personality_analysis_attribute_description" gorm:"column:personality_analysis_attribute_description;type:text"`
	PAAttributeRecommendations string                `json:"personality_analysis_attribute_recommendations" gorm:"column:personality_analysis_attribute_recommendations;type:text"`
}

func (PersonalityAnalysisAttributeModel) TableName() string {
	return "personality_analysis_attributes"
}
