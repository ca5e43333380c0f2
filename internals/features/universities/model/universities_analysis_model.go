// file: internals/features/universities/model/universities_analysis_model.go
package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
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

func (t *AnalysisAttributeType) Scan(value any) error        { return scanEnum(value, t) }
func (t AnalysisAttributeType) Value() (driver.Value, error) { return valueEnum(t) }

/*
	=============================================================================
	  MODEL: universities_analysis (+ anak-anaknya)
	  Aggregate hasil analisis peluang masuk. Satu baris per panggilan
	  analisis; klien membaca yang terbaru per user.

=============================================================================
*/
type UniversitiesAnalysisModel struct {
	// PK
	UniversitiesAnalysisID uuid.UUID `json:"universities_analysis_id" gorm:"column:universities_analysis_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	UniversitiesAnalysisUserID uuid.UUID `json:"universities_analysis_user_id" gorm:"column:universities_analysis_user_id;type:uuid;not null;index:idx_universities_analysis_user"`

	// Timestamps
	UniversitiesAnalysisCreatedAt time.Time `json:"universities_analysis_created_at" gorm:"column:universities_analysis_created_at;autoCreateTime"`

	// Relasi
	Institutes []UniversitiesAnalysisInstituteModel `json:"institutes,omitempty" gorm:"foreignKey:UAInstituteAnalysisID;references:UniversitiesAnalysisID"`
}

func (UniversitiesAnalysisModel) TableName() string { return "universities_analysis" }

type UniversitiesAnalysisInstituteModel struct {
	UAInstituteID            uuid.UUID `json:"universities_analysis_institute_id" gorm:"column:universities_analysis_institute_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UAInstituteAnalysisID    uuid.UUID `json:"universities_analysis_institute_analysis_id" gorm:"column:universities_analysis_institute_analysis_id;type:uuid;not null;index:idx_ua_institutes_analysis"`
	UAInstituteInstitutionID uuid.UUID `json:"universities_analysis_institute_institution_id" gorm:"column:universities_analysis_institute_institution_id;type:uuid;not null"`

	UAInstituteChancePercentage float64 `json:"universities_analysis_institute_chance_percentage" gorm:"column:universities_analysis_institute_chance_percentage"`

	// Relasi
	Institution *InstitutionModel                    `json:"institution,omitempty" gorm:"foreignKey:UAInstituteInstitutionID;references:InstitutionID"`
	Attributes  []UniversitiesAnalysisAttributeModel `json:"attributes,omitempty" gorm:"foreignKey:UAAttributeInstituteID;references:UAInstituteID"`
	Plan        []UniversitiesAnalysisPlanModel      `json:"plan,omitempty" gorm:"foreignKey:UAPlanInstituteID;references:UAInstituteID"`
}

func (UniversitiesAnalysisInstituteModel) TableName() string {
	return "universities_analysis_institutes"
}

type UniversitiesAnalysisAttributeModel struct {
	UAAttributeID          uuid.UUID `json:"universities_analysis_attribute_id" gorm:"column:universities_analysis_attribute_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UAAttributeInstituteID uuid.UUID `json:"universities_analysis_attribute_institute_id" gorm:"column:universities_analysis_attribute_institute_id;type:uuid;not null;index:idx_ua_attributes_institute"`

	UAAttributeName           string                `json:"universities_analysis_attribute_name" gorm:"column:universities_analysis_attribute_name;type:varchar(200);not null"`
	UAAttributeType           AnalysisAttributeType `json:"universities_analysis_attribute_type" gorm:"column:universities_analysis_attribute_type;type:varchar(10);not null"`
	UAAttributeRecommendation string                `json:"universities_analysis_attribute_recommendation" gorm:"column:universities_analysis_attribute_recommendation;type:text"`
}

func (UniversitiesAnalysisAttributeModel) TableName() string {
	return "universities_analysis_results_attributes"
}

type UniversitiesAnalysisPlanModel struct {
	UAPlanID          uuid.UUID `json:"universities_analysis_plan_id" gorm:"column:universities_analysis_plan_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UAPlanInstituteID uuid.UUID `json:"universities_analysis_plan_institute_id" gorm:"column:universities_analysis_plan_institute_id;type:uuid;not null;index:idx_ua_plan_institute"`

	UAPlanOrder         int    `json:"universities_analysis_plan_order" gorm:"column:universities_analysis_plan_order;not null"`
	UAPlanName          string `json:"universities_analysis_plan_name" gorm:"column:universities_analysis_plan_name;type:varchar(200);not null"`
	UAPlanDescription   string `json:"universities_analysis_plan_description" gorm:"column:universities_analysis_plan_description;type:text"`
	UAPlanDurationMonth int    `json:"universities_analysis_plan_duration_month" gorm:"column:universities_analysis_plan_duration_month"`
}

func (UniversitiesAnalysisPlanModel) TableName() string {
	return "universities_analysis_results_plan"
}
