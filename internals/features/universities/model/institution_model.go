// file: internals/features/universities/model/institution_model.go
package model

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =============================================================================
   ENUM-like: tipe institusi & pendukungnya
============================================================================= */

type InstitutionType string

const (
	InstitutionSchool     InstitutionType = "SCHOOL"
	InstitutionCollege    InstitutionType = "COLLEGE"
	InstitutionUniversity InstitutionType = "UNIVERSITY"
)

func (t InstitutionType) String() string { return string(t) }
func (t InstitutionType) Valid() bool {
	switch t {
	case InstitutionSchool, InstitutionCollege, InstitutionUniversity:
		return true
	default:
		return false
	}
}

func (t *InstitutionType) Scan(value any) error        { return scanEnum(value, t) }
func (t InstitutionType) Value() (driver.Value, error) { return valueEnum(t) }

type InstitutionFinancingType string

const (
	FinancingPrivate    InstitutionFinancingType = "PRIVATE"
	FinancingGov        InstitutionFinancingType = "GOV"
	FinancingAutonomous InstitutionFinancingType = "AUTONOMOUS"
)

func (t InstitutionFinancingType) String() string { return string(t) }
func (t InstitutionFinancingType) Valid() bool {
	switch t {
	case FinancingPrivate, FinancingGov, FinancingAutonomous:
		return true
	default:
		return false
	}
}

func (t *InstitutionFinancingType) Scan(value any) error        { return scanEnum(value, t) }
func (t InstitutionFinancingType) Value() (driver.Value, error) { return valueEnum(t) }

type InstitutionMajorCategory string

const (
	MajorSTEM       InstitutionMajorCategory = "STEM"
	MajorBusiness   InstitutionMajorCategory = "BUSINESS"
	MajorArts       InstitutionMajorCategory = "ARTS"
	MajorHumanities InstitutionMajorCategory = "HUMANITIES"
	MajorMedicine   InstitutionMajorCategory = "MEDICINE"
	MajorLaw        InstitutionMajorCategory = "LAW"
	MajorOther      InstitutionMajorCategory = "OTHER"
)

func (c InstitutionMajorCategory) String() string { return string(c) }
func (c InstitutionMajorCategory) Valid() bool {
	switch c {
	case MajorSTEM, MajorBusiness, MajorArts, MajorHumanities, MajorMedicine, MajorLaw, MajorOther:
		return true
	default:
		return false
	}
}

func (c *InstitutionMajorCategory) Scan(value any) error        { return scanEnum(value, c) }
func (c InstitutionMajorCategory) Value() (driver.Value, error) { return valueEnum(c) }

type EnrollmentRequirementType string

const (
	RequirementAcademic EnrollmentRequirementType = "ACADEMIC"
	RequirementLanguage EnrollmentRequirementType = "LANGUAGE"
	RequirementOther    EnrollmentRequirementType = "OTHER"
)

func (t EnrollmentRequirementType) String() string { return string(t) }
func (t EnrollmentRequirementType) Valid() bool {
	switch t {
	case RequirementAcademic, RequirementLanguage, RequirementOther:
		return true
	default:
		return false
	}
}

func (t *EnrollmentRequirementType) Scan(value any) error        { return scanEnum(value, t) }
func (t EnrollmentRequirementType) Value() (driver.Value, error) { return valueEnum(t) }

// scanEnum / valueEnum: helper generik supaya tiap enum tidak mengulang
// boilerplate Scan/Value.
type validEnum interface {
	~string
	Valid() bool
}

func scanEnum[T validEnum](value any, dst *T) error {
	if value == nil {
		*dst = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*dst = T(v)
	case []byte:
		*dst = T(string(v))
	default:
		return fmt.Errorf("unsupported enum type: %T", value)
	}
	if !(*dst).Valid() {
		return fmt.Errorf("invalid enum value: %q", *dst)
	}
	return nil
}

func valueEnum[T validEnum](v T) (driver.Value, error) {
	if v == "" {
		return nil, nil
	}
	if !v.Valid() {
		return nil, fmt.Errorf("invalid enum value: %q", v)
	}
	return string(v), nil
}

/*
	=============================================================================
	  MODEL: countries & cities

=============================================================================
*/
type CountryModel struct {
	CountryID    uuid.UUID `json:"country_id" gorm:"column:country_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CountryName  string    `json:"country_name" gorm:"column:country_name;type:varchar(100);not null;uniqueIndex:uq_countries_name"`
	CountryEmoji string    `json:"country_emoji" gorm:"column:country_emoji;type:varchar(10)"`
}

func (CountryModel) TableName() string { return "countries" }

type CityModel struct {
	CityID        uuid.UUID `json:"city_id" gorm:"column:city_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CityCountryID uuid.UUID `json:"city_country_id" gorm:"column:city_country_id;type:uuid;not null;index:idx_cities_country"`
	CityName      string    `json:"city_name" gorm:"column:city_name;type:varchar(100);not null"`

	Country *CountryModel `json:"country,omitempty" gorm:"foreignKey:CityCountryID;references:CountryID"`
}

func (CityModel) TableName() string { return "cities" }

/*
	=============================================================================
	  MODEL: institutions (+ majors, dokumen & syarat pendaftaran)

=============================================================================
*/
type InstitutionModel struct {
	// PK
	InstitutionID uuid.UUID `json:"institution_id" gorm:"column:institution_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Data
	InstitutionName           string                   `json:"institution_name" gorm:"column:institution_name;type:varchar(200);not null"`
	InstitutionShortName      string                   `json:"institution_short_name" gorm:"column:institution_short_name;type:varchar(50)"`
	InstitutionDescription    string                   `json:"institution_description" gorm:"column:institution_description;type:text"`
	InstitutionFoundationYear string                   `json:"institution_foundation_year" gorm:"column:institution_foundation_year;type:varchar(10)"`
	InstitutionFinancingType  InstitutionFinancingType `json:"institution_financing_type" gorm:"column:institution_financing_type;type:varchar(20);not null"`
	InstitutionType           InstitutionType          `json:"institution_type" gorm:"column:institution_type;type:varchar(20);not null"`
	InstitutionWebsite        string                   `json:"institution_website" gorm:"column:institution_website;type:varchar(255)"`
	InstitutionEmail          string                   `json:"institution_email" gorm:"column:institution_email;type:varchar(255)"`
	InstitutionContactNumber  string                   `json:"institution_contact_number" gorm:"column:institution_contact_number;type:varchar(50)"`
	InstitutionAddress        string                   `json:"institution_address" gorm:"column:institution_address;type:text"`
	InstitutionHasDorm        bool                     `json:"institution_has_dorm" gorm:"column:institution_has_dorm;default:false"`
	InstitutionImageURL       string                   `json:"institution_image_url" gorm:"column:institution_image_url;type:varchar(500)"`

	// FK
	InstitutionCityID    uuid.UUID `json:"institution_city_id" gorm:"column:institution_city_id;type:uuid;not null;index:idx_institutions_city"`
	InstitutionCountryID uuid.UUID `json:"institution_country_id" gorm:"column:institution_country_id;type:uuid;not null;index:idx_institutions_country"`

	// Timestamps
	InstitutionCreatedAt time.Time `json:"institution_created_at" gorm:"column:institution_created_at;autoCreateTime"`
	InstitutionUpdatedAt time.Time `json:"institution_updated_at" gorm:"column:institution_updated_at;autoUpdateTime"`

	// Relasi
	City                   *CityModel                      `json:"city,omitempty" gorm:"foreignKey:InstitutionCityID;references:CityID"`
	Country                *CountryModel                   `json:"country,omitempty" gorm:"foreignKey:InstitutionCountryID;references:CountryID"`
	Majors                 []InstitutionMajorModel         `json:"majors,omitempty" gorm:"foreignKey:MajorInstitutionID;references:InstitutionID"`
	EnrollmentDocuments    []InstitutionEnrollmentDocModel `json:"enrollment_documents,omitempty" gorm:"foreignKey:EnrollmentDocInstitutionID;references:InstitutionID"`
	EnrollmentRequirements []InstitutionEnrollmentReqModel `json:"enrollment_requirements,omitempty" gorm:"foreignKey:EnrollmentReqInstitutionID;references:InstitutionID"`
}

func (InstitutionModel) TableName() string { return "institutions" }

type InstitutionMajorModel struct {
	MajorID            uuid.UUID `json:"institution_major_id" gorm:"column:institution_major_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MajorInstitutionID uuid.UUID `json:"institution_major_institution_id" gorm:"column:institution_major_institution_id;type:uuid;not null;index:idx_institution_majors_institution"`

	MajorName             string                   `json:"institution_major_name" gorm:"column:institution_major_name;type:varchar(200);not null"`
	MajorDurationYears    int                      `json:"institution_major_duration_years" gorm:"column:institution_major_duration_years"`
	MajorLearningLanguage string                   `json:"institution_major_learning_language" gorm:"column:institution_major_learning_language;type:varchar(100)"`
	MajorDescription      string                   `json:"institution_major_description" gorm:"column:institution_major_description;type:text"`
	MajorPrice            float64                  `json:"institution_major_price" gorm:"column:institution_major_price"`
	MajorCategory         InstitutionMajorCategory `json:"institution_major_category" gorm:"column:institution_major_category;type:varchar(20);not null"`
}

func (InstitutionMajorModel) TableName() string { return "institution_majors" }

type InstitutionEnrollmentDocModel struct {
	EnrollmentDocID            uuid.UUID `json:"institution_enrollment_document_id" gorm:"column:institution_enrollment_document_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentDocInstitutionID uuid.UUID `json:"institution_enrollment_document_institution_id" gorm:"column:institution_enrollment_document_institution_id;type:uuid;not null;index:idx_institution_docs_institution"`

	EnrollmentDocName string `json:"institution_enrollment_document_name" gorm:"column:institution_enrollment_document_name;type:varchar(200);not null"`
}

func (InstitutionEnrollmentDocModel) TableName() string { return "institution_enrollment_documents" }

type InstitutionEnrollmentReqModel struct {
	EnrollmentReqID            uuid.UUID `json:"institution_enrollment_requirement_id" gorm:"column:institution_enrollment_requirement_id;type:uuid;default:gen_random_uuid();primaryKey"`
	EnrollmentReqInstitutionID uuid.UUID `json:"institution_enrollment_requirement_institution_id" gorm:"column:institution_enrollment_requirement_institution_id;type:uuid;not null;index:idx_institution_reqs_institution"`

	EnrollmentReqName  string                    `json:"institution_enrollment_requirement_name" gorm:"column:institution_enrollment_requirement_name;type:varchar(200);not null"`
	EnrollmentReqType  EnrollmentRequirementType `json:"institution_enrollment_requirement_type" gorm:"column:institution_enrollment_requirement_type;type:varchar(20);not null"`
	EnrollmentReqValue string                    `json:"institution_enrollment_requirement_value" gorm:"column:institution_enrollment_requirement_value;type:varchar(200)"`
}

func (InstitutionEnrollmentReqModel) TableName() string { return "institution_enrollment_requirements" }
