// file: internals/features/users/user/model/user_model.go
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
	  ENUM-like: Language Level ('NATIVE','FLUENT','BEGINNER')

=============================================================================
*/
type LanguageLevel string

const (
	LanguageNative   LanguageLevel = "NATIVE"
	LanguageFluent   LanguageLevel = "FLUENT"
	LanguageBeginner LanguageLevel = "BEGINNER"
)

func (l LanguageLevel) String() string { return string(l) }
func (l LanguageLevel) Valid() bool {
	switch l {
	case LanguageNative, LanguageFluent, LanguageBeginner:
		return true
	default:
		return false
	}
}

func (l *LanguageLevel) Scan(value any) error {
	if value == nil {
		*l = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*l = LanguageLevel(v)
	case []byte:
		*l = LanguageLevel(string(v))
	default:
		return fmt.Errorf("unsupported type for LanguageLevel: %T", value)
	}
	if !l.Valid() {
		return fmt.Errorf("invalid LanguageLevel: %q", *l)
	}
	return nil
}
func (l LanguageLevel) Value() (driver.Value, error) {
	if l == "" {
		return nil, nil
	}
	if !l.Valid() {
		return nil, fmt.Errorf("invalid LanguageLevel: %q", l)
	}
	return string(l), nil
}

/*
	=============================================================================
	  MODEL: users
	  Identitas datang dari JWT; tabel ini menyimpan profil yang dipakai
	  analisis universitas (bio, minat, data akademik, bahasa).

=============================================================================
*/
type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	UserFirstName   string     `json:"user_first_name" gorm:"column:user_first_name;type:varchar(100)"`
	UserLastName    string     `json:"user_last_name" gorm:"column:user_last_name;type:varchar(100)"`
	UserEmail       string     `json:"user_email" gorm:"column:user_email;type:varchar(255);uniqueIndex:uq_users_email"`
	UserUsername    string     `json:"user_username" gorm:"column:user_username;type:varchar(100);uniqueIndex:uq_users_username"`
	UserDateOfBirth *time.Time `json:"user_date_of_birth,omitempty" gorm:"column:user_date_of_birth"`

	// Profil
	UserBioAbout  string         `json:"user_bio_about" gorm:"column:user_bio_about;type:text"`
	UserInterests pq.StringArray `json:"user_interests" gorm:"column:user_interests;type:text[]"`

	// Timestamps
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;autoUpdateTime"`

	// Relasi
	AcademicInfo          *UserAcademicModel             `json:"academic_info,omitempty" gorm:"foreignKey:UserAcademicUserID;references:UserID"`
	LanguageProficiencies []UserLanguageProficiencyModel `json:"language_proficiencies,omitempty" gorm:"foreignKey:UserLanguageUserID;references:UserID"`
}

func (UserModel) TableName() string { return "users" }

/*
	=============================================================================
	  MODEL: users_academic (satu baris per user)

=============================================================================
*/
type UserAcademicModel struct {
	UserAcademicID     uuid.UUID `json:"user_academic_id" gorm:"column:user_academic_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserAcademicUserID uuid.UUID `json:"user_academic_user_id" gorm:"column:user_academic_user_id;type:uuid;not null;uniqueIndex:uq_users_academic_user"`

	UserAcademicGPA   *float64 `json:"user_academic_gpa,omitempty" gorm:"column:user_academic_gpa"`
	UserAcademicSAT   *int     `json:"user_academic_sat,omitempty" gorm:"column:user_academic_sat"`
	UserAcademicIELTS *float64 `json:"user_academic_ielts,omitempty" gorm:"column:user_academic_ielts"`
	UserAcademicTOEFL *int     `json:"user_academic_toefl,omitempty" gorm:"column:user_academic_toefl"`
}

func (UserAcademicModel) TableName() string { return "users_academic" }

/*
	=============================================================================
	  MODEL: users_language_proficiency

=============================================================================
*/
type UserLanguageProficiencyModel struct {
	UserLanguageID     uuid.UUID `json:"user_language_id" gorm:"column:user_language_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserLanguageUserID uuid.UUID `json:"user_language_user_id" gorm:"column:user_language_user_id;type:uuid;not null;index:idx_users_language_user"`

	UserLanguageName  string        `json:"user_language_name" gorm:"column:user_language_name;type:varchar(100);not null"`
	UserLanguageLevel LanguageLevel `json:"user_language_level" gorm:"column:user_language_level;type:varchar(20);not null"`
}

func (UserLanguageProficiencyModel) TableName() string { return "users_language_proficiency" }
