// file: internals/databases/migrate.go
package database

import (
	"log"

	postmodel "jinaq_backend/internals/features/social/posts/model"
	testmodel "jinaq_backend/internals/features/tests/model"
	universitymodel "jinaq_backend/internals/features/universities/model"
	usermodel "jinaq_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema untuk seluruh model.
// Urutan penting: tabel referensi dulu, baru tabel yang bergantung.
func AutoMigrate() {
	log.Println("🛠  AutoMigrate skema...")

	err := DB.AutoMigrate(
		// users
		&usermodel.UserModel{},
		&usermodel.UserAcademicModel{},
		&usermodel.UserLanguageProficiencyModel{},

		// tests
		&testmodel.TestModel{},
		&testmodel.QuestionModel{},
		&testmodel.AnswerModel{},
		&testmodel.TestSubmissionModel{},
		&testmodel.TestSubmissionQuestionModel{},
		&testmodel.PersonalityAnalysisModel{},
		&testmodel.PersonalityAnalysisMbtiModel{},
		&testmodel.PersonalityAnalysisProfessionModel{},
		&testmodel.PersonalityAnalysisMajorModel{},
		&testmodel.PersonalityAnalysisAttributeModel{},

		// universities
		&universitymodel.CountryModel{},
		&universitymodel.CityModel{},
		&universitymodel.InstitutionModel{},
		&universitymodel.InstitutionMajorModel{},
		&universitymodel.InstitutionEnrollmentDocModel{},
		&universitymodel.InstitutionEnrollmentReqModel{},
		&universitymodel.UniversitiesAnalysisModel{},
		&universitymodel.UniversitiesAnalysisInstituteModel{},
		&universitymodel.UniversitiesAnalysisAttributeModel{},
		&universitymodel.UniversitiesAnalysisPlanModel{},

		// social
		&postmodel.PostModel{},
		&postmodel.PostLikeModel{},
		&postmodel.PostCommentModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
