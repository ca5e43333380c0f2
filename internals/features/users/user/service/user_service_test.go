// file: internals/features/users/user/service/user_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/users/user/dto"
	"jinaq_backend/internals/features/users/user/model"
)

/* =======================================================
   FAKE REPOSITORY
   ======================================================= */

type fakeRepo struct {
	users map[uuid.UUID]*model.UserModel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[uuid.UUID]*model.UserModel{}}
}

func (f *fakeRepo) addUser(firstName, lastName string) uuid.UUID {
	id := uuid.New()
	f.users[id] = &model.UserModel{
		UserID:        id,
		UserFirstName: firstName,
		UserLastName:  lastName,
		UserEmail:     "sinta@example.com",
		UserUsername:  "sinta",
	}
	return id
}

func (f *fakeRepo) GetByID(_ context.Context, userID uuid.UUID) (*model.UserModel, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeRepo) UpdateColumns(_ context.Context, userID uuid.UUID, cols map[string]any) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := cols["user_first_name"]; ok {
		u.UserFirstName = v.(string)
	}
	if v, ok := cols["user_last_name"]; ok {
		u.UserLastName = v.(string)
	}
	if v, ok := cols["user_bio_about"]; ok {
		u.UserBioAbout = v.(string)
	}
	return nil
}

func (f *fakeRepo) UpsertAcademic(_ context.Context, academic *model.UserAcademicModel) error {
	u, ok := f.users[academic.UserAcademicUserID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.AcademicInfo = academic
	return nil
}

func (f *fakeRepo) ReplaceLanguages(_ context.Context, userID uuid.UUID, languages []model.UserLanguageProficiencyModel) error {
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.LanguageProficiencies = languages
	return nil
}

func strptr(s string) *string   { return &s }
func f64ptr(v float64) *float64 { return &v }

/* =======================================================
   TESTS
   ======================================================= */

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeRepo())

	_, err := svc.GetProfile(context.Background(), uuid.New())

	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	repo := newFakeRepo()
	userID := repo.addUser("Sinta", "Dewi")
	svc := NewUserService(repo)

	resp, err := svc.UpdateProfile(context.Background(), userID, dto.UpdateProfileRequest{
		FirstName: strptr("Shinta"),
		BioAbout:  strptr("Calon mahasiswa teknik"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Shinta", resp.FirstName)
	assert.Equal(t, "Dewi", resp.LastName) // tidak ikut berubah
	assert.Equal(t, "Calon mahasiswa teknik", resp.BioAbout)
}

func TestUpdateProfile_AcademicAndLanguages(t *testing.T) {
	repo := newFakeRepo()
	userID := repo.addUser("Sinta", "Dewi")
	svc := NewUserService(repo)

	langs := []dto.UpdateLanguageRequest{
		{Language: "English", Level: "FLUENT"},
		{Language: "Indonesian", Level: "NATIVE"},
	}
	resp, err := svc.UpdateProfile(context.Background(), userID, dto.UpdateProfileRequest{
		Academic:  &dto.UpdateAcademicRequest{GPA: f64ptr(3.8)},
		Languages: &langs,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.AcademicInfo)
	require.NotNil(t, resp.AcademicInfo.GPA)
	assert.InDelta(t, 3.8, *resp.AcademicInfo.GPA, 1e-9)
	require.Len(t, resp.LanguageProficiencies, 2)
	assert.Equal(t, model.LanguageFluent, resp.LanguageProficiencies[0].Level)
}

func TestSerializeProfile(t *testing.T) {
	dob := time.Date(2005, 4, 12, 0, 0, 0, 0, time.UTC)
	u := &model.UserModel{
		UserFirstName:   "Sinta",
		UserLastName:    "Dewi",
		UserEmail:       "sinta@example.com",
		UserUsername:    "sinta",
		UserDateOfBirth: &dob,
		UserInterests:   []string{"fisika", "robotika"},
		AcademicInfo: &model.UserAcademicModel{
			UserAcademicGPA: f64ptr(3.8),
		},
		LanguageProficiencies: []model.UserLanguageProficiencyModel{
			{UserLanguageName: "English", UserLanguageLevel: model.LanguageFluent},
		},
	}

	profile := SerializeProfile(u)

	assert.Equal(t, "Sinta", profile["first_name"])
	assert.Equal(t, "2005-04-12", profile["date_of_birth"])
	assert.Equal(t, []string{"fisika", "robotika"}, profile["interests"])

	academic, ok := profile["academic_info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, f64ptr(3.8), academic["gpa"])

	languages, ok := profile["language_proficiencies"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, languages, 1)
	assert.Equal(t, "FLUENT", languages[0]["level"])
}

func TestSerializeProfile_EmptyOptionalFields(t *testing.T) {
	u := &model.UserModel{UserFirstName: "Budi"}

	profile := SerializeProfile(u)

	assert.Nil(t, profile["date_of_birth"])
	assert.Nil(t, profile["academic_info"])
	assert.Empty(t, profile["language_proficiencies"])
}
