package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jinaq_backend/internals/features/universities/dto"
	"jinaq_backend/internals/features/universities/model"
	usermodel "jinaq_backend/internals/features/users/user/model"
	helper "jinaq_backend/internals/helpers"
	"jinaq_backend/internals/llm"
)

/* =======================================================
   FAKES
   ======================================================= */

type fakeRepo struct {
	countries    []CountryWithCount
	institutions map[uuid.UUID]*model.InstitutionModel
	analyses     []*model.UniversitiesAnalysisModel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{institutions: map[uuid.UUID]*model.InstitutionModel{}}
}

func (f *fakeRepo) addInstitution(name string) *model.InstitutionModel {
	inst := &model.InstitutionModel{
		InstitutionID:            uuid.New(),
		InstitutionName:          name,
		InstitutionFinancingType: model.FinancingGov,
		InstitutionType:          model.InstitutionUniversity,
	}
	f.institutions[inst.InstitutionID] = inst
	return inst
}

func (f *fakeRepo) GetCountriesWithUniversityCount(_ context.Context) ([]CountryWithCount, error) {
	return f.countries, nil
}

func (f *fakeRepo) GetInstitutions(_ context.Context, filter dto.InstitutionFilter, p helper.Params) ([]model.InstitutionModel, int64, error) {
	var out []model.InstitutionModel
	for _, inst := range f.institutions {
		out = append(out, *inst)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetInstitutionByID(_ context.Context, id uuid.UUID) (*model.InstitutionModel, error) {
	inst, ok := f.institutions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return inst, nil
}

func (f *fakeRepo) GetTopInstitutions(_ context.Context, limit int) ([]model.InstitutionModel, error) {
	var out []model.InstitutionModel
	for _, inst := range f.institutions {
		if len(out) >= limit {
			break
		}
		out = append(out, *inst)
	}
	return out, nil
}

func (f *fakeRepo) CreateAnalysis(_ context.Context, analysis *model.UniversitiesAnalysisModel) error {
	analysis.UniversitiesAnalysisID = uuid.New()
	f.analyses = append(f.analyses, analysis)
	return nil
}

func (f *fakeRepo) GetLatestAnalysis(_ context.Context, userID uuid.UUID) (*model.UniversitiesAnalysisModel, error) {
	for i := len(f.analyses) - 1; i >= 0; i-- {
		if f.analyses[i].UniversitiesAnalysisUserID == userID {
			return f.analyses[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeUsers struct {
	users map[uuid.UUID]*usermodel.UserModel
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uuid.UUID]*usermodel.UserModel{}}
}

func (f *fakeUsers) addUser() *usermodel.UserModel {
	gpa := 3.8
	u := &usermodel.UserModel{
		UserID:        uuid.New(),
		UserFirstName: "Sinta",
		UserLastName:  "Dewi",
		UserEmail:     "sinta@example.com",
		UserUsername:  "sinta",
		AcademicInfo: &usermodel.UserAcademicModel{
			UserAcademicGPA: &gpa,
		},
		LanguageProficiencies: []usermodel.UserLanguageProficiencyModel{
			{UserLanguageName: "English", UserLanguageLevel: usermodel.LanguageFluent},
		},
	}
	f.users[u.UserID] = u
	return u
}

func (f *fakeUsers) GetByID(_ context.Context, userID uuid.UUID) (*usermodel.UserModel, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func analysisResponseFor(institutionIDs ...uuid.UUID) json.RawMessage {
	institutes := make([]map[string]any, 0, len(institutionIDs))
	for _, id := range institutionIDs {
		institutes = append(institutes, map[string]any{
			"institution_id":    id.String(),
			"chance_percentage": 72.5,
			"attributes": []map[string]any{
				{"name": "GPA", "type": "PROS", "recommendation": "Pertahankan nilai."},
			},
			"plan": []map[string]any{
				{"order": 1, "name": "TOEFL", "description": "Ambil tes bahasa.", "duration_month": 3},
			},
		})
	}
	b, _ := json.Marshal(map[string]any{"institutes": institutes})
	return b
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

/* =======================================================
   ANALISIS UNIVERSITAS
   ======================================================= */

func TestCreateAnalysis_WithChosenInstitutions(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	inst := repo.addInstitution("Universitas Indonesia")

	mock := llm.NewMockProvider(llm.MockResponse{Content: analysisResponseFor(inst.InstitutionID)})
	svc := NewUniversitiesService(repo, users, mock)

	result, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{
		InstitutionIDs: []uuid.UUID{inst.InstitutionID},
	})
	require.NoError(t, err)
	require.Len(t, result.Institutes, 1)
	assert.InDelta(t, 72.5, result.Institutes[0].ChancePercentage, 0.001)
	require.NotNil(t, result.Institutes[0].Institution)
	assert.Equal(t, inst.InstitutionID, result.Institutes[0].Institution.ID)
	require.Len(t, result.Institutes[0].Plan, 1)
	assert.Equal(t, 1, result.Institutes[0].Plan[0].Order)

	// Prompt memuat profil user dan data institusi.
	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].User, "Universitas Indonesia")
	assert.Contains(t, mock.Calls[0].User, "sinta@example.com")

	require.Len(t, repo.analyses, 1)
}

func TestCreateAnalysis_DefaultTopN(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	inst := repo.addInstitution("Universitas Gadjah Mada")

	mock := llm.NewMockProvider(llm.MockResponse{Content: analysisResponseFor(inst.InstitutionID)})
	svc := NewUniversitiesService(repo, users, mock)

	result, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{})
	require.NoError(t, err)
	require.Len(t, result.Institutes, 1)
	assert.Equal(t, 1, mock.CallCount())
}

func TestCreateAnalysis_UnknownInstitution(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	mock := llm.NewMockProvider()
	svc := NewUniversitiesService(repo, users, mock)

	_, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{
		InstitutionIDs: []uuid.UUID{uuid.New()},
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.Equal(t, 0, mock.CallCount())
}

func TestCreateAnalysis_UserNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addInstitution("ITB")
	mock := llm.NewMockProvider()
	svc := NewUniversitiesService(repo, newFakeUsers(), mock)

	_, err := svc.CreateAnalysis(context.Background(), uuid.New(), dto.CreateAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
	assert.Equal(t, 0, mock.CallCount())
}

func TestCreateAnalysis_ProviderFailureNothingPersisted(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	repo.addInstitution("ITB")

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewUniversitiesService(repo, users, mock)

	_, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, fiberCode(t, err))
	assert.Empty(t, repo.analyses)
}

func TestCreateAnalysis_EchoedUnknownInstitutionRejected(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	repo.addInstitution("ITB")

	// LLM balas institution_id yang tidak pernah dikirim.
	mock := llm.NewMockProvider(llm.MockResponse{Content: analysisResponseFor(uuid.New())})
	svc := NewUniversitiesService(repo, users, mock)

	_, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, fiberCode(t, err))
	assert.Empty(t, repo.analyses)
}

func TestGetLatestAnalysis(t *testing.T) {
	repo := newFakeRepo()
	users := newFakeUsers()
	user := users.addUser()
	inst := repo.addInstitution("UI")

	mock := llm.NewMockProvider(llm.MockResponse{Content: analysisResponseFor(inst.InstitutionID)})
	svc := NewUniversitiesService(repo, users, mock)

	created, err := svc.CreateAnalysis(context.Background(), user.UserID, dto.CreateAnalysisRequest{})
	require.NoError(t, err)

	latest, err := svc.GetLatestAnalysis(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, latest.ID)

	_, err = svc.GetLatestAnalysis(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

/* =======================================================
   KATALOG
   ======================================================= */

func TestGetCountries(t *testing.T) {
	repo := newFakeRepo()
	repo.countries = []CountryWithCount{
		{
			CountryModel: model.CountryModel{
				CountryID:    uuid.New(),
				CountryName:  "Indonesia",
				CountryEmoji: "🇮🇩",
			},
			UniversitiesCount: 12,
		},
	}
	svc := NewUniversitiesService(repo, newFakeUsers(), llm.NewMockProvider())

	countries, err := svc.GetCountries(context.Background())
	require.NoError(t, err)
	require.Len(t, countries, 1)
	assert.Equal(t, "Indonesia", countries[0].Name)
	assert.Equal(t, int64(12), countries[0].UniversitiesCount)
}

func TestListInstitutions_Meta(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 3; i++ {
		repo.addInstitution(fmt.Sprintf("Universitas %d", i))
	}
	svc := NewUniversitiesService(repo, newFakeUsers(), llm.NewMockProvider())

	p := helper.Params{Page: 1, PerPage: 25}
	institutions, meta, err := svc.ListInstitutions(context.Background(), dto.InstitutionFilter{}, p)
	require.NoError(t, err)
	assert.Len(t, institutions, 3)
	assert.Equal(t, int64(3), meta.Total)
}

func TestGetInstitution_NotFound(t *testing.T) {
	svc := NewUniversitiesService(newFakeRepo(), newFakeUsers(), llm.NewMockProvider())
	_, err := svc.GetInstitution(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}
