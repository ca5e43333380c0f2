package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildShortAnalysisRequest(t *testing.T) {
	req, err := BuildShortAnalysisRequest(map[string]any{
		"test_name": "Logika Dasar",
		"answers":   []string{"A", "B"},
	})
	require.NoError(t, err)

	assert.Equal(t, shortAnalysisSystem, req.System)
	assert.Contains(t, req.User, "Logika Dasar")
	assert.Contains(t, req.User, "analysis_summary")
	assert.Contains(t, req.User, "analysis_key_factors")
	assert.Same(t, ShortAnalysisSchema, req.Schema)
}

func TestBuildPersonalityAnalysisRequest(t *testing.T) {
	req, err := BuildPersonalityAnalysisRequest([]map[string]any{
		{"test_name": "MBTI", "answers": []string{"Setuju"}},
	})
	require.NoError(t, err)

	assert.Equal(t, personalityAnalysisSystem, req.System)
	assert.Contains(t, req.User, "MBTI")
	assert.Contains(t, req.User, "introversion_percentage")
	assert.Same(t, PersonalityAnalysisSchema, req.Schema)
}

func TestBuildUniversityAnalysisRequest(t *testing.T) {
	profile := map[string]any{"gpa": 3.8, "country": "Indonesia"}
	universities := []map[string]any{
		{"institution_id": "a2f1", "name": "Universitas Indonesia"},
	}

	req, err := BuildUniversityAnalysisRequest(profile, universities)
	require.NoError(t, err)

	assert.Equal(t, universityAnalysisSystem, req.System)
	assert.Contains(t, req.User, "Universitas Indonesia")
	assert.Contains(t, req.User, "chance_percentage")
	assert.Contains(t, req.User, "institution_id")
	assert.Same(t, UniversityAnalysisSchema, req.Schema)
}

// Schema di registry harus bisa dicompile dan memvalidasi payload contoh.
func TestSchemas_AcceptWellFormedPayloads(t *testing.T) {
	shortPayload := json.RawMessage(`{
		"analysis_summary": "Jawaban konsisten dan analitis.",
		"analysis_key_factors": ["konsistensi", "kecepatan"]
	}`)
	require.NoError(t, validateResponse(ShortAnalysisSchema, shortPayload))

	personalityPayload := json.RawMessage(`{
		"mbti": {
			"title": "Sang Arsitek",
			"description": "Pemikir strategis.",
			"mbti_code": "INTJ",
			"mbti_name": "Architect",
			"short_attributes": ["strategis"],
			"work_styles": ["mandiri"],
			"introversion_percentage": 80,
			"thinking_percentage": 75,
			"creativity_percentage": 60,
			"intuition_percentage": 70,
			"planning_percentage": 85,
			"leading_percentage": 55
		},
		"professions": [{"name": "Data Scientist", "percentage": 88}],
		"majors": [{"category": "Computer Science"}],
		"attributes": [{
			"type": "PROS",
			"name": "Analitis",
			"description": "Kuat di pemecahan masalah.",
			"recommendations": "Pertahankan kebiasaan belajar terstruktur."
		}]
	}`)
	require.NoError(t, validateResponse(PersonalityAnalysisSchema, personalityPayload))

	universityPayload := json.RawMessage(`{
		"institutes": [{
			"institution_id": "a2f1",
			"chance_percentage": 72.5,
			"attributes": [{"name": "GPA", "type": "PROS", "recommendation": "Pertahankan nilai."}],
			"plan": [{"order": 1, "name": "TOEFL", "description": "Ambil tes bahasa.", "duration_month": 3}]
		}]
	}`)
	require.NoError(t, validateResponse(UniversityAnalysisSchema, universityPayload))
}

func TestSchemas_RejectOutOfRangePercentage(t *testing.T) {
	payload := json.RawMessage(`{
		"institutes": [{
			"institution_id": "a2f1",
			"chance_percentage": 140,
			"attributes": [],
			"plan": []
		}]
	}`)
	err := validateResponse(UniversityAnalysisSchema, payload)
	assert.Error(t, err)
}
