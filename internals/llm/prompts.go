// file: internals/llm/prompts.go
package llm

import (
	"encoding/json"
	"fmt"
)

/* =======================================================
   PROMPT REGISTRY
   Template system + user untuk tiap jalur analisis.
   Skema JSON ikut disisipkan ke user prompt supaya model
   tahu bentuk output yang diminta (response_format json_object
   tidak membawa skema sendiri).
   ======================================================= */

const universityAnalysisSystem = "You are a professional university admissions consultant. Your task is to provide a detailed analysis of a student's chances of admission to a list of universities."

const universityAnalysisUser = `
**Student Profile:**
%s

**Universities for Analysis:**
%s

**Instructions:**
1.  For each university, provide a ` + "`chance_percentage`" + ` of admission.
2.  For each university, provide a list of ` + "`attributes`" + ` (PROS and CONS) for the student's application to that specific university.
3.  For each university, provide a detailed ` + "`plan`" + ` with actionable steps for the student to improve their chances.
4.  Echo each university's ` + "`institution_id`" + ` exactly as given.
5.  The output must be a valid JSON object that conforms to the following schema.

**JSON Schema:**
%s
`

const shortAnalysisSystem = "You are a helpful assistant that provides a short analysis of a single test."

const shortAnalysisUser = `
**Test Results:**
%s

**Instructions:**
1.  Provide a short ` + "`analysis_summary`" + ` of the user's answers.
2.  Provide a list of ` + "`analysis_key_factors`" + ` that were most important in the analysis.
3.  The output must be a valid JSON object that conforms to the following schema.

**JSON Schema:**
%s
`

const personalityAnalysisSystem = "You are a professional career counselor. Your task is to provide a detailed personality analysis based on the user's test results."

const personalityAnalysisUser = `
**User's Test Results:**
%s

**Instructions:**
1.  Provide a detailed MBTI analysis.
2.  Provide a list of recommended professions with a percentage match.
3.  Provide a list of recommended university major categories.
4.  Provide a list of personal attributes (PROS and CONS).
5.  The output must be a valid JSON object that conforms to the following schema.

**JSON Schema:**
%s
`

// BuildUniversityAnalysisRequest menyusun Request lengkap (system, user,
// schema) untuk analisis peluang masuk universitas.
func BuildUniversityAnalysisRequest(userProfile any, universitiesData any) (Request, error) {
	profileJSON, err := json.MarshalIndent(userProfile, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal user profile: %w", err)
	}
	universitiesJSON, err := json.MarshalIndent(universitiesData, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal universities data: %w", err)
	}
	schemaJSON, err := json.MarshalIndent(UniversityAnalysisSchema.Definition, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal schema: %w", err)
	}
	return Request{
		System: universityAnalysisSystem,
		User:   fmt.Sprintf(universityAnalysisUser, profileJSON, universitiesJSON, schemaJSON),
		Schema: UniversityAnalysisSchema,
	}, nil
}

// BuildShortAnalysisRequest menyusun Request untuk analisis singkat satu test.
func BuildShortAnalysisRequest(testResults any) (Request, error) {
	resultsJSON, err := json.MarshalIndent(testResults, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal test results: %w", err)
	}
	schemaJSON, err := json.MarshalIndent(ShortAnalysisSchema.Definition, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal schema: %w", err)
	}
	return Request{
		System: shortAnalysisSystem,
		User:   fmt.Sprintf(shortAnalysisUser, resultsJSON, schemaJSON),
		Schema: ShortAnalysisSchema,
	}, nil
}

// BuildPersonalityAnalysisRequest menyusun Request untuk analisis kepribadian
// dari seluruh test yang sudah COMPLETED.
func BuildPersonalityAnalysisRequest(testResults any) (Request, error) {
	resultsJSON, err := json.MarshalIndent(testResults, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal test results: %w", err)
	}
	schemaJSON, err := json.MarshalIndent(PersonalityAnalysisSchema.Definition, "", "  ")
	if err != nil {
		return Request{}, fmt.Errorf("marshal schema: %w", err)
	}
	return Request{
		System: personalityAnalysisSystem,
		User:   fmt.Sprintf(personalityAnalysisUser, resultsJSON, schemaJSON),
		Schema: PersonalityAnalysisSchema,
	}, nil
}
