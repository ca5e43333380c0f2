// file: internals/llm/schemas.go
package llm

// Schema response untuk tiga jalur analisis. Field names mengikuti kontrak
// API (snake_case), additionalProperties dimatikan supaya mismatch ketahuan.

// ShortAnalysisSchema: hasil analisis singkat satu test.
var ShortAnalysisSchema = &Schema{
	Name: "short-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis_summary": map[string]any{"type": "string"},
			"analysis_key_factors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"analysis_summary", "analysis_key_factors"},
		"additionalProperties": false,
	},
}

var percentageSchema = map[string]any{
	"type":    "integer",
	"minimum": 0,
	"maximum": 100,
}

// PersonalityAnalysisSchema: agregat MBTI + profesi + jurusan + atribut.
var PersonalityAnalysisSchema = &Schema{
	Name: "personality-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"mbti": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"mbti_code":   map[string]any{"type": "string"},
					"mbti_name":   map[string]any{"type": "string"},
					"short_attributes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"work_styles": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"introversion_percentage": percentageSchema,
					"thinking_percentage":     percentageSchema,
					"creativity_percentage":   percentageSchema,
					"intuition_percentage":    percentageSchema,
					"planning_percentage":     percentageSchema,
					"leading_percentage":      percentageSchema,
				},
				"required": []any{
					"title", "description", "mbti_code", "mbti_name",
					"short_attributes", "work_styles",
					"introversion_percentage", "thinking_percentage",
					"creativity_percentage", "intuition_percentage",
					"planning_percentage", "leading_percentage",
				},
				"additionalProperties": false,
			},
			"professions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":       map[string]any{"type": "string"},
						"percentage": percentageSchema,
					},
					"required":             []any{"name", "percentage"},
					"additionalProperties": false,
				},
			},
			"majors": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category": map[string]any{"type": "string"},
					},
					"required":             []any{"category"},
					"additionalProperties": false,
				},
			},
			"attributes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":            map[string]any{"type": "string", "enum": []any{"PROS", "CONS"}},
						"name":            map[string]any{"type": "string"},
						"description":     map[string]any{"type": "string"},
						"recommendations": map[string]any{"type": "string"},
					},
					"required":             []any{"type", "name", "description", "recommendations"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"mbti", "professions", "majors", "attributes"},
		"additionalProperties": false,
	},
}

// UniversityAnalysisSchema: peluang masuk per institusi + atribut + rencana.
// institution_id harus di-echo dari data yang dikirim di prompt.
var UniversityAnalysisSchema = &Schema{
	Name: "university-analysis",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"institutes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"institution_id": map[string]any{"type": "string"},
						"chance_percentage": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 100,
						},
						"attributes": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"name":           map[string]any{"type": "string"},
									"type":           map[string]any{"type": "string", "enum": []any{"PROS", "CONS"}},
									"recommendation": map[string]any{"type": "string"},
								},
								"required":             []any{"name", "type", "recommendation"},
								"additionalProperties": false,
							},
						},
						"plan": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"order":          map[string]any{"type": "integer"},
									"name":           map[string]any{"type": "string"},
									"description":    map[string]any{"type": "string"},
									"duration_month": map[string]any{"type": "integer"},
								},
								"required":             []any{"order", "name", "description", "duration_month"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []any{"institution_id", "chance_percentage", "attributes", "plan"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"institutes"},
		"additionalProperties": false,
	},
}
