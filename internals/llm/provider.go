// file: internals/llm/provider.go
package llm

import (
	"context"
	"encoding/json"
)

// Provider abstraksi klien LLM. Satu operasi: kirim prompt, terima JSON.
type Provider interface {
	// Generate kirim prompt (system + user) dan kembalikan response.
	// Kalau req.Schema diisi, Content sudah tervalidasi strict terhadap
	// schema tersebut; kegagalan parse/validasi dibungkus *ErrInvalidResponse.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID kembalikan identifier model yang dipakai provider ini.
	ModelID() string
}

// Request payload satu panggilan generate (single-turn).
type Request struct {
	// System prompt: peran & batasan LLM.
	System string

	// User prompt: data + instruksi.
	User string

	// Schema target validasi output. Nil = skip validasi, Content raw.
	Schema *Schema

	// MaxTokens batas token output.
	MaxTokens int

	// Temperature 0.0 - 1.0. Default 0 (deterministik).
	Temperature float64
}

// Schema definisi JSON yang diharapkan dari LLM.
type Schema struct {
	// Name identifier schema, kebab-case. Mis. "short-analysis".
	Name string

	// Definition JSON Schema sebagai map.
	Definition map[string]any
}

// Response hasil generate.
type Response struct {
	// Content output JSON (tervalidasi kalau Request.Schema diisi).
	Content json.RawMessage

	// Usage konsumsi token request ini.
	Usage Usage

	// Model model aktual yang melayani request.
	Model string
}

// Usage konsumsi token satu request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
