// file: internals/llm/mock.go
package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse satu response kalengan untuk MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider Provider deterministik untuk test: balikin response kalengan
// urut FIFO dan catat semua request yang masuk.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate balikin response kalengan berikutnya, atau ErrProviderUnavailable
// kalau queue kosong. Schema pada request tetap divalidasi, sama seperti
// provider beneran.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	if req.Schema != nil {
		if err := validateResponse(req.Schema, resp.Content); err != nil {
			return nil, err
		}
	}

	return &Response{
		Content: resp.Content,
		Model:   "mock",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse tambah response kalengan ke queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount jumlah panggilan Generate yang sudah terjadi.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
