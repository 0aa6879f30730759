package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/ZaguanLabs/gotrans"
)

// MockClient is a plain-text client for tests and offline runs.
type MockClient struct {
	DisplayName  string
	Translations map[string]string // Map of source text to translation
	Err          error             // Returned from every Translate call when set

	mu        sync.Mutex
	callCount int
	lastText  string
}

// NewMockClient creates a mock client with default translations.
func NewMockClient() *MockClient {
	return &MockClient{
		DisplayName: "Mock",
		Translations: map[string]string{
			"hello":       "hola",
			"world":       "mundo",
			"hello world": "hola mundo",
		},
	}
}

// Name returns the display name.
func (m *MockClient) Name() string {
	return m.DisplayName
}

// Translate returns the mapped translation, or the bracketed input for unknown text.
func (m *MockClient) Translate(ctx context.Context, text string) (gotrans.Result, error) {
	m.mu.Lock()
	m.callCount++
	m.lastText = text
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	translation, ok := m.Translations[text]
	if !ok {
		translation = fmt.Sprintf("[%s]", text)
	}
	return &gotrans.PlainText{Provider: m.DisplayName, Text: translation}, nil
}

// CallCount returns the number of Translate calls.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastText returns the text of the most recent call.
func (m *MockClient) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}

// Reset resets the call count and last text.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastText = ""
}

// Verify MockClient implements Client
var _ Client = (*MockClient)(nil)
