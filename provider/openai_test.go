package provider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ZaguanLabs/gotrans"
)

func chatServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != gotrans.UserAgent() {
			t.Errorf("User-Agent = %q, want %q", ua, gotrans.UserAgent())
		}
		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), `\"text\":\"hello\"`) {
			t.Errorf("request body missing text: %s", body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		resp := map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  DefaultOpenAIModel,
			"choices": []map[string]interface{}{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]string{"role": "assistant", "content": content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenOpenAI_RequiresAPIKey(t *testing.T) {
	_, err := OpenOpenAI(OpenAIConfig{Source: "en", Target: "es"})

	var cfgErr *gotrans.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}

func TestOpenOpenAI_UnsupportedTarget(t *testing.T) {
	_, err := OpenOpenAI(OpenAIConfig{APIKey: "test", Source: "en", Target: "xx"})

	var langErr *gotrans.UnsupportedLanguageError
	if !errors.As(err, &langErr) {
		t.Fatalf("expected UnsupportedLanguageError, got %v", err)
	}
	if langErr.Code != "xx" {
		t.Errorf("Code = %q, want xx", langErr.Code)
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	c, err := OpenOpenAI(OpenAIConfig{
		APIKey:    "test",
		Source:    "en",
		Target:    "es_ES",
		Formality: gotrans.FormalityFormal,
	})
	if err != nil {
		t.Fatalf("OpenOpenAI failed: %v", err)
	}

	prompt := c.buildSystemPrompt()

	if !strings.Contains(prompt, "Spanish (Spain)") {
		t.Error("Prompt should contain target language name")
	}
	if !strings.Contains(prompt, "English (United States)") {
		t.Error("Prompt should contain source language name")
	}
	if !strings.Contains(prompt, "formal form of address") {
		t.Error("Prompt should contain the formal register")
	}
}

func TestBuildSystemPrompt_AutoSource(t *testing.T) {
	c, err := OpenOpenAI(OpenAIConfig{APIKey: "test", Source: "auto", Target: "de"})
	if err != nil {
		t.Fatalf("OpenOpenAI failed: %v", err)
	}

	if !strings.Contains(c.buildSystemPrompt(), "Detect the source language.") {
		t.Error("Prompt should ask for detection")
	}
}

func TestOpenAIClient_Translate(t *testing.T) {
	srv := chatServer(t, `{"translation": "hola"}`, http.StatusOK)

	c, err := OpenOpenAI(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Source: "en", Target: "es"})
	if err != nil {
		t.Fatalf("OpenOpenAI failed: %v", err)
	}

	result, err := c.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	plain, ok := result.(*gotrans.PlainText)
	if !ok {
		t.Fatalf("expected *PlainText, got %T", result)
	}
	if plain.Text != "hola" || plain.Provider != OpenAIName {
		t.Errorf("unexpected result: %+v", plain)
	}
}

func TestOpenAIClient_TranslateEmpty(t *testing.T) {
	srv := chatServer(t, `{"translation": "  "}`, http.StatusOK)

	c, err := OpenOpenAI(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Source: "en", Target: "es"})
	if err != nil {
		t.Fatalf("OpenOpenAI failed: %v", err)
	}

	_, err = c.Translate(context.Background(), "hello")

	var emptyErr *gotrans.EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyResultError, got %v", err)
	}
}

func TestOpenAIClient_TranslateServerError(t *testing.T) {
	srv := chatServer(t, "", http.StatusInternalServerError)

	c, err := OpenOpenAI(OpenAIConfig{APIKey: "test", BaseURL: srv.URL + "/v1", Source: "en", Target: "es"})
	if err != nil {
		t.Fatalf("OpenOpenAI failed: %v", err)
	}

	_, err = c.Translate(context.Background(), "hello")

	var provErr *gotrans.ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestParseTranslation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"translation key", `{"translation": "Hola"}`, "Hola", false},
		{"fallback key", `{"result": "Hola"}`, "Hola", false},
		{"not json", `Hola`, "", true},
		{"no string value", `{"translation": 3}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTranslation(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMockClient(t *testing.T) {
	m := NewMockClient()

	result, err := m.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("MockClient.Translate failed: %v", err)
	}
	if result.(*gotrans.PlainText).Text != "hola" {
		t.Errorf("unexpected result %+v", result)
	}

	result, _ = m.Translate(context.Background(), "unknown")
	if result.(*gotrans.PlainText).Text != "[unknown]" {
		t.Errorf("unexpected result %+v", result)
	}

	if m.CallCount() != 2 || m.LastText() != "unknown" {
		t.Errorf("CallCount = %d, LastText = %q", m.CallCount(), m.LastText())
	}

	m.Reset()
	if m.CallCount() != 0 {
		t.Error("Reset should clear the call count")
	}
}
