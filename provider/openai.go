package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ZaguanLabs/gotrans"
	"github.com/sashabaranov/go-openai"
)

// DefaultOpenAIModel is used when OpenAIConfig.Model is empty.
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey      string            // OpenAI API key (required)
	Model       string            // Model to use (default: "gpt-4o-mini")
	Temperature float32           // Temperature for generation (default: 0.3)
	BaseURL     string            // Custom base URL for compatible APIs (optional)
	Formality   gotrans.Formality // formal, informal or none
	Source      string            // Source language code, "auto" to detect
	Target      string            // Target language code
	HTTPClient  *http.Client      // Transport from transport.Build (optional)
	Logger      *slog.Logger
}

// OpenAIClient translates through an OpenAI-compatible chat completion API.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	formality   gotrans.Formality
	source      string
	target      string
	logger      *slog.Logger
}

// OpenOpenAI validates the configuration and creates the client.
// No network call is made.
func OpenOpenAI(cfg OpenAIConfig) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &gotrans.ConfigurationError{Message: "openai api key is required"}
	}
	languages := gotrans.ModelLanguages()
	if err := gotrans.ValidatePair(OpenAIName, languages, cfg.Source, cfg.Target, true); err != nil {
		return nil, err
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}
	config.HTTPClient = newUserAgentDoer(cfg.HTTPClient)

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
		formality:   cfg.Formality,
		source:      languages.Canonical(cfg.Source),
		target:      languages.Canonical(cfg.Target),
		logger:      adapterLogger(cfg.Logger, gotrans.ProviderOpenAI),
	}, nil
}

// Name returns the display name.
func (c *OpenAIClient) Name() string {
	return OpenAIName
}

// Languages returns the codes the model client accepts.
func (c *OpenAIClient) Languages() gotrans.LanguageSet {
	return gotrans.ModelLanguages()
}

// Translate asks the model for a single translation.
func (c *OpenAIClient) Translate(ctx context.Context, text string) (gotrans.Result, error) {
	userMessage, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, &gotrans.ProviderError{Provider: OpenAIName, Message: "failed to encode request", Cause: err}
	}

	c.logger.Debug("translating", "model", c.model, "target", c.target, "chars", len(text))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.buildSystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: string(userMessage)},
		},
		Temperature: c.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		c.logger.Error("chat completion failed", "error", err)
		return nil, &gotrans.ProviderError{
			Provider: OpenAIName,
			Message:  "OpenAI API call failed",
			Cause:    err,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &gotrans.EmptyResultError{Provider: OpenAIName}
	}

	translation, err := parseTranslation(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(translation) == "" {
		return nil, &gotrans.EmptyResultError{Provider: OpenAIName}
	}

	return &gotrans.PlainText{Provider: OpenAIName, Text: translation}, nil
}

func (c *OpenAIClient) buildSystemPrompt() string {
	targetName := gotrans.GetLanguageName(c.target)

	source := "Detect the source language."
	if c.source != "" && c.source != gotrans.AutoDetect {
		source = fmt.Sprintf("The source language is %s.", gotrans.GetLanguageName(c.source))
	}

	return fmt.Sprintf(`# Role
You are an expert native translator. You translate text to %s with the fluency of a highly educated native speaker.

# Task
%s Translate the "text" value into idiomatic %s. The text is a word, a line or a selection from a text editor.

# Register
%s

# Style Guide
- **Natural Flow**: Avoid literal translations.
- **Idioms**: Never translate idioms literally.
- **Code Safety**: Do NOT translate identifiers, URLs or content inside backticks.
- **Formatting**: Preserve line breaks.

# Format
Return a valid JSON object with a single key "translation" holding the translated string.
Example: { "translation": "translated text" }
- Do NOT wrap in Markdown code blocks.`, targetName, source, targetName, gotrans.GetFormalityDescription(c.formality))
}

func parseTranslation(content string) (string, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(content), &obj); err != nil {
		return "", &gotrans.ProviderError{
			Provider: OpenAIName,
			Message:  "invalid response format from OpenAI",
			Cause:    err,
		}
	}

	if s, ok := obj["translation"].(string); ok {
		return s, nil
	}

	// Fallback: first string value
	for _, v := range obj {
		if s, ok := v.(string); ok {
			return s, nil
		}
	}

	return "", &gotrans.EmptyResultError{Provider: OpenAIName}
}

// Verify OpenAIClient implements Client
var _ Client = (*OpenAIClient)(nil)
