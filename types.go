package gotrans

import "strings"

// ProviderID identifies a translation backend in configuration.
type ProviderID string

const (
	// ProviderAWS is the AWS Translate managed API.
	ProviderAWS ProviderID = "aws"
	// ProviderGoogle is the unauthenticated Google translate_a web endpoint.
	ProviderGoogle ProviderID = "google"
	// ProviderOpenAI is an OpenAI-compatible chat completion model.
	ProviderOpenAI ProviderID = "openai"
)

// KnownProviders lists every provider identifier gotrans can construct.
var KnownProviders = []ProviderID{ProviderAWS, ProviderGoogle, ProviderOpenAI}

// Formality controls the register a provider is asked to translate in.
type Formality string

const (
	// FormalityNone leaves the register to the provider.
	FormalityNone Formality = "none"
	// FormalityFormal asks for formal language.
	FormalityFormal Formality = "formal"
	// FormalityInformal asks for casual language.
	FormalityInformal Formality = "informal"
)

// ContentKind tags the body format of a RenderBlock.
type ContentKind string

// KindMarkdown is the only content kind produced today.
const KindMarkdown ContentKind = "markdown"

// Request is a validated translation request.
type Request struct {
	Text      string       // Trimmed input, never empty
	Providers []ProviderID // Enabled providers, de-duplicated, configuration order
}

// NewRequest trims text and de-duplicates providers, keeping the first occurrence
// of each. Empty or whitespace-only text yields ErrEmptyInput.
func NewRequest(text string, providers []ProviderID) (Request, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Request{}, ErrEmptyInput
	}

	return Request{Text: trimmed, Providers: dedupeProviders(providers)}, nil
}

func dedupeProviders(providers []ProviderID) []ProviderID {
	seen := make(map[ProviderID]bool, len(providers))
	unique := make([]ProviderID, 0, len(providers))
	for _, id := range providers {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return unique
}

// Result is the answer of a single provider. It is either *PlainText or *RichText.
type Result interface {
	ProviderName() string
	isResult()
}

// PlainText is a bare translated string.
type PlainText struct {
	Provider string
	Text     string
}

// ProviderName implements Result.
func (r *PlainText) ProviderName() string { return r.Provider }

func (*PlainText) isResult() {}

// RichText is a dictionary-style answer: a primary translation plus optional
// definitions and usage examples.
type RichText struct {
	Provider    string
	Primary     string
	Definitions []DefinitionGroup
	Examples    []Example
}

// ProviderName implements Result.
func (r *RichText) ProviderName() string { return r.Provider }

func (*RichText) isResult() {}

// DefinitionGroup clusters glosses sharing a part of speech.
type DefinitionGroup struct {
	PartOfSpeech string
	Entries      []DefinitionEntry
}

// DefinitionEntry is a single gloss. DefinitionID correlates it with examples.
type DefinitionEntry struct {
	Gloss        string
	DefinitionID string
}

// Example is a usage example. An empty or unmatched DefinitionID means the
// example is general and belongs to no entry.
type Example struct {
	Text         string
	DefinitionID string
}

// RenderBlock is a unit of output destined for display.
type RenderBlock struct {
	Kind ContentKind `json:"kind"`
	Body string      `json:"body"`
}
