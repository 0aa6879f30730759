package gotrans

import (
	"context"
)

// Client is a ready translation backend. Instances are only ever obtained from
// a provider factory that completed initialization successfully.
type Client interface {
	// Name is the human-readable provider name used in rendered output.
	Name() string
	// Translate translates text with the client's fixed language pair.
	Translate(ctx context.Context, text string) (Result, error)
}

// Translator is the aggregation engine: it fans a request out to every enabled
// ready client and merges the answers into render blocks.
type Translator struct {
	providers []ProviderID
	clients   map[ProviderID]Client
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithClient registers a ready client for a provider.
func WithClient(id ProviderID, client Client) TranslatorOption {
	return func(t *Translator) {
		t.clients[id] = client
	}
}

// WithClients registers several ready clients at once.
func WithClients(clients map[ProviderID]Client) TranslatorOption {
	return func(t *Translator) {
		for id, c := range clients {
			t.clients[id] = c
		}
	}
}

// NewTranslator creates a Translator for the enabled providers, in the order
// they should be displayed.
func NewTranslator(providers []ProviderID, opts ...TranslatorOption) *Translator {
	t := &Translator{
		providers: append([]ProviderID(nil), providers...),
		clients:   make(map[ProviderID]Client),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate runs Aggregate with the translator's providers and clients.
func (t *Translator) Translate(ctx context.Context, text string) ([]RenderBlock, error) {
	return Aggregate(ctx, text, t.providers, t.clients)
}

// Providers returns the enabled providers that have a ready client, in display order.
func (t *Translator) Providers() []ProviderID {
	var ready []ProviderID
	for _, id := range dedupeProviders(t.providers) {
		if _, ok := t.clients[id]; ok {
			ready = append(ready, id)
		}
	}
	return ready
}

// Client returns the ready client registered for id.
func (t *Translator) Client(id ProviderID) (Client, bool) {
	c, ok := t.clients[id]
	return c, ok
}

// Aggregate translates rawText with every enabled provider that has a ready
// client and returns the rendered blocks in enabled-provider order.
//
// The text is trimmed first; empty input fails with ErrEmptyInput before any
// client is called. Providers without a ready client are skipped. All calls
// run concurrently and are awaited; the first failure fails the whole call and
// no blocks are returned.
func Aggregate(ctx context.Context, rawText string, enabled []ProviderID, ready map[ProviderID]Client) ([]RenderBlock, error) {
	req, err := NewRequest(rawText, enabled)
	if err != nil {
		return nil, err
	}

	var dispatch []Client
	for _, id := range req.Providers {
		if c, ok := ready[id]; ok && c != nil {
			dispatch = append(dispatch, c)
		}
	}

	results, err := fanOut(ctx, req.Text, dispatch)
	if err != nil {
		return nil, err
	}

	blocks := make([]RenderBlock, 0, len(results))
	for _, r := range results {
		rendered, err := RenderResult(r, req.Text)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, rendered...)
	}

	return blocks, nil
}
