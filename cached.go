package gotrans

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// ResultCache is the interface for caching provider results.
type ResultCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// CachedClient serves repeated queries for the same text from a ResultCache.
// Cache failures are reported to the optional error hook and never fail a translation.
type CachedClient struct {
	client    Client
	cache     ResultCache
	namespace string
	onError   func(error)
}

// NewCachedClient wraps client. namespace must distinguish the provider and its
// language pair, see CacheNamespace.
func NewCachedClient(client Client, cache ResultCache, namespace string) *CachedClient {
	return &CachedClient{
		client:    client,
		cache:     cache,
		namespace: namespace,
	}
}

// OnError sets a hook receiving cache read/write errors.
func (c *CachedClient) OnError(fn func(error)) *CachedClient {
	c.onError = fn
	return c
}

// Name implements Client.
func (c *CachedClient) Name() string {
	return c.client.Name()
}

// Translate implements Client, consulting the cache first.
func (c *CachedClient) Translate(ctx context.Context, text string) (Result, error) {
	key := CacheKey(HashText(text), c.namespace)

	if raw, ok := c.cache.Get(key); ok {
		r, err := DecodeResult(raw)
		if err == nil {
			return r, nil
		}
		c.report(&CacheError{Message: "decoding cached result", Cause: err})
	}

	r, err := c.client.Translate(ctx, text)
	if err != nil {
		return nil, err
	}
	if !renderable(r) {
		return r, nil
	}

	raw, err := EncodeResult(r)
	if err != nil {
		c.report(&CacheError{Message: "encoding result", Cause: err})
		return r, nil
	}
	if err := c.cache.Set(key, raw); err != nil {
		c.report(&CacheError{Message: "storing result", Cause: err})
	}

	return r, nil
}

// renderable reports whether r carries a translation worth caching.
func renderable(r Result) bool {
	switch v := r.(type) {
	case *PlainText:
		return strings.TrimSpace(v.Text) != ""
	case *RichText:
		return strings.TrimSpace(v.Primary) != ""
	default:
		return false
	}
}

func (c *CachedClient) report(err error) {
	if c.onError != nil {
		c.onError(err)
	}
}

const (
	kindPlain = "plain"
	kindRich  = "rich"
)

type cachedDefinitionEntry struct {
	Gloss        string `json:"gloss"`
	DefinitionID string `json:"definition_id,omitempty"`
}

type cachedDefinitionGroup struct {
	PartOfSpeech string                  `json:"pos"`
	Entries      []cachedDefinitionEntry `json:"entries"`
}

type cachedExample struct {
	Text         string `json:"text"`
	DefinitionID string `json:"definition_id,omitempty"`
}

type cachedResult struct {
	Kind        string                  `json:"kind"`
	Provider    string                  `json:"provider"`
	Text        string                  `json:"text"`
	Definitions []cachedDefinitionGroup `json:"definitions,omitempty"`
	Examples    []cachedExample         `json:"examples,omitempty"`
}

// EncodeResult serializes a Result with a kind discriminator.
func EncodeResult(r Result) (string, error) {
	var out cachedResult

	switch v := r.(type) {
	case *PlainText:
		out = cachedResult{Kind: kindPlain, Provider: v.Provider, Text: v.Text}
	case *RichText:
		out = cachedResult{Kind: kindRich, Provider: v.Provider, Text: v.Primary}
		for _, g := range v.Definitions {
			cg := cachedDefinitionGroup{PartOfSpeech: g.PartOfSpeech}
			for _, e := range g.Entries {
				cg.Entries = append(cg.Entries, cachedDefinitionEntry(e))
			}
			out.Definitions = append(out.Definitions, cg)
		}
		for _, ex := range v.Examples {
			out.Examples = append(out.Examples, cachedExample(ex))
		}
	default:
		return "", fmt.Errorf("unsupported result type %T", r)
	}

	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeResult restores a Result serialized by EncodeResult.
func DecodeResult(raw string) (Result, error) {
	var in cachedResult
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return nil, err
	}

	switch in.Kind {
	case kindPlain:
		return &PlainText{Provider: in.Provider, Text: in.Text}, nil
	case kindRich:
		r := &RichText{Provider: in.Provider, Primary: in.Text}
		for _, cg := range in.Definitions {
			g := DefinitionGroup{PartOfSpeech: cg.PartOfSpeech}
			for _, e := range cg.Entries {
				g.Entries = append(g.Entries, DefinitionEntry(e))
			}
			r.Definitions = append(r.Definitions, g)
		}
		for _, ex := range in.Examples {
			r.Examples = append(r.Examples, Example(ex))
		}
		return r, nil
	default:
		return nil, fmt.Errorf("unknown cached result kind %q", in.Kind)
	}
}

// Verify CachedClient implements Client
var _ Client = (*CachedClient)(nil)
