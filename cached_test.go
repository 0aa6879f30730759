package gotrans

import (
	"context"
	"errors"
	"testing"
)

// mockCache is a simple mock cache for testing
type mockCache struct {
	data   map[string]string
	setErr error
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *mockCache) Set(key string, value string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.data[key] = value
	return nil
}

func TestCachedClient_CacheHit(t *testing.T) {
	inner := &stubClient{name: "Google Translate", result: helloRichText()}
	cache := newMockCache()
	client := NewCachedClient(inner, cache, CacheNamespace(ProviderGoogle, "en", "es"))

	first, err := client.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("first Translate failed: %v", err)
	}

	second, err := client.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("second Translate failed: %v", err)
	}

	if inner.Calls() != 1 {
		t.Errorf("Provider should be called once, was called %d times", inner.Calls())
	}

	// The cached answer must render exactly like the live one
	live, _ := RenderResult(first, "hello")
	cached, _ := RenderResult(second, "hello")
	if JoinBlocks(live) != JoinBlocks(cached) {
		t.Errorf("cached rendering differs:\n%s\nvs\n%s", JoinBlocks(live), JoinBlocks(cached))
	}
}

func TestCachedClient_PlainTextHit(t *testing.T) {
	inner := &stubClient{name: "AWS Translate", result: &PlainText{Provider: "AWS Translate", Text: "hola"}}
	client := NewCachedClient(inner, newMockCache(), CacheNamespace(ProviderAWS, "en", "es"))

	client.Translate(context.Background(), "hello")
	r, err := client.Translate(context.Background(), "  hello ")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}

	plain, ok := r.(*PlainText)
	if !ok || plain.Text != "hola" {
		t.Errorf("expected cached *PlainText hola, got %#v", r)
	}
	if inner.Calls() != 1 {
		t.Errorf("trimmed duplicate should hit the cache, calls=%d", inner.Calls())
	}
}

func TestCachedClient_NamespacesAreIsolated(t *testing.T) {
	cache := newMockCache()
	es := &stubClient{name: "AWS Translate", result: &PlainText{Provider: "AWS Translate", Text: "hola"}}
	fr := &stubClient{name: "AWS Translate", result: &PlainText{Provider: "AWS Translate", Text: "bonjour"}}

	NewCachedClient(es, cache, CacheNamespace(ProviderAWS, "en", "es")).Translate(context.Background(), "hello")
	r, _ := NewCachedClient(fr, cache, CacheNamespace(ProviderAWS, "en", "fr")).Translate(context.Background(), "hello")

	if r.(*PlainText).Text != "bonjour" {
		t.Errorf("expected bonjour, got %v", r)
	}
}

func TestCachedClient_SetFailureDoesNotFail(t *testing.T) {
	inner := &stubClient{name: "AWS Translate", result: &PlainText{Provider: "AWS Translate", Text: "hola"}}
	cache := newMockCache()
	cache.setErr = errors.New("disk full")

	var reported []error
	client := NewCachedClient(inner, cache, "aws:en:es").OnError(func(err error) {
		reported = append(reported, err)
	})

	r, err := client.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("cache failure must not fail translation: %v", err)
	}
	if r == nil {
		t.Fatal("expected result")
	}

	if len(reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(reported))
	}
	var cacheErr *CacheError
	if !errors.As(reported[0], &cacheErr) {
		t.Errorf("expected *CacheError, got %T", reported[0])
	}
}

func TestCachedClient_CorruptEntryFallsThrough(t *testing.T) {
	inner := &stubClient{name: "AWS Translate", result: &PlainText{Provider: "AWS Translate", Text: "hola"}}
	cache := newMockCache()
	cache.data[CacheKey(HashText("hello"), "aws:en:es")] = "{not json"

	client := NewCachedClient(inner, cache, "aws:en:es")
	if _, err := client.Translate(context.Background(), "hello"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if inner.Calls() != 1 {
		t.Errorf("corrupt entry should fall through to the provider")
	}
}

func TestCachedClient_ErrorsAreNotCached(t *testing.T) {
	inner := &stubClient{name: "AWS Translate", err: &ProviderError{Provider: "AWS Translate", Message: "boom"}}
	cache := newMockCache()
	client := NewCachedClient(inner, cache, "aws:en:es")

	if _, err := client.Translate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	if len(cache.data) != 0 {
		t.Errorf("failed translations must not be cached")
	}
}

func TestCachedClient_EmptyResultsAreNotCached(t *testing.T) {
	inner := &stubClient{name: "Google Translate", result: &RichText{Provider: "Google Translate"}}
	cache := newMockCache()
	client := NewCachedClient(inner, cache, "google:en:es")

	r, err := client.Translate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if r.(*RichText).Primary != "" {
		t.Errorf("unexpected result %+v", r)
	}
	if len(cache.data) != 0 {
		t.Errorf("empty translations must not be cached")
	}
}

func TestDecodeResult_UnknownKind(t *testing.T) {
	if _, err := DecodeResult(`{"kind":"audio"}`); err == nil {
		t.Error("expected error for unknown kind")
	}
}
