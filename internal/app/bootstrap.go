// Package app wires configuration, logging and providers into a ready Translator.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/ZaguanLabs/gotrans"
	"github.com/ZaguanLabs/gotrans/cache"
	"github.com/ZaguanLabs/gotrans/config"
	"github.com/ZaguanLabs/gotrans/provider"
	"github.com/ZaguanLabs/gotrans/transport"
)

// ErrDisabled is returned by Bootstrap when the enable flag is off.
var ErrDisabled = errors.New("gotrans is disabled")

// ProviderClient is a ready client that can report its supported languages.
type ProviderClient interface {
	gotrans.Client
	Languages() gotrans.LanguageSet
}

// Opener constructs and initializes one provider.
type Opener func(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (ProviderClient, error)

// DefaultOpeners maps every known provider to its factory.
var DefaultOpeners = map[gotrans.ProviderID]Opener{
	gotrans.ProviderAWS:    openAWS,
	gotrans.ProviderGoogle: openGoogle,
	gotrans.ProviderOpenAI: openOpenAI,
}

func openAWS(ctx context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (ProviderClient, error) {
	return provider.OpenAWS(ctx, provider.AWSConfig{
		Region:     cfg.AWS.Region,
		Profile:    cfg.AWS.Profile,
		Formality:  gotrans.Formality(cfg.AWS.Formality),
		Source:     cfg.AWS.Source,
		Target:     cfg.AWS.Target,
		HTTPClient: httpClient,
		Logger:     logger,
	})
}

func openGoogle(_ context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (ProviderClient, error) {
	return provider.OpenGoogle(provider.GoogleConfig{
		Host:       cfg.Google.Host,
		Source:     cfg.Google.Source,
		Target:     cfg.Google.Target,
		HTTPClient: httpClient,
		Logger:     logger,
	})
}

func openOpenAI(_ context.Context, cfg *config.Config, httpClient *http.Client, logger *slog.Logger) (ProviderClient, error) {
	return provider.OpenOpenAI(provider.OpenAIConfig{
		APIKey:     cfg.OpenAI.APIKey,
		Model:      cfg.OpenAI.Model,
		BaseURL:    cfg.OpenAI.BaseURL,
		Formality:  gotrans.Formality(cfg.OpenAI.Formality),
		Source:     cfg.OpenAI.Source,
		Target:     cfg.OpenAI.Target,
		HTTPClient: httpClient,
		Logger:     logger,
	})
}

// Runtime holds everything a command needs after startup.
type Runtime struct {
	Translator *gotrans.Translator
	Languages  map[gotrans.ProviderID]gotrans.LanguageSet
	Failures   map[gotrans.ProviderID]error

	store cache.Store
}

// Close releases the cache connection.
func (r *Runtime) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// Bootstrap initializes every configured provider with DefaultOpeners.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Runtime, error) {
	return BootstrapWith(ctx, cfg, logger, DefaultOpeners)
}

// BootstrapWith initializes the configured providers concurrently. A provider
// that fails to initialize is logged and left out; it is never dispatched to.
// Only an invalid proxy aborts startup.
func BootstrapWith(ctx context.Context, cfg *config.Config, logger *slog.Logger, openers map[gotrans.ProviderID]Opener) (*Runtime, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient, err := transport.Build(cfg.Proxy, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	store, err := cache.Open(ctx, cache.Config{
		Backend:   cfg.Cache.Backend,
		TTL:       cfg.Cache.TTL,
		RedisURL:  cfg.Cache.RedisURL,
		KeyPrefix: cfg.Cache.KeyPrefix,
	})
	if err != nil {
		logger.Warn("cache disabled", "error", err)
		store = nil
	}

	rt := &Runtime{
		Languages: make(map[gotrans.ProviderID]gotrans.LanguageSet),
		Failures:  make(map[gotrans.ProviderID]error),
		store:     store,
	}
	ready := make(map[gotrans.ProviderID]gotrans.Client)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	providers := cfg.ProviderIDs()
	seen := make(map[gotrans.ProviderID]bool, len(providers))
	for _, id := range providers {
		if seen[id] {
			continue
		}
		seen[id] = true

		open, ok := openers[id]
		if !ok {
			err := &gotrans.ConfigurationError{Message: "unknown provider", Value: string(id)}
			logger.Error("provider not initialized", "adapter", string(id), "error", err)
			mu.Lock()
			rt.Failures[id] = err
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(id gotrans.ProviderID, open Opener) {
			defer wg.Done()

			client, err := open(ctx, cfg, httpClient, logger)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				rt.Failures[id] = err
				logger.Error("provider not initialized", "adapter", string(id), "error", err)
				return
			}
			rt.Languages[id] = client.Languages()
			ready[id] = decorate(id, client, cfg, store, logger)
			logger.Debug("provider ready", "adapter", string(id))
		}(id, open)
	}
	wg.Wait()

	rt.Translator = gotrans.NewTranslator(providers, gotrans.WithClients(ready))
	return rt, nil
}

// decorate applies rate limiting and then caching, so cache hits skip the limiter.
func decorate(id gotrans.ProviderID, client gotrans.Client, cfg *config.Config, store cache.Store, logger *slog.Logger) gotrans.Client {
	if cfg.RateLimit.RequestsPerMinute > 0 {
		client = gotrans.NewRateLimitedClient(client, gotrans.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			BurstSize:         cfg.RateLimit.Burst,
		})
	}

	if store != nil {
		source, target := languagePair(id, cfg)
		client = gotrans.NewCachedClient(client, store, gotrans.CacheNamespace(id, source, target)).
			OnError(func(err error) {
				logger.Warn("cache error", "adapter", string(id), "error", err)
			})
	}

	return client
}

func languagePair(id gotrans.ProviderID, cfg *config.Config) (string, string) {
	switch id {
	case gotrans.ProviderAWS:
		return cfg.AWS.Source, cfg.AWS.Target + ":" + cfg.AWS.Formality
	case gotrans.ProviderGoogle:
		return cfg.Google.Source, cfg.Google.Target
	case gotrans.ProviderOpenAI:
		return cfg.OpenAI.Source, cfg.OpenAI.Target + ":" + cfg.OpenAI.Model + ":" + cfg.OpenAI.Formality
	default:
		return "", ""
	}
}
