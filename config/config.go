// Package config loads gotrans settings from YAML and the environment.
package config

import (
	"slices"
	"time"

	"github.com/ZaguanLabs/gotrans"
)

// Config is the root configuration. Enabled defaults to true in Load; it has
// no env-default tag since cleanenv would apply it over an explicit false.
type Config struct {
	Enabled   bool            `yaml:"enabled"   env:"GOTRANS_ENABLED"`
	Timeout   time.Duration   `yaml:"timeout"   env:"GOTRANS_TIMEOUT"   env-default:"5s"`
	Providers []string        `yaml:"providers" env:"GOTRANS_PROVIDERS" env-default:"aws,google" env-separator:","`
	Proxy     string          `yaml:"proxy"     env:"GOTRANS_PROXY"`
	Log       LogConfig       `yaml:"log"`
	AWS       AWSConfig       `yaml:"aws"`
	Google    GoogleConfig    `yaml:"google"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"GOTRANS_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"GOTRANS_LOG_FORMAT" env-default:"text"`
}

// AWSConfig holds AWS Translate settings.
type AWSConfig struct {
	Region    string `yaml:"region"    env:"GOTRANS_AWS_REGION"`
	Profile   string `yaml:"profile"   env:"GOTRANS_AWS_PROFILE"`
	Formality string `yaml:"formality" env:"GOTRANS_AWS_FORMALITY" env-default:"none"`
	Source    string `yaml:"source"    env:"GOTRANS_AWS_SOURCE"    env-default:"auto"`
	Target    string `yaml:"target"    env:"GOTRANS_AWS_TARGET"    env-default:"en"`
}

// GoogleConfig holds web translate endpoint settings.
type GoogleConfig struct {
	Host   string `yaml:"host"   env:"GOTRANS_GOOGLE_HOST"   env-default:"translate.googleapis.com"`
	Source string `yaml:"source" env:"GOTRANS_GOOGLE_SOURCE" env-default:"auto"`
	Target string `yaml:"target" env:"GOTRANS_GOOGLE_TARGET" env-default:"en"`
}

// OpenAIConfig holds settings for the OpenAI-compatible provider.
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key"   env:"OPENAI_API_KEY"`
	Model     string `yaml:"model"     env:"GOTRANS_OPENAI_MODEL"     env-default:"gpt-4o-mini"`
	BaseURL   string `yaml:"base_url"  env:"GOTRANS_OPENAI_BASE_URL"`
	Formality string `yaml:"formality" env:"GOTRANS_OPENAI_FORMALITY" env-default:"none"`
	Source    string `yaml:"source"    env:"GOTRANS_OPENAI_SOURCE"    env-default:"auto"`
	Target    string `yaml:"target"    env:"GOTRANS_OPENAI_TARGET"    env-default:"en"`
}

// CacheConfig selects the result cache.
type CacheConfig struct {
	Backend   string        `yaml:"backend"    env:"GOTRANS_CACHE_BACKEND"    env-default:"none"`
	TTL       time.Duration `yaml:"ttl"        env:"GOTRANS_CACHE_TTL"        env-default:"24h"`
	RedisURL  string        `yaml:"redis_url"  env:"GOTRANS_CACHE_REDIS_URL"`
	KeyPrefix string        `yaml:"key_prefix" env:"GOTRANS_CACHE_KEY_PREFIX" env-default:"gotrans:"`
}

// RateLimitConfig throttles each provider. Zero disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" env:"GOTRANS_RATE_LIMIT_RPM"   env-default:"0"`
	Burst             int `yaml:"burst"               env:"GOTRANS_RATE_LIMIT_BURST" env-default:"0"`
}

// ProviderIDs returns the configured providers in order.
func (c *Config) ProviderIDs() []gotrans.ProviderID {
	ids := make([]gotrans.ProviderID, 0, len(c.Providers))
	for _, p := range c.Providers {
		ids = append(ids, gotrans.ProviderID(p))
	}
	return ids
}

// Uses reports whether id is among the configured providers.
func (c *Config) Uses(id gotrans.ProviderID) bool {
	return slices.Contains(c.Providers, string(id))
}
