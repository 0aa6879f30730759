package gotrans

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when the text to translate is empty or whitespace-only.
// No provider is contacted in that case.
var ErrEmptyInput = errors.New("empty input")

// ConfigurationError is a fatal, non-retryable configuration problem such as a
// proxy URL with an unknown scheme.
type ConfigurationError struct {
	Message string
	Value   string // The offending configuration value
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s", e.Message)
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// UnsupportedLanguageError indicates a configured language code outside a
// provider's supported set. The provider never becomes ready. It is a
// configuration problem, so errors.As also matches *ConfigurationError.
type UnsupportedLanguageError struct {
	Provider string
	Code     string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("%s: unsupported language %q", e.Provider, e.Code)
}

func (e *UnsupportedLanguageError) As(target any) bool {
	cfgErr, ok := target.(**ConfigurationError)
	if !ok {
		return false
	}
	*cfgErr = &ConfigurationError{
		Message: e.Provider + ": unsupported language",
		Value:   e.Code,
		Cause:   e,
	}
	return true
}

// ProviderUnavailableError indicates a provider could not be initialized,
// typically because its language list could not be fetched.
type ProviderUnavailableError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s unavailable: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s unavailable: %s", e.Provider, e.Message)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}

// EmptyResultError indicates a provider answered without a usable translation.
type EmptyResultError struct {
	Provider string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s returned no translation", e.Provider)
}

// ProviderError indicates a failed provider call (network error, bad status,
// undecodable body). It aborts the whole aggregation.
type ProviderError struct {
	Provider string
	Message  string
	Cause    error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s: %s", e.Provider, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
