package config

import (
	"strings"
	"time"

	"github.com/ZaguanLabs/gotrans"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	knownProviders = providerValues()
	formalities = []interface{}{
		"",
		string(gotrans.FormalityNone),
		string(gotrans.FormalityFormal),
		string(gotrans.FormalityInformal),
	}
	logLevels     = []interface{}{"", "debug", "info", "warn", "error"}
	logFormats    = []interface{}{"", "text", "json"}
	cacheBackends = []interface{}{"", "none", "memory", "redis"}
)

// Validate checks the loaded configuration. Language codes are checked later,
// against each provider's supported set.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.Providers,
			validation.When(c.Enabled, validation.Required),
			validation.Each(validation.In(knownProviders...).Error("must be one of "+providerList())),
		),
	)
	if err != nil {
		return err
	}

	return validation.Errors{
		"log": validation.ValidateStruct(&c.Log,
			validation.Field(&c.Log.Level, validation.In(logLevels...)),
			validation.Field(&c.Log.Format, validation.In(logFormats...)),
		),
		"aws": validation.ValidateStruct(&c.AWS,
			validation.Field(&c.AWS.Formality, validation.In(formalities...)),
			validation.Field(&c.AWS.Source, validation.When(c.Uses(gotrans.ProviderAWS), validation.Required)),
			validation.Field(&c.AWS.Target, validation.When(c.Uses(gotrans.ProviderAWS), validation.Required)),
		),
		"google": validation.ValidateStruct(&c.Google,
			validation.Field(&c.Google.Source, validation.When(c.Uses(gotrans.ProviderGoogle), validation.Required)),
			validation.Field(&c.Google.Target, validation.When(c.Uses(gotrans.ProviderGoogle), validation.Required)),
		),
		"openai": validation.ValidateStruct(&c.OpenAI,
			validation.Field(&c.OpenAI.APIKey, validation.When(c.Uses(gotrans.ProviderOpenAI), validation.Required)),
			validation.Field(&c.OpenAI.Formality, validation.In(formalities...)),
			validation.Field(&c.OpenAI.Target, validation.When(c.Uses(gotrans.ProviderOpenAI), validation.Required)),
		),
		"cache": validation.ValidateStruct(&c.Cache,
			validation.Field(&c.Cache.Backend, validation.In(cacheBackends...)),
			validation.Field(&c.Cache.RedisURL, validation.When(c.Cache.Backend == "redis", validation.Required)),
			validation.Field(&c.Cache.TTL, validation.Min(time.Duration(0))),
		),
		"rate_limit": validation.ValidateStruct(&c.RateLimit,
			validation.Field(&c.RateLimit.RequestsPerMinute, validation.Min(0)),
			validation.Field(&c.RateLimit.Burst, validation.Min(0)),
		),
	}.Filter()
}

func providerValues() []interface{} {
	values := make([]interface{}, len(gotrans.KnownProviders))
	for i, id := range gotrans.KnownProviders {
		values[i] = string(id)
	}
	return values
}

func providerList() string {
	names := make([]string, len(gotrans.KnownProviders))
	for i, id := range gotrans.KnownProviders {
		names[i] = string(id)
	}
	return strings.Join(names, ", ")
}
