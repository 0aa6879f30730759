package provider

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ZaguanLabs/gotrans"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/aws-sdk-go-v2/service/translate/types"
)

// translateAPI is the subset of *translate.Client used here.
type translateAPI interface {
	ListLanguages(ctx context.Context, params *translate.ListLanguagesInput, optFns ...func(*translate.Options)) (*translate.ListLanguagesOutput, error)
	TranslateText(ctx context.Context, params *translate.TranslateTextInput, optFns ...func(*translate.Options)) (*translate.TranslateTextOutput, error)
}

// AWSConfig holds configuration for the AWS Translate client.
type AWSConfig struct {
	Region     string            // AWS region (uses the shared config default if empty)
	Profile    string            // Shared config profile (optional)
	Formality  gotrans.Formality // formal, informal or none
	Source     string            // Source language code, "auto" to detect
	Target     string            // Target language code
	HTTPClient *http.Client      // Transport from transport.Build (optional)
	Logger     *slog.Logger
}

// AWSClient translates through AWS Translate. A non-nil client is ready:
// its language pair was validated against the fetched language list.
type AWSClient struct {
	api       translateAPI
	source    string
	target    string
	formality gotrans.Formality
	languages gotrans.LanguageSet
	logger    *slog.Logger
}

// OpenAWS loads AWS credentials, fetches the supported languages and
// validates the configured pair.
func OpenAWS(ctx context.Context, cfg AWSConfig) (*AWSClient, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithAppID(gotrans.UserAgent()),
	}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(cfg.HTTPClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, &gotrans.ProviderUnavailableError{
			Provider: AWSName,
			Message:  "failed to load AWS configuration",
			Cause:    err,
		}
	}

	return openAWSWithAPI(ctx, translate.NewFromConfig(awsCfg), cfg)
}

func openAWSWithAPI(ctx context.Context, api translateAPI, cfg AWSConfig) (*AWSClient, error) {
	switch cfg.Formality {
	case "", gotrans.FormalityNone, gotrans.FormalityFormal, gotrans.FormalityInformal:
	default:
		return nil, &gotrans.ConfigurationError{Message: "unknown formality", Value: string(cfg.Formality)}
	}

	logger := adapterLogger(cfg.Logger, gotrans.ProviderAWS)

	languages, err := fetchAWSLanguages(ctx, api)
	if err != nil {
		logger.Error("failed to list languages", "error", err)
		return nil, err
	}
	logger.Debug("fetched languages", "count", languages.Len())

	if err := gotrans.ValidatePair(AWSName, languages, cfg.Source, cfg.Target, true); err != nil {
		return nil, err
	}

	return &AWSClient{
		api:       api,
		source:    languages.Canonical(cfg.Source),
		target:    languages.Canonical(cfg.Target),
		formality: cfg.Formality,
		languages: languages,
		logger:    logger,
	}, nil
}

func fetchAWSLanguages(ctx context.Context, api translateAPI) (gotrans.LanguageSet, error) {
	var codes []string
	var token *string
	for {
		out, err := api.ListLanguages(ctx, &translate.ListLanguagesInput{NextToken: token})
		if err != nil {
			return gotrans.LanguageSet{}, &gotrans.ProviderUnavailableError{
				Provider: AWSName,
				Message:  "failed to list languages",
				Cause:    err,
			}
		}
		if out == nil || out.Languages == nil {
			return gotrans.LanguageSet{}, &gotrans.ProviderUnavailableError{
				Provider: AWSName,
				Message:  "language list missing from response",
			}
		}
		for _, lang := range out.Languages {
			if code := aws.ToString(lang.LanguageCode); code != "" {
				codes = append(codes, code)
			}
		}
		if aws.ToString(out.NextToken) == "" {
			break
		}
		token = out.NextToken
	}
	return gotrans.NewLanguageSet(codes...), nil
}

// Name returns the display name.
func (c *AWSClient) Name() string {
	return AWSName
}

// Languages returns the language codes AWS Translate reported at startup.
func (c *AWSClient) Languages() gotrans.LanguageSet {
	return c.languages
}

// Translate issues a single TranslateText call. There is no retry.
func (c *AWSClient) Translate(ctx context.Context, text string) (gotrans.Result, error) {
	input := &translate.TranslateTextInput{
		SourceLanguageCode: aws.String(c.source),
		TargetLanguageCode: aws.String(c.target),
		Text:               aws.String(text),
	}
	if f, ok := awsFormality(c.formality); ok {
		input.Settings = &types.TranslationSettings{Formality: f}
	}

	c.logger.Debug("translating", "source", c.source, "target", c.target, "chars", len(text))

	out, err := c.api.TranslateText(ctx, input)
	if err != nil {
		c.logger.Error("translate failed", "error", err)
		return nil, &gotrans.ProviderError{
			Provider: AWSName,
			Message:  "TranslateText call failed",
			Cause:    err,
		}
	}
	if out == nil || out.TranslatedText == nil {
		return nil, &gotrans.EmptyResultError{Provider: AWSName}
	}

	return &gotrans.PlainText{Provider: AWSName, Text: *out.TranslatedText}, nil
}

func awsFormality(f gotrans.Formality) (types.Formality, bool) {
	switch f {
	case gotrans.FormalityFormal:
		return types.FormalityFormal, true
	case gotrans.FormalityInformal:
		return types.FormalityInformal, true
	default:
		return "", false
	}
}

// Verify AWSClient implements Client
var _ Client = (*AWSClient)(nil)
