package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/ZaguanLabs/gotrans"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/translate"
	"github.com/aws/aws-sdk-go-v2/service/translate/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslateAPI struct {
	pages      [][]string
	nilList    bool
	listErr    error
	listCalls  int
	translated *string
	translErr  error
	lastInput  *translate.TranslateTextInput
}

func (f *fakeTranslateAPI) ListLanguages(ctx context.Context, in *translate.ListLanguagesInput, _ ...func(*translate.Options)) (*translate.ListLanguagesOutput, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.nilList {
		return &translate.ListLanguagesOutput{}, nil
	}

	page := 0
	if in.NextToken != nil {
		page = int(aws.ToString(in.NextToken)[0] - '0')
	}

	out := &translate.ListLanguagesOutput{Languages: []types.Language{}}
	for _, code := range f.pages[page] {
		out.Languages = append(out.Languages, types.Language{LanguageCode: aws.String(code)})
	}
	if page+1 < len(f.pages) {
		out.NextToken = aws.String(string(rune('0' + page + 1)))
	}
	return out, nil
}

func (f *fakeTranslateAPI) TranslateText(ctx context.Context, in *translate.TranslateTextInput, _ ...func(*translate.Options)) (*translate.TranslateTextOutput, error) {
	f.lastInput = in
	if f.translErr != nil {
		return nil, f.translErr
	}
	return &translate.TranslateTextOutput{TranslatedText: f.translated}, nil
}

func newFakeAPI() *fakeTranslateAPI {
	return &fakeTranslateAPI{
		pages:      [][]string{{"en", "es"}, {"de", "fr"}},
		translated: aws.String("hola"),
	}
}

func TestOpenAWS_PagesLanguages(t *testing.T) {
	api := newFakeAPI()

	c, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "fr"})
	require.NoError(t, err)

	assert.Equal(t, 2, api.listCalls)
	assert.Equal(t, []string{"de", "en", "es", "fr"}, c.Languages().Codes())
	assert.Equal(t, AWSName, c.Name())
}

func TestOpenAWS_UnsupportedTarget(t *testing.T) {
	_, err := openAWSWithAPI(context.Background(), newFakeAPI(), AWSConfig{Source: "en", Target: "xx"})

	var langErr *gotrans.UnsupportedLanguageError
	require.ErrorAs(t, err, &langErr)
	assert.Equal(t, "xx", langErr.Code)
}

func TestOpenAWS_UnsupportedSource(t *testing.T) {
	_, err := openAWSWithAPI(context.Background(), newFakeAPI(), AWSConfig{Source: "xx", Target: "es"})

	var langErr *gotrans.UnsupportedLanguageError
	require.ErrorAs(t, err, &langErr)
	assert.Equal(t, "xx", langErr.Code)
}

func TestOpenAWS_AutoSource(t *testing.T) {
	_, err := openAWSWithAPI(context.Background(), newFakeAPI(), AWSConfig{Source: "auto", Target: "es"})
	require.NoError(t, err)

	_, err = openAWSWithAPI(context.Background(), newFakeAPI(), AWSConfig{Source: "en", Target: "auto"})
	var langErr *gotrans.UnsupportedLanguageError
	require.ErrorAs(t, err, &langErr)
}

func TestOpenAWS_Unavailable(t *testing.T) {
	t.Run("missing list", func(t *testing.T) {
		api := newFakeAPI()
		api.nilList = true

		_, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es"})

		var unavailable *gotrans.ProviderUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})

	t.Run("call failure", func(t *testing.T) {
		api := newFakeAPI()
		api.listErr = errors.New("no credentials")

		_, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es"})

		var unavailable *gotrans.ProviderUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.ErrorContains(t, err, "no credentials")
	})
}

func TestOpenAWS_UnknownFormality(t *testing.T) {
	_, err := openAWSWithAPI(context.Background(), newFakeAPI(), AWSConfig{Source: "en", Target: "es", Formality: "polite"})

	var cfgErr *gotrans.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
}

func TestAWSClient_Translate(t *testing.T) {
	api := newFakeAPI()
	c, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es", Formality: gotrans.FormalityInformal})
	require.NoError(t, err)

	result, err := c.Translate(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, &gotrans.PlainText{Provider: AWSName, Text: "hola"}, result)
	assert.Equal(t, "en", aws.ToString(api.lastInput.SourceLanguageCode))
	assert.Equal(t, "es", aws.ToString(api.lastInput.TargetLanguageCode))
	assert.Equal(t, "hello", aws.ToString(api.lastInput.Text))
	require.NotNil(t, api.lastInput.Settings)
	assert.Equal(t, types.FormalityInformal, api.lastInput.Settings.Formality)
}

func TestAWSClient_TranslateNoFormality(t *testing.T) {
	api := newFakeAPI()
	c, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es", Formality: gotrans.FormalityNone})
	require.NoError(t, err)

	_, err = c.Translate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Nil(t, api.lastInput.Settings)
}

func TestAWSClient_TranslateMissingText(t *testing.T) {
	api := newFakeAPI()
	api.translated = nil
	c, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es"})
	require.NoError(t, err)

	_, err = c.Translate(context.Background(), "hello")

	var emptyErr *gotrans.EmptyResultError
	require.ErrorAs(t, err, &emptyErr)
}

func TestAWSClient_TranslateFailure(t *testing.T) {
	api := newFakeAPI()
	api.translErr = errors.New("throttled")
	c, err := openAWSWithAPI(context.Background(), api, AWSConfig{Source: "en", Target: "es"})
	require.NoError(t, err)

	_, err = c.Translate(context.Background(), "hello")

	var provErr *gotrans.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.ErrorContains(t, err, "throttled")
}
