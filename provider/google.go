package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/ZaguanLabs/gotrans"
	"github.com/ZaguanLabs/gotrans/processor"
)

// DefaultGoogleHost is the public host of the web translate endpoint.
const DefaultGoogleHost = "translate.googleapis.com"

const googlePath = "/translate_a/single"

// GoogleConfig holds configuration for the Google web translate client.
type GoogleConfig struct {
	Host       string       // Endpoint host, or a full base URL with scheme (default: DefaultGoogleHost)
	Source     string       // Source language code, "auto" to detect
	Target     string       // Target language code
	HTTPClient *http.Client // Transport from transport.Build (default: http.DefaultClient)
	Logger     *slog.Logger
}

// GoogleClient queries the unauthenticated web translate endpoint and
// returns translations with dictionary definitions and usage examples.
type GoogleClient struct {
	baseURL    string
	source     string
	target     string
	httpClient *http.Client
	markup     processor.TextProcessor
	logger     *slog.Logger
}

// OpenGoogle validates the language pair against the static table.
// No network call is made.
func OpenGoogle(cfg GoogleConfig) (*GoogleClient, error) {
	languages := GoogleLanguages()
	if err := gotrans.ValidatePair(GoogleName, languages, cfg.Source, cfg.Target, true); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &GoogleClient{
		baseURL:    googleBaseURL(cfg.Host),
		source:     languages.Canonical(cfg.Source),
		target:     languages.Canonical(cfg.Target),
		httpClient: httpClient,
		markup:     processor.NewHTMLProcessor(),
		logger:     adapterLogger(cfg.Logger, gotrans.ProviderGoogle),
	}, nil
}

func googleBaseURL(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		host = DefaultGoogleHost
	}
	if strings.Contains(host, "://") {
		return strings.TrimRight(host, "/")
	}
	return "https://" + host
}

// Name returns the display name.
func (c *GoogleClient) Name() string {
	return GoogleName
}

// Languages returns the static language table.
func (c *GoogleClient) Languages() gotrans.LanguageSet {
	return GoogleLanguages()
}

type googleResponse struct {
	Sentences []struct {
		Trans string `json:"trans"`
	} `json:"sentences"`
	Definitions []struct {
		Pos   string `json:"pos"`
		Entry []struct {
			Gloss        string `json:"gloss"`
			DefinitionID string `json:"definition_id"`
		} `json:"entry"`
	} `json:"definitions"`
	Examples struct {
		Example []struct {
			Text         string `json:"text"`
			DefinitionID string `json:"definition_id"`
		} `json:"example"`
	} `json:"examples"`
}

// requestURL form-encodes the query, so spaces in q travel as '+'.
func (c *GoogleClient) requestURL(text string) string {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("dj", "1")
	q.Set("sl", c.source)
	q.Set("tl", c.target)
	q.Set("ie", "UTF-8")
	q.Set("oe", "UTF-8")
	q.Set("source", "icon")
	for _, dt := range []string{"t", "md", "ex", "ss"} {
		q.Add("dt", dt)
	}
	q.Set("q", text)
	return c.baseURL + googlePath + "?" + q.Encode()
}

// Translate issues one GET request. An empty primary translation is returned
// as is and rejected at render time.
func (c *GoogleClient) Translate(ctx context.Context, text string) (gotrans.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(text), nil)
	if err != nil {
		return nil, &gotrans.ProviderError{Provider: GoogleName, Message: "failed to build request", Cause: err}
	}

	req.Header.Set("User-Agent", gotrans.UserAgent())

	c.logger.Debug("translating", "source", c.source, "target", c.target, "chars", len(text))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("request failed", "error", err)
		return nil, &gotrans.ProviderError{Provider: GoogleName, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("unexpected status", "status", resp.StatusCode)
		return nil, &gotrans.ProviderError{
			Provider: GoogleName,
			Message:  fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var decoded googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, &gotrans.ProviderError{Provider: GoogleName, Message: "failed to decode response", Cause: err}
	}

	return c.toResult(decoded), nil
}

func (c *GoogleClient) toResult(r googleResponse) *gotrans.RichText {
	var primary strings.Builder
	for _, s := range r.Sentences {
		primary.WriteString(s.Trans)
	}

	result := &gotrans.RichText{
		Provider: GoogleName,
		Primary:  primary.String(),
	}

	for _, d := range r.Definitions {
		group := gotrans.DefinitionGroup{PartOfSpeech: d.Pos}
		for _, e := range d.Entry {
			group.Entries = append(group.Entries, gotrans.DefinitionEntry{
				Gloss:        e.Gloss,
				DefinitionID: e.DefinitionID,
			})
		}
		result.Definitions = append(result.Definitions, group)
	}

	for _, ex := range r.Examples.Example {
		text, err := c.markup.PlainText(ex.Text)
		if err != nil {
			text = ex.Text
		}
		result.Examples = append(result.Examples, gotrans.Example{
			Text:         text,
			DefinitionID: ex.DefinitionID,
		})
	}

	return result
}

// Verify GoogleClient implements Client
var _ Client = (*GoogleClient)(nil)
