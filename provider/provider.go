// Package provider implements the translation backends: AWS Translate, the
// Google web translate endpoint and an OpenAI-compatible chat model.
package provider

import (
	"log/slog"
	"net/http"

	"github.com/ZaguanLabs/gotrans"
)

// Client is an alias to the main package interface for convenience.
type Client = gotrans.Client

// Result is an alias to the main package type.
type Result = gotrans.Result

// Display names used in rendered headings.
const (
	AWSName    = "AWS Translate"
	GoogleName = "Google Translate"
	OpenAIName = "OpenAI"
)

func adapterLogger(l *slog.Logger, id gotrans.ProviderID) *slog.Logger {
	if l == nil {
		l = slog.Default()
	}
	return l.With("adapter", string(id))
}

// userAgentDoer stamps the gotrans User-Agent on every request before handing
// it to the proxy-aware client.
type userAgentDoer struct {
	client *http.Client
}

func newUserAgentDoer(c *http.Client) userAgentDoer {
	if c == nil {
		c = &http.Client{}
	}
	return userAgentDoer{client: c}
}

func (d userAgentDoer) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", gotrans.UserAgent())
	return d.client.Do(req)
}
