package processor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ZaguanLabs/gotrans"
	"golang.org/x/net/html"
)

// DefaultIgnoredTags contains HTML tags whose content is dropped from plain text.
var DefaultIgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// HTMLProcessor converts HTML fragments, such as the <b>-highlighted usage
// examples of the web endpoint, into plain text.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: DefaultIgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// PlainText strips tags, decodes entities and collapses whitespace.
// Text without markup is returned with whitespace collapsed only.
func (p *HTMLProcessor) PlainText(fragment string) (string, error) {
	if !strings.ContainsAny(fragment, "<&") {
		return collapseWhitespace(fragment), nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", &gotrans.ProviderError{
			Provider: "processor",
			Message:  "failed to parse markup",
			Cause:    err,
		}
	}

	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			tag := strings.ToLower(n.Data)
			if p.ignoredTags[tag] {
				return
			}
			if tag == "br" {
				sb.WriteString(" ")
				return
			}
		}

		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Find("body").Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return collapseWhitespace(sb.String()), nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Verify HTMLProcessor implements TextProcessor
var _ TextProcessor = (*HTMLProcessor)(nil)
