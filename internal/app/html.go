package app

import (
	"bytes"
	"fmt"

	"github.com/ZaguanLabs/gotrans"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownEngine renders block bodies. Raw HTML in provider text is escaped.
var markdownEngine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderHTML converts rendered blocks to an HTML fragment for editors whose
// floating windows display HTML.
func RenderHTML(blocks []gotrans.RenderBlock) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(gotrans.JoinBlocks(blocks)), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}
	return buf.String(), nil
}
