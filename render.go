package gotrans

import (
	"fmt"
	"strings"
)

// BlockSeparator separates blocks when they are joined into a single document.
const BlockSeparator = "\n\n---\n\n"

// RenderResult turns one provider result into its render blocks.
//
// PlainText yields a single block. RichText yields the primary translation,
// then a definitions block if there are definitions, then an examples block if
// there are examples. Every occurrence of term in translation and example text
// is emphasized.
func RenderResult(r Result, term string) ([]RenderBlock, error) {
	switch v := r.(type) {
	case *PlainText:
		if strings.TrimSpace(v.Text) == "" {
			return nil, &EmptyResultError{Provider: v.Provider}
		}
		return []RenderBlock{markdown(heading(v.Provider) + Emphasize(v.Text, term))}, nil

	case *RichText:
		if strings.TrimSpace(v.Primary) == "" {
			return nil, &EmptyResultError{Provider: v.Provider}
		}
		blocks := []RenderBlock{markdown(heading(v.Provider) + Emphasize(v.Primary, term))}
		if len(v.Definitions) > 0 {
			blocks = append(blocks, markdown(renderDefinitions(v.Definitions, v.Examples, term)))
		}
		if len(v.Examples) > 0 {
			blocks = append(blocks, markdown(renderExamples(v.Examples, term)))
		}
		return blocks, nil

	default:
		return nil, fmt.Errorf("unsupported result type %T", r)
	}
}

// Emphasize wraps every literal occurrence of term in text with emphasis
// markers. Applying it twice wraps twice.
func Emphasize(text, term string) string {
	if term == "" {
		return text
	}
	return strings.ReplaceAll(text, term, "*"+term+"*")
}

// JoinBlocks concatenates block bodies into a single markdown document.
func JoinBlocks(blocks []RenderBlock) string {
	bodies := make([]string, len(blocks))
	for i, b := range blocks {
		bodies[i] = b.Body
	}
	return strings.Join(bodies, BlockSeparator)
}

func markdown(body string) RenderBlock {
	return RenderBlock{Kind: KindMarkdown, Body: body}
}

func heading(provider string) string {
	return "## " + provider + "\n\n"
}

// renderDefinitions lists each part-of-speech group with numbered glosses.
// Examples whose DefinitionID matches an entry are nested under it.
func renderDefinitions(groups []DefinitionGroup, examples []Example, term string) string {
	byID := make(map[string][]Example)
	for _, ex := range examples {
		if ex.DefinitionID == "" {
			continue
		}
		byID[ex.DefinitionID] = append(byID[ex.DefinitionID], ex)
	}

	var sb strings.Builder
	sb.WriteString("### Definitions")
	for _, group := range groups {
		sb.WriteString("\n\n")
		if group.PartOfSpeech != "" {
			fmt.Fprintf(&sb, "**%s**\n\n", group.PartOfSpeech)
		}
		for i, entry := range group.Entries {
			if i > 0 {
				sb.WriteString("\n")
			}
			fmt.Fprintf(&sb, "%d. %s", i+1, entry.Gloss)
			if entry.DefinitionID == "" {
				continue
			}
			for _, ex := range byID[entry.DefinitionID] {
				fmt.Fprintf(&sb, "\n    - %s", Emphasize(ex.Text, term))
			}
		}
	}
	return sb.String()
}

// renderExamples lists every example, including those already nested under a
// definition.
func renderExamples(examples []Example, term string) string {
	var sb strings.Builder
	sb.WriteString("### Examples\n")
	for i, ex := range examples {
		fmt.Fprintf(&sb, "\n%d. %s", i+1, Emphasize(ex.Text, term))
	}
	return sb.String()
}
