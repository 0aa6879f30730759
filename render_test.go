package gotrans

import (
	"errors"
	"strings"
	"testing"
)

func renderOK(t *testing.T, r Result, term string, wantBlocks int) []RenderBlock {
	t.Helper()
	blocks, err := RenderResult(r, term)
	if err != nil {
		t.Fatalf("RenderResult() error = %v", err)
	}
	if len(blocks) != wantBlocks {
		t.Fatalf("got %d blocks, want %d: %v", len(blocks), wantBlocks, blocks)
	}
	return blocks
}

func TestEmphasize(t *testing.T) {
	tests := []struct {
		name string
		text string
		term string
		want string
	}{
		{"single match", "hello there", "hello", "*hello* there"},
		{"every match", "hello, hello", "hello", "*hello*, *hello*"},
		{"no match", "hi there", "hello", "hi there"},
		{"case sensitive", "Hello there", "hello", "Hello there"},
		{"substring match", "othello", "hello", "ot*hello*"},
		{"empty term", "hello", "", "hello"},
		{"multi word term", "say good morning", "good morning", "say *good morning*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Emphasize(tt.text, tt.term); got != tt.want {
				t.Errorf("Emphasize(%q, %q) = %q, want %q", tt.text, tt.term, got, tt.want)
			}
		})
	}
}

func TestEmphasize_ReapplyWrapsAgain(t *testing.T) {
	once := Emphasize("hello there", "hello")
	twice := Emphasize(once, "hello")
	if twice != "**hello** there" {
		t.Errorf("got %q", twice)
	}
}

func TestRenderResult_PlainText(t *testing.T) {
	blocks := renderOK(t, &PlainText{Provider: "AWS Translate", Text: "hola hello"}, "hello", 1)
	if want := "## AWS Translate\n\nhola *hello*"; blocks[0].Body != want {
		t.Errorf("body = %q, want %q", blocks[0].Body, want)
	}
}

func TestRenderResult_EmptyPlainText(t *testing.T) {
	_, err := RenderResult(&PlainText{Provider: "AWS Translate", Text: "  "}, "hello")
	var emptyErr *EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Errorf("expected EmptyResultError, got %v", err)
	}
}

func TestRenderResult_RichTextPrimaryOnly(t *testing.T) {
	renderOK(t, &RichText{Provider: "Google Translate", Primary: "hola"}, "hello", 1)
}

func TestRenderResult_ExamplesWithoutDefinitions(t *testing.T) {
	blocks := renderOK(t, &RichText{
		Provider: "Google Translate",
		Primary:  "hola",
		Examples: []Example{{Text: "hello world"}, {Text: "say hello", DefinitionID: "9"}},
	}, "hello", 2)
	if want := "### Examples\n\n1. *hello* world\n2. say *hello*"; blocks[1].Body != want {
		t.Errorf("examples = %q, want %q", blocks[1].Body, want)
	}
}

func TestRenderResult_DefinitionCorrelation(t *testing.T) {
	r := &RichText{
		Provider: "Google Translate",
		Primary:  "banco",
		Definitions: []DefinitionGroup{
			{
				PartOfSpeech: "noun",
				Entries: []DefinitionEntry{
					{Gloss: "the land alongside a river", DefinitionID: "m1"},
					{Gloss: "a financial establishment", DefinitionID: "m2"},
				},
			},
			{
				PartOfSpeech: "verb",
				Entries: []DefinitionEntry{
					{Gloss: "deposit money"},
				},
			},
		},
		Examples: []Example{
			{Text: "the river bank", DefinitionID: "m1"},
			{Text: "a bank loan", DefinitionID: "m2"},
			{Text: "the bank of the canal", DefinitionID: "m1"},
			{Text: "bank on it", DefinitionID: "unknown"},
			{Text: "bank holiday"},
		},
	}

	blocks := renderOK(t, r, "bank", 3)

	wantDefs := strings.Join([]string{
		"### Definitions",
		"",
		"**noun**",
		"",
		"1. the land alongside a river",
		"    - the river *bank*",
		"    - the *bank* of the canal",
		"2. a financial establishment",
		"    - a *bank* loan",
		"",
		"**verb**",
		"",
		"1. deposit money",
	}, "\n")
	if blocks[1].Body != wantDefs {
		t.Errorf("definitions =\n%s\nwant\n%s", blocks[1].Body, wantDefs)
	}

	// Unmatched examples never appear under an entry
	for _, text := range []string{"bank on it", "holiday"} {
		if strings.Contains(blocks[1].Body, text) {
			t.Errorf("definitions contain unmatched example %q", text)
		}
	}

	// The flat list repeats every example, nested ones included
	wantExamples := strings.Join([]string{
		"### Examples",
		"",
		"1. the river *bank*",
		"2. a *bank* loan",
		"3. the *bank* of the canal",
		"4. *bank* on it",
		"5. *bank* holiday",
	}, "\n")
	if blocks[2].Body != wantExamples {
		t.Errorf("examples =\n%s\nwant\n%s", blocks[2].Body, wantExamples)
	}
}

func TestRenderResult_EmptyIDsDoNotCorrelate(t *testing.T) {
	r := &RichText{
		Provider:    "Google Translate",
		Primary:     "hola",
		Definitions: []DefinitionGroup{{PartOfSpeech: "noun", Entries: []DefinitionEntry{{Gloss: "greeting"}}}},
		Examples:    []Example{{Text: "hello there"}},
	}

	blocks := renderOK(t, r, "hello", 3)
	if want := "### Definitions\n\n**noun**\n\n1. greeting"; blocks[1].Body != want {
		t.Errorf("definitions = %q, want %q", blocks[1].Body, want)
	}
}

type unknownResult struct{}

func (unknownResult) ProviderName() string { return "unknown" }
func (unknownResult) isResult()            {}

func TestRenderResult_UnknownType(t *testing.T) {
	if _, err := RenderResult(unknownResult{}, "hello"); err == nil {
		t.Error("expected error for unknown result type")
	}
}

func TestJoinBlocks(t *testing.T) {
	got := JoinBlocks([]RenderBlock{
		{Kind: KindMarkdown, Body: "a"},
		{Kind: KindMarkdown, Body: "b"},
	})
	if got != "a"+BlockSeparator+"b" {
		t.Errorf("JoinBlocks() = %q", got)
	}
	if got := JoinBlocks(nil); got != "" {
		t.Errorf("JoinBlocks(nil) = %q, want empty", got)
	}
}
