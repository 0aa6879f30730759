// Package editor extracts the text an editor command translates: the word
// under the cursor, a whole line or a selection.
package editor

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoWord is returned when the cursor line holds no word at or after the cursor.
var ErrNoWord = errors.New("no word under cursor")

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '_'
}

// WordAt returns the word under the 1-based rune column col of line. When
// the cursor sits on a non-word character the next word on the line is used.
func WordAt(line string, col int) (string, error) {
	runes := []rune(line)
	if col < 1 || col > len(runes)+1 {
		return "", fmt.Errorf("column %d out of range for line of length %d", col, len(runes))
	}

	i := col - 1
	for i < len(runes) && !isWordRune(runes[i]) {
		i++
	}
	if i >= len(runes) {
		return "", ErrNoWord
	}

	start := i
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := i
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}

	return string(runes[start:end]), nil
}

// LineAt returns the 1-based line n of text without its line terminator.
func LineAt(text string, n int) (string, error) {
	lines := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		lines = lines[:len(lines)-1]
	}
	if n < 1 || n > len(lines) {
		return "", fmt.Errorf("line %d out of range (%d lines)", n, len(lines))
	}
	return strings.TrimSuffix(lines[n-1], "\r"), nil
}
