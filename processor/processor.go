// Package processor normalizes provider text before it is rendered.
package processor

// TextProcessor turns provider markup into display text.
type TextProcessor interface {
	PlainText(fragment string) (string, error)
}
