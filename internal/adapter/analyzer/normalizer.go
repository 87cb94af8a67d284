package analyzer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var yoReplacer = strings.NewReplacer("ё", "е", "Ё", "Е")

// Normalizer canonicalizes raw text before tokenization.
//
// Casers and transformers from x/text keep internal state, so they are
// built per call and a Normalizer may be shared between goroutines.
type Normalizer struct {
	opts Options
}

// NewNormalizer creates a Normalizer for the given options.
func NewNormalizer(opts Options) *Normalizer {
	return &Normalizer{opts: opts.withDefaults()}
}

// Normalize applies, in order: yo-folding, case folding, diacritic folding,
// punctuation stripping (strip policy only), whitespace collapsing and trimming.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	if n.opts.FoldYo {
		text = yoReplacer.Replace(text)
	}
	if n.opts.FoldCase {
		text = cases.Fold().String(text)
	}
	// Folding may introduce combining marks (U+0130 folds to i + U+0307),
	// so marks are removed afterwards.
	if n.opts.FoldDiacritics {
		text = foldDiacritics(text)
	}
	if n.opts.Punctuation == PunctuationStrip {
		text = stripNonClass(text, n.opts.Charset)
	}
	return collapseSpace(text)
}

// Normalize is a convenience wrapper around NewNormalizer(opts).Normalize.
func Normalize(text string, opts Options) string {
	return NewNormalizer(opts).Normalize(text)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}

// stripNonClass drops every rune that is neither whitespace nor part of the
// charset.
func stripNonClass(s string, c Charset) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || c.isClassRune(r) {
			return r
		}
		return -1
	}, s)
}

// collapseSpace turns every whitespace run into a single ASCII space and
// trims both ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
