package analyzer

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions is returned when Options fail validation.
var ErrInvalidOptions = errors.New("invalid analyzer options")

// Punctuation selects how non-word characters are handled.
type Punctuation string

const (
	// PunctuationBoundary extracts tokens by word-boundary matching and
	// leaves punctuation in the normalized text.
	PunctuationBoundary Punctuation = "boundary"
	// PunctuationStrip deletes every rune outside the charset (whitespace
	// excepted) and splits the remainder on whitespace.
	PunctuationStrip Punctuation = "strip"
)

// Charset selects the runes a token may consist of.
type Charset string

const (
	// CharsetWord is the Unicode word class: letters, digits and underscore.
	CharsetWord Charset = "word"
	// CharsetAlpha is Latin and Cyrillic letters only.
	CharsetAlpha Charset = "alpha"
)

// DefaultTopN is the ranker size used when none is configured.
const DefaultTopN = 5

// Options lists every toggle of the normalize/tokenize/count/rank pipeline.
type Options struct {
	FoldCase       bool
	FoldYo         bool
	FoldDiacritics bool
	Punctuation    Punctuation
	Charset        Charset
	JoinHyphens    bool
	MinLength      int
	Stopwords      []string
	TopN           int
}

// DefaultOptions returns the word-boundary, hyphen-aware, Unicode variant
// with yo-folding and case folding enabled.
func DefaultOptions() Options {
	return Options{
		FoldCase:    true,
		FoldYo:      true,
		Punctuation: PunctuationBoundary,
		Charset:     CharsetWord,
		JoinHyphens: true,
		TopN:        DefaultTopN,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	switch o.Punctuation {
	case PunctuationBoundary, PunctuationStrip:
	default:
		return fmt.Errorf("%w: unknown punctuation policy %q", ErrInvalidOptions, o.Punctuation)
	}
	switch o.Charset {
	case CharsetWord, CharsetAlpha:
	default:
		return fmt.Errorf("%w: unknown charset %q", ErrInvalidOptions, o.Charset)
	}
	if o.MinLength < 0 {
		return fmt.Errorf("%w: min length must not be negative, got %d", ErrInvalidOptions, o.MinLength)
	}
	return nil
}

// withDefaults fills zero-valued enum fields so a partially built Options
// still describes a runnable pipeline.
func (o Options) withDefaults() Options {
	if o.Punctuation == "" {
		o.Punctuation = PunctuationBoundary
	}
	if o.Charset == "" {
		o.Charset = CharsetWord
	}
	return o
}

// isClassRune reports whether r may appear inside a token for the charset.
func (c Charset) isClassRune(r rune) bool {
	switch c {
	case CharsetAlpha:
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= 'а' && r <= 'я') || (r >= 'А' && r <= 'Я') ||
			r == 'ё' || r == 'Ё'
	default:
		return isWordRune(r)
	}
}

// classPattern is the regexp character class matching isClassRune.
func (c Charset) classPattern() string {
	if c == CharsetAlpha {
		return `[A-Za-zА-Яа-яЁё]`
	}
	return `[\p{L}\p{N}_]`
}
