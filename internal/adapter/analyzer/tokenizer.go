package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits normalized text into word tokens with optional stopword
// and short-token removal.
type Tokenizer struct {
	opts      Options
	pattern   *regexp.Regexp
	stopwords map[string]struct{}
}

// NewTokenizer creates a Tokenizer for the given options. Stopwords are
// normalized with the same options so they compare equal to tokens.
func NewTokenizer(opts Options) *Tokenizer {
	opts = opts.withDefaults()
	t := &Tokenizer{
		opts:    opts,
		pattern: regexp.MustCompile(tokenPattern(opts)),
	}
	if len(opts.Stopwords) > 0 {
		norm := NewNormalizer(opts)
		t.stopwords = make(map[string]struct{}, len(opts.Stopwords))
		for _, w := range opts.Stopwords {
			if w = norm.Normalize(w); w != "" {
				t.stopwords[w] = struct{}{}
			}
		}
	}
	return t
}

// Tokenize returns tokens in order of appearance, duplicates included.
func (t *Tokenizer) Tokenize(text string) []string {
	words := t.split(text)
	tokens := make([]string, 0, len(words))

	for _, word := range words {
		if t.opts.MinLength > 0 && utf8.RuneCountInString(word) < t.opts.MinLength {
			continue
		}
		if _, isStop := t.stopwords[word]; isStop {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// Tokenize splits text with DefaultOptions.
func Tokenize(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

var defaultTokenizer = NewTokenizer(DefaultOptions())

func (t *Tokenizer) split(text string) []string {
	if text == "" {
		return nil
	}
	if t.opts.Punctuation == PunctuationStrip {
		return strings.Fields(stripNonClass(text, t.opts.Charset))
	}
	return t.pattern.FindAllString(text, -1)
}

// tokenPattern builds C+(-C+)* for the configured charset C. Go's \w and \b
// are ASCII-only, so the class is spelled out. Leftmost-first matching of a
// greedy run already starts and ends on word boundaries.
func tokenPattern(opts Options) string {
	class := opts.Charset.classPattern()
	if !opts.JoinHyphens {
		return class + `+`
	}
	return class + `+(?:-` + class + `+)*`
}
