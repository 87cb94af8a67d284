package analyzer

import (
	"fmt"

	"wordfreq/internal/domain"
)

// Analyzer runs normalize, tokenize, count and rank over one text.
type Analyzer struct {
	opts       Options
	normalizer *Normalizer
	tokenizer  *Tokenizer
}

// NewAnalyzer validates opts and builds the pipeline.
func NewAnalyzer(opts Options) (*Analyzer, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		opts:       opts,
		normalizer: NewNormalizer(opts),
		tokenizer:  NewTokenizer(opts),
	}, nil
}

// MustNewAnalyzer is like NewAnalyzer but panics on invalid options.
func MustNewAnalyzer(opts Options) *Analyzer {
	a, err := NewAnalyzer(opts)
	if err != nil {
		panic(fmt.Sprintf("analyzer: %v", err))
	}
	return a
}

// Options returns the options the analyzer was built with.
func (a *Analyzer) Options() Options {
	return a.opts
}

func (a *Analyzer) Normalize(text string) string {
	return a.normalizer.Normalize(text)
}

// Tokens normalizes and tokenizes text.
func (a *Analyzer) Tokens(text string) []string {
	return a.tokenizer.Tokenize(a.normalizer.Normalize(text))
}

// Analyze runs the whole pipeline and ranks the result with the configured TopN.
func (a *Analyzer) Analyze(text string) domain.Summary {
	freq := CountFrequency(a.Tokens(text))
	return domain.Summary{
		TotalWords:  freq.Total(),
		UniqueWords: len(freq),
		Top:         TopN(freq, a.opts.TopN),
		Frequencies: freq,
	}
}
