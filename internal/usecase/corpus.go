package usecase

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/cache"
	"wordfreq/internal/domain"
	"wordfreq/internal/port"
)

// ErrNotAWord is returned by Lookup when the query does not normalize to
// exactly one token.
var ErrNotAWord = errors.New("query is not a single countable word")

// CorpusUseCase answers questions about an indexed corpus.
type CorpusUseCase struct {
	store    port.FrequencyStore
	analyzer *analyzer.Analyzer
	rankings *cache.RankingCache
}

// NewCorpusUseCase creates a new corpus use case.
func NewCorpusUseCase(store port.FrequencyStore, a *analyzer.Analyzer) *CorpusUseCase {
	return &CorpusUseCase{store: store, analyzer: a}
}

// WithCache memoizes Top results in c. The caller invalidates c whenever the
// store changes.
func (u *CorpusUseCase) WithCache(c *cache.RankingCache) *CorpusUseCase {
	u.rankings = c
	return u
}

// Frequencies merges the frequency maps of every indexed document.
func (u *CorpusUseCase) Frequencies() (analyzer.Frequencies, error) {
	docs, err := u.store.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	merged := analyzer.Frequencies{}
	for _, doc := range docs {
		freq, err := u.store.GetFrequencies(doc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load frequencies for %s: %w", doc.Path, err)
		}
		merged.Merge(freq)
	}
	return merged, nil
}

// Top returns the n most frequent words across the corpus.
func (u *CorpusUseCase) Top(n int) ([]domain.WordCount, error) {
	if u.rankings != nil {
		if words, ok := u.rankings.Get(n); ok {
			return words, nil
		}
	}

	freq, err := u.Frequencies()
	if err != nil {
		return nil, err
	}
	words := analyzer.TopN(freq, n)

	if u.rankings != nil {
		u.rankings.Put(n, words)
	}
	return words, nil
}

// Stats returns the stored corpus statistics.
func (u *CorpusUseCase) Stats() (domain.Stats, error) {
	return u.store.GetStats()
}

// Lookup normalizes word with the corpus options and lists the documents
// containing it, highest count first.
func (u *CorpusUseCase) Lookup(word string) ([]domain.Occurrence, error) {
	tokens := u.analyzer.Tokens(word)
	if len(tokens) != 1 {
		return nil, fmt.Errorf("%q: %w", word, ErrNotAWord)
	}

	postings, err := u.store.GetPostings(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read postings: %w", err)
	}

	occurrences := make([]domain.Occurrence, 0, len(postings))
	for _, p := range postings {
		doc, err := u.store.GetDocument(p.DocID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		occurrences = append(occurrences, domain.Occurrence{Path: doc.Path, Count: p.Count})
	}

	slices.SortFunc(occurrences, func(a, b domain.Occurrence) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	return occurrences, nil
}

// corpusStats recomputes corpus-wide statistics from the stored documents.
func corpusStats(store port.FrequencyStore) (domain.Stats, error) {
	docs, err := store.ListDocuments()
	if err != nil {
		return domain.Stats{}, err
	}
	vocabulary := make(map[string]struct{})
	stats := domain.Stats{TotalDocs: len(docs)}
	for _, doc := range docs {
		stats.TotalWords += doc.TotalWords
		freq, err := store.GetFrequencies(doc.ID)
		if err != nil {
			return domain.Stats{}, err
		}
		for word := range freq {
			vocabulary[word] = struct{}{}
		}
	}
	stats.UniqueWords = len(vocabulary)
	return stats, nil
}
