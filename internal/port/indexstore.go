package port

import "wordfreq/internal/domain"

// FrequencyStore persists per-document frequency maps and the word postings
// derived from them.
type FrequencyStore interface {
	PutDocument(doc domain.Document, freq map[string]int) error

	GetDocument(id string) (domain.Document, error)

	ListDocuments() ([]domain.Document, error)

	DeleteDocument(id string) error

	GetFrequencies(docID string) (map[string]int, error)

	GetPostings(word string) ([]domain.Posting, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
