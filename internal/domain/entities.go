package domain

import "time"

type Document struct {
	ID          string
	Path        string
	ModTime     time.Time
	Size        int64
	TotalWords  int
	UniqueWords int
}

// WordCount is one row of a ranked list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalWords  int            `json:"total_words"`
	UniqueWords int            `json:"unique_words"`
	Top         []WordCount    `json:"top"`
	Frequencies map[string]int `json:"-"`
}

type Posting struct {
	DocID string `json:"doc_id"`
	Count int    `json:"count"`
}

type Stats struct {
	TotalDocs   int `json:"total_docs"`
	TotalWords  int `json:"total_words"`
	UniqueWords int `json:"unique_words"`
}

// Occurrence is a posting resolved to a document path.
type Occurrence struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}
