package memstore

import (
	"fmt"
	"maps"
	"sort"
	"sync"

	"wordfreq/internal/domain"
)

// MemoryStore is an in-memory port.FrequencyStore.
type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string]domain.Document
	freqs    map[string]map[string]int
	postings map[string]map[string]int // word -> doc ID -> count
	stats    domain.Stats
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string]domain.Document),
		freqs:    make(map[string]map[string]int),
		postings: make(map[string]map[string]int),
	}
}

func (s *MemoryStore) PutDocument(doc domain.Document, freq map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(doc.ID)
	s.docs[doc.ID] = doc
	s.freqs[doc.ID] = maps.Clone(freq)
	for word, count := range freq {
		if s.postings[word] == nil {
			s.postings[word] = make(map[string]int)
		}
		s.postings[word][doc.ID] = count
	}
	return nil
}

func (s *MemoryStore) GetDocument(id string) (domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return domain.Document{}, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}

func (s *MemoryStore) ListDocuments() ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (s *MemoryStore) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(id)
	return nil
}

func (s *MemoryStore) GetFrequencies(docID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	freq, ok := s.freqs[docID]
	if !ok {
		return nil, fmt.Errorf("frequencies for %s: %w", docID, domain.ErrNotFound)
	}
	return maps.Clone(freq), nil
}

func (s *MemoryStore) GetPostings(word string) ([]domain.Posting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byDoc := s.postings[word]
	postings := make([]domain.Posting, 0, len(byDoc))
	for docID, count := range byDoc {
		postings = append(postings, domain.Posting{DocID: docID, Count: count})
	}
	sort.Slice(postings, func(i, j int) bool { return postings[i].DocID < postings[j].DocID })
	return postings, nil
}

func (s *MemoryStore) GetStats() (domain.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStore) UpdateStats(stats domain.Stats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = stats
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) deleteLocked(id string) {
	for word := range s.freqs[id] {
		delete(s.postings[word], id)
		if len(s.postings[word]) == 0 {
			delete(s.postings, word)
		}
	}
	delete(s.freqs, id)
	delete(s.docs, id)
}
