package store

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"wordfreq/internal/domain"
)

var (
	bucketDocs  = []byte("docs")
	bucketFreqs = []byte("freqs")
	bucketTerms = []byte("terms")
	bucketStats = []byte("stats")
	keyStats    = []byte("corpus_stats")
)

var dataBuckets = [][]byte{bucketDocs, bucketFreqs, bucketTerms}

type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketDocs, bucketFreqs, bucketTerms, bucketStats} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

type docMeta struct {
	Path        string `json:"path"`
	ModTime     int64  `json:"mod_time"`
	Size        int64  `json:"size"`
	TotalWords  int    `json:"total_words"`
	UniqueWords int    `json:"unique_words"`
}

// PutDocument stores the document, its frequency map and its postings in one
// transaction, replacing whatever was stored for the same ID.
func (s *BoltStore) PutDocument(doc domain.Document, freq map[string]int) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := deleteDocument(tx, doc.ID); err != nil {
			return err
		}

		meta := docMeta{
			Path:        doc.Path,
			ModTime:     doc.ModTime.Unix(),
			Size:        doc.Size,
			TotalWords:  doc.TotalWords,
			UniqueWords: doc.UniqueWords,
		}
		data, err := json.Marshal(meta)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketDocs).Put([]byte(doc.ID), data); err != nil {
			return err
		}

		freqData, err := json.Marshal(freq)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketFreqs).Put([]byte(doc.ID), freqData); err != nil {
			return err
		}

		terms := tx.Bucket(bucketTerms)
		for word, count := range freq {
			postings, err := readPostings(terms, word)
			if err != nil {
				return err
			}
			postings = append(postings, domain.Posting{DocID: doc.ID, Count: count})
			if err := writePostings(terms, word, postings); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *BoltStore) GetDocument(id string) (domain.Document, error) {
	var doc domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDocs).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
		}
		var meta docMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			return err
		}
		doc = meta.document(id)
		return nil
	})
	return doc, err
}

func (s *BoltStore) ListDocuments() ([]domain.Document, error) {
	var docs []domain.Document
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDocs).ForEach(func(k, v []byte) error {
			var meta docMeta
			if err := json.Unmarshal(v, &meta); err != nil {
				return err
			}
			docs = append(docs, meta.document(string(k)))
			return nil
		})
	})
	return docs, err
}

func (s *BoltStore) DeleteDocument(id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		return deleteDocument(tx, id)
	})
}

func (s *BoltStore) GetFrequencies(docID string) (map[string]int, error) {
	var freq map[string]int
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketFreqs).Get([]byte(docID))
		if data == nil {
			return fmt.Errorf("frequencies for %s: %w", docID, domain.ErrNotFound)
		}
		return json.Unmarshal(data, &freq)
	})
	return freq, err
}

func (s *BoltStore) GetPostings(word string) ([]domain.Posting, error) {
	var postings []domain.Posting
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		postings, err = readPostings(tx.Bucket(bucketTerms), word)
		return err
	})
	return postings, err
}

func (s *BoltStore) GetStats() (domain.Stats, error) {
	var stats domain.Stats
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketStats).Get(keyStats)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &stats)
	})
	return stats, err
}

func (s *BoltStore) UpdateStats(stats domain.Stats) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(stats)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketStats).Put(keyStats, data)
	})
}

// deleteDocument removes a document and its postings. Missing documents are
// not an error.
func deleteDocument(tx *bbolt.Tx, id string) error {
	key := []byte(id)
	freqs := tx.Bucket(bucketFreqs)
	if data := freqs.Get(key); data != nil {
		var freq map[string]int
		if err := json.Unmarshal(data, &freq); err != nil {
			return err
		}
		terms := tx.Bucket(bucketTerms)
		for word := range freq {
			postings, err := readPostings(terms, word)
			if err != nil {
				return err
			}
			filtered := postings[:0]
			for _, p := range postings {
				if p.DocID != id {
					filtered = append(filtered, p)
				}
			}
			if err := writePostings(terms, word, filtered); err != nil {
				return err
			}
		}
		if err := freqs.Delete(key); err != nil {
			return err
		}
	}
	return tx.Bucket(bucketDocs).Delete(key)
}

func readPostings(b *bbolt.Bucket, word string) ([]domain.Posting, error) {
	data := b.Get([]byte(word))
	if data == nil {
		return nil, nil
	}
	var postings []domain.Posting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("corrupt postings for %q: %w", word, err)
	}
	return postings, nil
}

func writePostings(b *bbolt.Bucket, word string, postings []domain.Posting) error {
	if len(postings) == 0 {
		return b.Delete([]byte(word))
	}
	data, err := json.Marshal(postings)
	if err != nil {
		return err
	}
	return b.Put([]byte(word), data)
}

func (m docMeta) document(id string) domain.Document {
	return domain.Document{
		ID:          id,
		Path:        m.Path,
		ModTime:     time.Unix(m.ModTime, 0),
		Size:        m.Size,
		TotalWords:  m.TotalWords,
		UniqueWords: m.UniqueWords,
	}
}
