package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"wordfreq/config"
	"wordfreq/internal/domain"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 2

var (
	keySchemaVersion = []byte("schema_version")
	keyConfigHash    = []byte("config_hash")
)

// SchemaInfo stores schema version and configuration hash.
type SchemaInfo struct {
	Version    int    `json:"version"`
	ConfigHash string `json:"config_hash"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		if versionData := b.Get(keySchemaVersion); versionData != nil {
			if err := json.Unmarshal(versionData, &info.Version); err != nil {
				info.Version = 1
			}
		}
		if hashData := b.Get(keyConfigHash); hashData != nil {
			info.ConfigHash = string(hashData)
		}
		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		versionData, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, versionData); err != nil {
			return err
		}

		return b.Put(keyConfigHash, []byte(info.ConfigHash))
	})
}

// ComputeConfigHash hashes every setting that changes which tokens are
// counted. A different hash means stored frequencies are stale.
func ComputeConfigHash(cfg *config.Config) string {
	opts := cfg.AnalyzerOptions()
	relevant := struct {
		FoldCase       bool     `json:"fold_case"`
		FoldYo         bool     `json:"fold_yo"`
		FoldDiacritics bool     `json:"fold_diacritics"`
		Punctuation    string   `json:"punctuation"`
		Charset        string   `json:"charset"`
		JoinHyphens    bool     `json:"join_hyphens"`
		MinLength      int      `json:"min_length"`
		Stopwords      []string `json:"stopwords"`
		Encoding       string   `json:"encoding"`
	}{
		FoldCase:       opts.FoldCase,
		FoldYo:         opts.FoldYo,
		FoldDiacritics: opts.FoldDiacritics,
		Punctuation:    string(opts.Punctuation),
		Charset:        string(opts.Charset),
		JoinHyphens:    opts.JoinHyphens,
		MinLength:      opts.MinLength,
		Stopwords:      opts.Stopwords,
		Encoding:       cfg.Input.Encoding,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// MigrationResult describes the result of a migration check.
type MigrationResult struct {
	NeedsMigration bool
	NeedsRebuild   bool
	OldVersion     int
	NewVersion     int
	Reason         string
}

// CheckMigration checks if migration or rebuild is needed.
func (s *BoltStore) CheckMigration(cfg *config.Config) (*MigrationResult, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	result := &MigrationResult{
		OldVersion: info.Version,
		NewVersion: CurrentSchemaVersion,
	}

	switch {
	case info.Version == 0:
		result.NeedsMigration = true
		result.Reason = "initializing schema version"
	case info.Version < CurrentSchemaVersion:
		result.NeedsMigration = true
		result.Reason = fmt.Sprintf("schema upgrade from v%d to v%d", info.Version, CurrentSchemaVersion)
	case info.Version > CurrentSchemaVersion:
		result.NeedsRebuild = true
		result.Reason = fmt.Sprintf("database created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
		return result, nil
	}

	if info.ConfigHash != "" && info.ConfigHash != ComputeConfigHash(cfg) {
		result.NeedsRebuild = true
		result.Reason = "analyzer configuration changed"
	}

	return result, nil
}

// Migrate performs any necessary schema migrations and records the current
// configuration hash.
func (s *BoltStore) Migrate(cfg *config.Config) error {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return err
	}

	for v := info.Version; v < CurrentSchemaVersion; v++ {
		if err := s.runMigration(v, v+1); err != nil {
			return fmt.Errorf("migration from v%d to v%d failed: %w", v, v+1, err)
		}
	}

	return s.SetSchemaInfo(&SchemaInfo{
		Version:    CurrentSchemaVersion,
		ConfigHash: ComputeConfigHash(cfg),
	})
}

// runMigration runs a specific version migration.
func (s *BoltStore) runMigration(from, to int) error {
	switch {
	case from == 1 && to == 2:
		// v2 added the terms bucket; rebuild postings from stored maps.
		return s.db.Update(func(tx *bbolt.Tx) error {
			terms, err := tx.CreateBucketIfNotExists(bucketTerms)
			if err != nil {
				return err
			}
			return tx.Bucket(bucketFreqs).ForEach(func(k, v []byte) error {
				var freq map[string]int
				if err := json.Unmarshal(v, &freq); err != nil {
					return err
				}
				for word, count := range freq {
					postings, err := readPostings(terms, word)
					if err != nil {
						return err
					}
					if hasPosting(postings, string(k)) {
						continue
					}
					postings = append(postings, domain.Posting{DocID: string(k), Count: count})
					if err := writePostings(terms, word, postings); err != nil {
						return err
					}
				}
				return nil
			})
		})
	default:
		return nil
	}
}

// Clear removes all documents, frequencies, postings and stats, keeping the
// schema info.
func (s *BoltStore) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range dataBuckets {
			if err := clearBucket(tx.Bucket(name), nil); err != nil {
				return err
			}
		}
		return clearBucket(tx.Bucket(bucketStats), func(k []byte) bool {
			return string(k) == string(keySchemaVersion) || string(k) == string(keyConfigHash)
		})
	})
}

// NeedsRebuild checks if the index needs a full rebuild due to config changes.
func (s *BoltStore) NeedsRebuild(cfg *config.Config) (bool, string, error) {
	result, err := s.CheckMigration(cfg)
	if err != nil {
		return false, "", err
	}
	return result.NeedsRebuild, result.Reason, nil
}

func hasPosting(postings []domain.Posting, docID string) bool {
	for _, p := range postings {
		if p.DocID == docID {
			return true
		}
	}
	return false
}

func clearBucket(b *bbolt.Bucket, keep func(k []byte) bool) error {
	var keys [][]byte
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		if keep != nil && keep(k) {
			continue
		}
		keys = append(keys, append([]byte(nil), k...))
	}
	for _, k := range keys {
		if err := b.Delete(k); err != nil {
			return err
		}
	}
	return nil
}
