package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/domain"
	"wordfreq/internal/logging"
	"wordfreq/internal/port"
)

// IndexUseCase builds and incrementally updates the corpus index.
type IndexUseCase struct {
	store    port.FrequencyStore
	walker   port.FileWalker
	source   port.TextSource
	analyzer *analyzer.Analyzer
	workers  int
	log      *zap.Logger
}

// NewIndexUseCase creates a new index use case. workers below one means one.
func NewIndexUseCase(
	store port.FrequencyStore,
	walker port.FileWalker,
	source port.TextSource,
	a *analyzer.Analyzer,
	workers int,
	log *zap.Logger,
) *IndexUseCase {
	if workers < 1 {
		workers = 1
	}
	return &IndexUseCase{
		store:    store,
		walker:   walker,
		source:   source,
		analyzer: a,
		workers:  workers,
		log:      logging.OrNop(log),
	}
}

// IndexResult contains the results of an indexing operation.
type IndexResult struct {
	FilesIndexed int
	FilesSkipped int
	FilesDeleted int
	WordsCounted int
	Errors       []string
}

// ProgressFunc is called after each analyzed file.
type ProgressFunc func(processed, total int, currentFile string)

type fileResult struct {
	file    port.FileInfo
	summary domain.Summary
	err     error
}

// Index indexes files under root. Unchanged files are skipped, changed files
// are analyzed concurrently and files that disappeared are removed.
func (u *IndexUseCase) Index(ctx context.Context, root string, progress ProgressFunc) (*IndexResult, error) {
	result := &IndexResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existingDocs, err := u.store.ListDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to list existing docs: %w", err)
	}
	existing := make(map[string]domain.Document, len(existingDocs))
	for _, doc := range existingDocs {
		existing[doc.Path] = doc
	}

	seenPaths := make(map[string]bool, len(files))
	var pending []port.FileInfo
	for _, file := range files {
		seenPaths[file.Path] = true
		if doc, ok := existing[file.Path]; ok && doc.ModTime.Unix() >= file.ModTime && doc.Size == file.Size {
			result.FilesSkipped++
			continue
		}
		pending = append(pending, file)
	}
	u.log.Info("scanned corpus",
		zap.String("root", root),
		zap.Int("files", len(files)),
		zap.Int("changed", len(pending)))

	processed := 0
	for res := range u.analyzeAll(ctx, pending) {
		processed++
		if progress != nil {
			progress(processed, len(pending), res.file.Path)
		}
		if res.err != nil {
			u.log.Warn("skipping file", zap.String("path", res.file.Path), zap.Error(res.err))
			result.Errors = append(result.Errors, fmt.Sprintf("failed to index %s: %v", res.file.Path, res.err))
			if doc, ok := existing[res.file.Path]; ok {
				if err := u.store.DeleteDocument(doc.ID); err != nil {
					result.Errors = append(result.Errors, fmt.Sprintf("failed to delete stale data for %s: %v", res.file.Path, err))
				}
			}
			continue
		}
		if err := u.storeFile(res); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to store %s: %v", res.file.Path, err))
			continue
		}
		result.FilesIndexed++
		result.WordsCounted += res.summary.TotalWords
	}
	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("indexing interrupted: %w", err)
	}

	for path, doc := range existing {
		if seenPaths[path] {
			continue
		}
		if err := u.store.DeleteDocument(doc.ID); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to delete %s: %v", path, err))
			continue
		}
		result.FilesDeleted++
	}

	stats, err := corpusStats(u.store)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return result, nil
}

// analyzeAll fans files out to the worker pool. The returned channel is
// closed once every worker has exited; after cancellation no new files are
// handed out but in-flight results are still delivered.
func (u *IndexUseCase) analyzeAll(ctx context.Context, files []port.FileInfo) <-chan fileResult {
	jobs := make(chan port.FileInfo)
	results := make(chan fileResult, u.workers)

	go func() {
		defer close(jobs)
		for _, file := range files {
			select {
			case jobs <- file:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	wg.Add(u.workers)
	for range u.workers {
		go func() {
			defer wg.Done()
			for file := range jobs {
				results <- u.analyzeFile(file)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

func (u *IndexUseCase) analyzeFile(file port.FileInfo) fileResult {
	text, err := u.source.ReadText(file.Path)
	if err != nil {
		return fileResult{file: file, err: err}
	}
	return fileResult{file: file, summary: u.analyzer.Analyze(text)}
}

func (u *IndexUseCase) storeFile(res fileResult) error {
	doc := domain.Document{
		ID:          generateDocID(res.file.Path),
		Path:        res.file.Path,
		ModTime:     time.Unix(res.file.ModTime, 0),
		Size:        res.file.Size,
		TotalWords:  res.summary.TotalWords,
		UniqueWords: res.summary.UniqueWords,
	}
	return u.store.PutDocument(doc, res.summary.Frequencies)
}

// generateDocID creates a unique ID for a document based on its path.
func generateDocID(path string) string {
	hash := sha256.Sum256([]byte(path))
	return hex.EncodeToString(hash[:8])
}
