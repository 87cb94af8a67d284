package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"wordfreq/internal/adapter/fs"
	"wordfreq/internal/adapter/memstore"
	"wordfreq/internal/domain"
)

func newIndexUseCase(t *testing.T, st *memstore.MemoryStore, workers int) *IndexUseCase {
	t.Helper()
	walker := fs.NewWalker([]string{"**/*.txt"}, nil)
	return NewIndexUseCase(st, walker, newTestReader(t), newTestAnalyzer(t), workers, nil)
}

func TestIndexUseCase_Index(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.txt":        "кот кот пёс",
		"b.txt":        "Кот и собака",
		"sub/c.txt":    "собака",
		"ignored.json": "кот",
	})

	st := memstore.NewMemoryStore()
	uc := newIndexUseCase(t, st, 3)

	var calls int
	result, err := uc.Index(context.Background(), root, func(processed, total int, _ string) {
		calls++
		require.Equal(t, calls, processed)
		require.Equal(t, 3, total)
	})
	require.NoError(t, err)
	require.Equal(t, 3, result.FilesIndexed)
	require.Equal(t, 0, result.FilesSkipped)
	require.Equal(t, 7, result.WordsCounted)
	require.Empty(t, result.Errors)
	require.Equal(t, 3, calls)

	stats, err := st.GetStats()
	require.NoError(t, err)
	require.Equal(t, domain.Stats{TotalDocs: 3, TotalWords: 7, UniqueWords: 4}, stats)

	postings, err := st.GetPostings("кот")
	require.NoError(t, err)
	require.Len(t, postings, 2)
}

func TestIndexUseCase_Incremental(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"a.txt": "one two",
		"b.txt": "three",
	})

	st := memstore.NewMemoryStore()
	uc := newIndexUseCase(t, st, 2)

	_, err := uc.Index(context.Background(), root, nil)
	require.NoError(t, err)

	result, err := uc.Index(context.Background(), root, nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.FilesIndexed)
	require.Equal(t, 2, result.FilesSkipped)

	// Rewrite a.txt with a later mtime and drop b.txt.
	aPath := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(aPath, []byte("four four four"), 0o644))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(aPath, later, later))
	require.NoError(t, os.Remove(filepath.Join(root, "b.txt")))

	result, err = uc.Index(context.Background(), root, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesIndexed)
	require.Equal(t, 1, result.FilesDeleted)

	stats, err := st.GetStats()
	require.NoError(t, err)
	require.Equal(t, domain.Stats{TotalDocs: 1, TotalWords: 3, UniqueWords: 1}, stats)

	postings, err := st.GetPostings("one")
	require.NoError(t, err)
	require.Empty(t, postings)
}

func TestIndexUseCase_DecodeErrorIsReported(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"good.txt": "fine text",
		"bad.txt":  string([]byte{0xff, 0xfe, 0xfd}),
	})

	st := memstore.NewMemoryStore()
	result, err := newIndexUseCase(t, st, 2).Index(context.Background(), root, nil)
	require.NoError(t, err)
	require.Equal(t, 1, result.FilesIndexed)
	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "bad.txt")
}

func TestIndexUseCase_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	files := make(map[string]string)
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		files[name+".txt"] = "word " + name
	}
	writeFiles(t, root, files)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := memstore.NewMemoryStore()
	result, err := newIndexUseCase(t, st, 2).Index(ctx, root, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	require.LessOrEqual(t, result.FilesIndexed, len(files))
}

func TestIndexUseCase_EmptyCorpus(t *testing.T) {
	defer goleak.VerifyNone(t)

	st := memstore.NewMemoryStore()
	result, err := newIndexUseCase(t, st, 4).Index(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	require.Zero(t, result.FilesIndexed)

	stats, err := st.GetStats()
	require.NoError(t, err)
	require.Zero(t, stats)
}

func TestGenerateDocID(t *testing.T) {
	require.Equal(t, generateDocID("/a/b.txt"), generateDocID("/a/b.txt"))
	require.NotEqual(t, generateDocID("/a/b.txt"), generateDocID("/a/c.txt"))
	require.Len(t, generateDocID("/a/b.txt"), 16)
}
