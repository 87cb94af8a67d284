package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"wordfreq/internal/adapter/analyzer"
	"wordfreq/internal/adapter/fs"
)

func newTestAnalyzer(t *testing.T) *analyzer.Analyzer {
	t.Helper()
	a, err := analyzer.NewAnalyzer(analyzer.DefaultOptions())
	require.NoError(t, err)
	return a
}

func newTestReader(t *testing.T) *fs.Reader {
	t.Helper()
	r, err := fs.NewReader("utf-8")
	require.NoError(t, err)
	return r
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}
