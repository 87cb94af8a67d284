package cli

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
	cfg, logger = nil, nil

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	writeFile(t, input, []byte("Привет, мир! Привет!!!\nЁж и еж.\n"))

	out, err := execute(t, "-d", dir, "stats", "--input", input, "--top", "2")
	require.NoError(t, err)

	assert.Contains(t, out, "Total words:  6\n")
	assert.Contains(t, out, "Unique words: 4\n")
	assert.Contains(t, out, "Top-2:\n  еж: 2\n  привет: 2\n")
}

func TestStats_InvalidTop(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	writeFile(t, input, []byte("a b c"))

	for _, top := range []string{"0", "-3"} {
		_, err := execute(t, "-d", dir, "stats", "--input", input, "--top", top)
		require.ErrorIs(t, err, ErrInvalidTop, "top=%s", top)
	}
}

func TestStats_Encoding(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cp1251.txt")
	// "Мир мир" in windows-1251.
	writeFile(t, input, []byte{0xCC, 0xE8, 0xF0, 0x20, 0xEC, 0xE8, 0xF0})

	out, err := execute(t, "-d", dir, "stats", "--input", input, "--encoding", "cp1251")
	require.NoError(t, err)
	assert.Contains(t, out, "мир: 2")

	_, err = execute(t, "-d", dir, "stats", "--input", input)
	require.Error(t, err)
}

func TestStats_CSVReport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	report := filepath.Join(dir, "report.csv")
	writeFile(t, input, []byte("b a c a b a d"))

	_, err := execute(t, "-d", dir, "stats", "--input", input, "--top", "2", "--out", report, "--all")
	require.NoError(t, err)

	f, err := os.Open(report)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"word", "count"},
		{"a", "3"},
		{"b", "2"},
		{"c", "1"},
		{"d", "1"},
	}, records)
}

func TestStats_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "-d", dir, "stats", "--input", filepath.Join(dir, "nope.txt"))
	require.Error(t, err)
}

func TestCat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "text.txt")
	writeFile(t, input, []byte("first\nsecond\n"))

	out, err := execute(t, "-d", dir, "cat", "--input", input)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", out)

	out, err = execute(t, "-d", dir, "cat", "--input", input, "-n")
	require.NoError(t, err)
	assert.Equal(t, "     1\tfirst\n     2\tsecond\n", out)
}

func TestIndexTopLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), []byte("кот кот пёс"))
	writeFile(t, filepath.Join(dir, "notes", "b.md"), []byte("Кот и пес"))

	out, err := execute(t, "-d", dir, "index")
	require.NoError(t, err)
	assert.Contains(t, out, "Files indexed:  2")
	assert.Contains(t, out, "Corpus:         2 docs, 6 words, 3 unique")

	out, err = execute(t, "-d", dir, "index")
	require.NoError(t, err)
	assert.Contains(t, out, "Files skipped:  2 (unchanged)")

	out, err = execute(t, "-d", dir, "top", "-n", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "кот")
	assert.Contains(t, lines[1], "пес")

	out, err = execute(t, "-d", dir, "top", "-n", "1", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"word":"кот","count":3}]`, out)

	out, err = execute(t, "-d", dir, "lookup", "КОТ")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], filepath.Join(dir, "a.txt")))
	assert.True(t, strings.HasSuffix(lines[1], filepath.Join(dir, "notes", "b.md")))
}

func TestTop_NoIndex(t *testing.T) {
	_, err := execute(t, "-d", t.TempDir(), "top")
	require.ErrorContains(t, err, "no index found")
}

func TestCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"stats", "cat", "index", "top", "lookup"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}
