package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReader_UTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Привет, мир"), 0o644))

	r, err := NewReader("")
	require.NoError(t, err)
	require.Equal(t, "utf-8", r.Encoding())

	text, err := r.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "Привет, мир", text)
}

func TestReader_CP1251(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	// "привет" in windows-1251
	require.NoError(t, os.WriteFile(path, []byte{0xEF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}, 0o644))

	r, err := NewReader("cp1251")
	require.NoError(t, err)
	require.Equal(t, "windows-1251", r.Encoding())

	text, err := r.ReadText(path)
	require.NoError(t, err)
	require.Equal(t, "привет", text)
}

func TestReader_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xEF, 0xF0, 0xE8}, 0o644))

	r, err := NewReader("utf-8")
	require.NoError(t, err)

	_, err = r.ReadText(path)
	require.ErrorIs(t, err, ErrDecode)
}

func TestReader_NotFound(t *testing.T) {
	r, err := NewReader("utf-8")
	require.NoError(t, err)

	_, err = r.ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewReader_UnknownEncoding(t *testing.T) {
	_, err := NewReader("no-such-encoding")
	require.ErrorIs(t, err, ErrUnknownEncoding)
}
