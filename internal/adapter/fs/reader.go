package fs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var (
	ErrNotFound        = errors.New("file not found")
	ErrDecode          = errors.New("cannot decode file")
	ErrUnknownEncoding = errors.New("unknown encoding")
)

const defaultEncodingName = "utf-8"

// Reader reads files and decodes them from a named character encoding.
type Reader struct {
	name string
	enc  encoding.Encoding
}

// NewReader resolves an encoding label such as "utf-8", "cp1251" or
// "koi8-r". An empty label means UTF-8.
func NewReader(label string) (*Reader, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = defaultEncodingName
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return &Reader{name: name, enc: enc}, nil
}

// Encoding returns the canonical name of the reader's encoding.
func (r *Reader) Encoding() string {
	return r.name
}

// ReadText returns the decoded contents of path.
func (r *Reader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	return r.Decode(data)
}

// Decode converts raw bytes to a string. UTF-8 input must be valid; the
// x/text UTF-8 decoder would silently substitute U+FFFD instead.
func (r *Reader) Decode(data []byte) (string, error) {
	if r.name == defaultEncodingName {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid %s", ErrDecode, r.name)
		}
		return string(data), nil
	}
	out, err := r.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrDecode, r.name, err)
	}
	return string(out), nil
}
