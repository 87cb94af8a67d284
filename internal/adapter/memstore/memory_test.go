package memstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"wordfreq/internal/domain"
	"wordfreq/internal/port"
)

var _ port.FrequencyStore = (*MemoryStore)(nil)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.PutDocument(domain.Document{ID: "a", Path: "a.txt"}, map[string]int{"x": 2, "y": 1}))
	require.NoError(t, s.PutDocument(domain.Document{ID: "b", Path: "b.txt"}, map[string]int{"x": 1}))

	postings, err := s.GetPostings("x")
	require.NoError(t, err)
	require.Equal(t, []domain.Posting{{DocID: "a", Count: 2}, {DocID: "b", Count: 1}}, postings)

	require.NoError(t, s.PutDocument(domain.Document{ID: "a", Path: "a.txt"}, map[string]int{"z": 1}))
	postings, err = s.GetPostings("y")
	require.NoError(t, err)
	require.Empty(t, postings)

	require.NoError(t, s.DeleteDocument("b"))
	docs, err := s.ListDocuments()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	_, err = s.GetDocument("b")
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = s.GetFrequencies("b")
	require.ErrorIs(t, err, domain.ErrNotFound)

	freq, err := s.GetFrequencies("a")
	require.NoError(t, err)
	freq["z"] = 100
	again, err := s.GetFrequencies("a")
	require.NoError(t, err)
	require.Equal(t, 1, again["z"], "returned maps must be copies")
}
