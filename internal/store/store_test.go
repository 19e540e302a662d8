package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runger/parcel/internal/entry"
)

func testStore() *Store {
	return Build(map[string][]string{
		"work": {"slack", "https://mail.example.com", "~/notes"},
		"home": {"spotify"},
	}, entry.Classifier{Home: "/home/alice"})
}

func TestLookupPreservesEntryOrder(t *testing.T) {
	s := testStore()

	entries, err := s.Lookup("work")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, entry.KindApp, entries[0].Kind)
	assert.Equal(t, "slack", entries[0].Value)
	assert.Equal(t, entry.KindURL, entries[1].Kind)
	assert.Equal(t, entry.KindFile, entries[2].Kind)
	assert.Equal(t, "/home/alice/notes", entries[2].Value)
}

func TestLookupUnknownListsEveryName(t *testing.T) {
	s := testStore()

	_, err := s.Lookup("gym")
	require.Error(t, err)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "gym", nf.Name)

	// The message must name every defined parcel, not just say "not found".
	assert.Contains(t, err.Error(), "work")
	assert.Contains(t, err.Error(), "home")
}

func TestNamesSorted(t *testing.T) {
	s := testStore()
	assert.Equal(t, []string{"home", "work"}, s.Names())
	assert.Equal(t, 2, s.Len())
}

func TestEmptyStore(t *testing.T) {
	s := Build(nil, entry.Classifier{})
	assert.Equal(t, 0, s.Len())

	_, err := s.Lookup("anything")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Contains(t, err.Error(), "no parcels are defined")
}
