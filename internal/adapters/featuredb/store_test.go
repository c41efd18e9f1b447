package featuredb_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/core/domain"
)

const dbContent = `[
  {"location": {"latitude": 409146138, "longitude": -746188906}, "name": "Berkshire Valley Road, Jefferson, NJ"},
  {"location": {"latitude": 408122808, "longitude": -743999179}, "name": "101 New Jersey 10, Whippany, NJ"},
  {"location": {"latitude": 416802456, "longitude": -742370183}, "name": ""}
]`

func writeDB(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "route_guide_db.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	store, err := featuredb.Load(writeDB(t, dbContent), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	assert.NotEmpty(t, store.Digest())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := featuredb.Load(writeDB(t, `{"not": "an array"}`), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeatureDBParse), "got: %v", err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := featuredb.Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	require.Error(t, err)
}

func TestLookup(t *testing.T) {
	store, err := featuredb.Load(writeDB(t, dbContent), nil)
	require.NoError(t, err)

	f, ok := store.Lookup(domain.Point{Latitude: 409146138, Longitude: -746188906})
	require.True(t, ok)
	assert.Equal(t, "Berkshire Valley Road, Jefferson, NJ", f.Name.String())
	assert.True(t, f.Named())

	// Known location with an empty name: found, but unnamed.
	f, ok = store.Lookup(domain.Point{Latitude: 416802456, Longitude: -742370183})
	require.True(t, ok)
	assert.False(t, f.Named())

	_, ok = store.Lookup(domain.Point{Latitude: 1, Longitude: 1})
	assert.False(t, ok)
}

func TestWithin(t *testing.T) {
	store, err := featuredb.Load(writeDB(t, dbContent), nil)
	require.NoError(t, err)

	got := store.Within(domain.Rectangle{
		Lo: domain.Point{Latitude: 400000000, Longitude: -750000000},
		Hi: domain.Point{Latitude: 420000000, Longitude: -730000000},
	})
	// All three fixtures sit inside the classic query rectangle, in database
	// order.
	require.Len(t, got, 3)
	assert.Equal(t, "Berkshire Valley Road, Jefferson, NJ", got[0].Name.String())

	got = store.Within(domain.Rectangle{
		Lo: domain.Point{Latitude: 0, Longitude: 0},
		Hi: domain.Point{Latitude: 1, Longitude: 1},
	})
	assert.Empty(t, got)
}

func TestRandom(t *testing.T) {
	store, err := featuredb.Load(writeDB(t, dbContent), nil)
	require.NoError(t, err)

	for range 20 {
		p, err := store.Random()
		require.NoError(t, err)
		_, ok := store.Lookup(p)
		assert.True(t, ok, "random point must come from the database")
	}
}

func TestRandom_Empty(t *testing.T) {
	store, err := featuredb.Load(writeDB(t, `[]`), nil)
	require.NoError(t, err)

	_, err = store.Random()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFeatureDBEmpty), "got: %v", err)
}
