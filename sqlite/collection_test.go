package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/store"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rentals.db")
	db, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func sampleProperty(id string) entity.Property {
	return entity.Property{
		ID:         entity.PropertyID(id),
		LandlordID: "u-1",
		Title:      "Two-bedroom apartment",
		Status:     entity.PropertyAvailable,
		Location:   entity.Location{Address: "14 Rose Ave", City: "Austin"},
		Specs:      entity.Specifications{Bedrooms: 2, Bathrooms: 1, Furnished: true},
		Rent:       entity.Rent{Monthly: 1500, Deposit: 1500, Currency: "USD"},
		Amenities:  []string{"parking"},
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)
	c := NewCollection[entity.Property](db, store.CollectionProperties)

	p := sampleProperty("p-1")
	require.NoError(t, c.Put("p-1", p))

	got, ok, err := c.Get("p-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p, got, "nested sub-structures survive the round trip")
}

func TestCollectionGetMissing(t *testing.T) {
	db, _ := openTestDB(t)
	c := NewCollection[entity.Property](db, store.CollectionProperties)

	_, ok, err := c.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectionUpsert(t *testing.T) {
	db, _ := openTestDB(t)
	c := NewCollection[entity.Property](db, store.CollectionProperties)

	p := sampleProperty("p-1")
	require.NoError(t, c.Put("p-1", p))

	p.Title = "Renovated two-bedroom"
	require.NoError(t, c.Put("p-1", p), "second put with the same key overwrites without error")

	got, ok, err := c.Get("p-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Renovated two-bedroom", got.Title)

	values, err := c.Values()
	require.NoError(t, err)
	assert.Len(t, values, 1)
}

func TestCollectionValuesOrder(t *testing.T) {
	db, _ := openTestDB(t)
	c := NewCollection[entity.Property](db, store.CollectionProperties)

	for _, id := range []string{"p-3", "p-1", "p-2"} {
		require.NoError(t, c.Put(id, sampleProperty(id)))
	}

	values, err := c.Values()
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, entity.PropertyID("p-1"), values[0].ID)
	assert.Equal(t, entity.PropertyID("p-2"), values[1].ID)
	assert.Equal(t, entity.PropertyID("p-3"), values[2].ID)
}

func TestCollectionRemove(t *testing.T) {
	db, _ := openTestDB(t)
	c := NewCollection[entity.Property](db, store.CollectionProperties)

	require.NoError(t, c.Put("p-1", sampleProperty("p-1")))

	existed, err := c.Remove("p-1")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = c.Remove("p-1")
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestCollectionsAreIndependent(t *testing.T) {
	db, _ := openTestDB(t)
	properties := NewCollection[entity.Property](db, store.CollectionProperties)
	users := NewCollection[entity.User](db, store.CollectionUsers)

	require.NoError(t, properties.Put("k", sampleProperty("k")))

	_, ok, err := users.Get("k")
	require.NoError(t, err)
	assert.False(t, ok, "keys are scoped to their collection")
}

func TestDurabilityAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rentals.db")
	db, err := Open(path, nil)
	require.NoError(t, err)

	p := sampleProperty("p-1")
	require.NoError(t, NewCollection[entity.Property](db, store.CollectionProperties).Put("p-1", p))
	require.NoError(t, db.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer reopened.Close()

	got, ok, err := NewCollection[entity.Property](reopened, store.CollectionProperties).Get("p-1")
	require.NoError(t, err)
	require.True(t, ok, "a committed put survives restart")
	assert.Equal(t, p, got)
}

func TestStoreOverSqlite(t *testing.T) {
	db, _ := openTestDB(t)
	s, err := store.New(db.Collections(), nil)
	require.NoError(t, err)

	landlord, err := s.CreateUser(store.NewUser{Name: "Grace", Email: "grace@example.com", Type: entity.UserLandlord})
	require.NoError(t, err)

	p, err := s.CreateProperty(store.NewProperty{
		LandlordID: landlord.ID,
		Title:      "Two-bedroom apartment",
		Rent:       entity.Rent{Monthly: 1500},
	})
	require.NoError(t, err)

	got, err := s.PropertyByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Title, got.Title)
}
