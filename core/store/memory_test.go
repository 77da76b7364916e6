package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mirriamnjeri/rentals/core/entity"
)

func TestMemoryCollection(t *testing.T) {
	c := NewMemoryCollection[entity.User]()

	t.Run("get missing", func(t *testing.T) {
		_, ok, err := c.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("put then get round-trips", func(t *testing.T) {
		u := entity.User{ID: "u-1", Name: "Grace", Email: "g@example.com", Type: entity.UserLandlord}
		require.NoError(t, c.Put("u-1", u))
		got, ok, err := c.Get("u-1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, u, got)
	})

	t.Run("values come back in ascending key order", func(t *testing.T) {
		require.NoError(t, c.Put("u-3", entity.User{ID: "u-3"}))
		require.NoError(t, c.Put("u-2", entity.User{ID: "u-2"}))
		values, err := c.Values()
		require.NoError(t, err)
		require.Len(t, values, 3)
		assert.Equal(t, entity.UserID("u-1"), values[0].ID)
		assert.Equal(t, entity.UserID("u-2"), values[1].ID)
		assert.Equal(t, entity.UserID("u-3"), values[2].ID)
	})

	t.Run("remove reports prior existence", func(t *testing.T) {
		existed, err := c.Remove("u-2")
		require.NoError(t, err)
		assert.True(t, existed)
		existed, err = c.Remove("u-2")
		require.NoError(t, err)
		assert.False(t, existed)
	})
}
