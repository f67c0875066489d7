//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMongoDB_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("collections are wired", func(t *testing.T) {
		assert.Equal(t, "batches", db.Batches.Name())
		assert.Equal(t, "packs", db.Packs.Name())
		assert.Equal(t, "system_settings", db.SystemSettings.Name())
		assert.Equal(t, "counters", db.Counters.Name())
	})

	t.Run("indexes are created", func(t *testing.T) {
		cursor, err := db.Packs.Indexes().List(ctx)
		require.NoError(t, err)

		var indexes []struct {
			Name string `bson:"name"`
		}
		require.NoError(t, cursor.All(ctx, &indexes))
		// _id index plus the three pack indexes.
		assert.GreaterOrEqual(t, len(indexes), 4)
	})

	t.Run("invalid URI fails", func(t *testing.T) {
		_, err := NewMongoDB("mongodb://127.0.0.1:1", "batch_service_test")
		assert.Error(t, err)
	})
}

func TestNextSequence_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	t.Run("starts at one and increments", func(t *testing.T) {
		first, err := db.NextSequence(ctx, "test_seq")
		require.NoError(t, err)
		assert.Equal(t, int64(1), first)

		second, err := db.NextSequence(ctx, "test_seq")
		require.NoError(t, err)
		assert.Equal(t, int64(2), second)
	})

	t.Run("counters are independent", func(t *testing.T) {
		other, err := db.NextSequence(ctx, "other_seq")
		require.NoError(t, err)
		assert.Equal(t, int64(1), other)
	})

	t.Run("concurrent increments never collide", func(t *testing.T) {
		const n = 20
		results := make(chan int64, n)
		for i := 0; i < n; i++ {
			go func() {
				v, err := db.NextSequence(ctx, "concurrent_seq")
				assert.NoError(t, err)
				results <- v
			}()
		}

		seen := make(map[int64]bool, n)
		for i := 0; i < n; i++ {
			v := <-results
			assert.False(t, seen[v], "duplicate sequence value %d", v)
			seen[v] = true
		}
	})
}
