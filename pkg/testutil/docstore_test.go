package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/samplefinder/backend/pkg/docstore"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func Test_MockStore_Queries(t *testing.T) {
	ctx := context.Background()
	store := NewMockStore()
	store.Seed("items", "a", map[string]any{"rank": 2, "tags": []any{"red"}})
	store.Seed("items", "b", map[string]any{"rank": 1, "tags": []any{"blue"}})
	store.Seed("items", "c", map[string]any{"rank": 3, "tags": []any{"red", "blue"}})

	t.Run("insertion order without an explicit order", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "items")
		require.NoError(t, err)
		require.Len(t, docs, 3)
		require.Equal(t, "a", docs[0].ID)
		require.Equal(t, "b", docs[1].ID)
		require.Equal(t, "c", docs[2].ID)
	})

	t.Run("ordering and windowing", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "items",
			docstore.OrderAsc("rank"),
			docstore.Offset(1),
			docstore.Limit(1),
		)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		require.Equal(t, "a", docs[0].ID)
	})

	t.Run("contains matches any listed value", func(t *testing.T) {
		docs, err := store.ListDocuments(ctx, "items", docstore.Contains("tags", "red"))
		require.NoError(t, err)
		require.Len(t, docs, 2)
	})
}

func Test_MockStore_ConcurrentAccess(t *testing.T) {
	// Domains list several collections from errgroup goroutines; the mock must
	// hold up under the same concurrency.
	ctx := context.Background()
	store := NewMockStore()
	for i := 0; i < 10; i++ {
		store.Seed("items", fmt.Sprintf("seed%d", i), map[string]any{"rank": i})
	}

	eg := errgroup.Group{}
	for worker := 0; worker < 8; worker++ {
		worker := worker
		eg.Go(func() error {
			for i := 0; i < 50; i++ {
				if _, err := store.ListDocuments(ctx, "items", docstore.OrderAsc("rank")); err != nil {
					return err
				}

				id := fmt.Sprintf("w%d-%d", worker, i)
				if _, err := store.CreateDocument(ctx, "scratch", id, map[string]any{"rank": i}); err != nil {
					return err
				}

				if _, err := store.GetDocument(ctx, "scratch", id); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	docs, err := store.ListDocuments(ctx, "scratch")
	require.NoError(t, err)
	require.Len(t, docs, 8*50)
}
