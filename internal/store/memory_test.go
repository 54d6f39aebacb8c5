package store_test

import (
	"context"
	"testing"

	"github.com/pagepulse/pagepulse/internal/store"
	"github.com/pagepulse/pagepulse/internal/tracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Append(t *testing.T) {
	t.Run("preserves insertion order", func(t *testing.T) {
		s := store.NewMemoryStore()

		for i := int64(1); i <= 5; i++ {
			err := s.Append(context.Background(), tracking.Event{Timestamp: i})
			require.NoError(t, err)
		}

		events, err := s.All(context.Background())

		require.NoError(t, err)
		require.Len(t, events, 5)

		for i, event := range events {
			assert.Equal(t, int64(i+1), event.Timestamp)
		}
	})

	t.Run("stamps missing timestamps with current time", func(t *testing.T) {
		s := store.NewMemoryStore()

		err := s.Append(context.Background(), tracking.Event{Path: "/"})
		require.NoError(t, err)

		events, err := s.All(context.Background())

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Positive(t, events[0].Timestamp)
	})

	t.Run("drops oldest events past the retention cap", func(t *testing.T) {
		s := store.NewMemoryStore()

		extra := 10
		for i := 0; i < tracking.MaxEvents+extra; i++ {
			err := s.Append(context.Background(), tracking.Event{Timestamp: int64(i + 1)})
			require.NoError(t, err)
		}

		events, err := s.All(context.Background())

		require.NoError(t, err)
		require.Len(t, events, tracking.MaxEvents)
		// Sliding window: the first `extra` events are gone
		assert.Equal(t, int64(extra+1), events[0].Timestamp)
		assert.Equal(t, int64(tracking.MaxEvents+extra), events[len(events)-1].Timestamp)
	})
}

func TestMemoryStore_All(t *testing.T) {
	t.Run("returns empty slice for a fresh store", func(t *testing.T) {
		s := store.NewMemoryStore()

		events, err := s.All(context.Background())

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("returns a copy callers cannot mutate", func(t *testing.T) {
		s := store.NewMemoryStore()
		_ = s.Append(context.Background(), tracking.Event{Timestamp: 1, Path: "/a"})

		events, err := s.All(context.Background())
		require.NoError(t, err)

		events[0].Path = "/mutated"

		fresh, err := s.All(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/a", fresh[0].Path)
	})
}
