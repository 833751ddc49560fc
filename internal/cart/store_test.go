package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddDeduplicatesByID(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)

	require.NoError(t, s.Add(ctx, Line{ID: "a", Name: "Sabun", Price: 10_000}, 1))
	require.NoError(t, s.Add(ctx, Line{ID: "a", Name: "Sabun", Price: 10_000}, 2))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 3, s.TotalCount())
}

func TestStore_PriceFrozenAtFirstAdd(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)

	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 10_000}, 1))
	// A later add at a different resolved price must not re-price the line.
	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 8_000}, 1))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(10_000), lines[0].Price)
	assert.Equal(t, int64(20_000), s.TotalPrice())
}

func TestStore_AddClampsQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)

	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 1}, 0))
	assert.Equal(t, 1, s.TotalCount())
}

func TestStore_SetQuantityClampsToOne(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)
	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 1}, 5))

	require.NoError(t, s.SetQuantity(ctx, "a", 0))
	assert.Equal(t, 1, s.Lines()[0].Quantity)

	require.NoError(t, s.SetQuantity(ctx, "a", -3))
	assert.Equal(t, 1, s.Lines()[0].Quantity)

	// Unknown id is a no-op.
	require.NoError(t, s.SetQuantity(ctx, "ghost", 7))
	assert.Equal(t, 1, s.DistinctCount())
}

func TestStore_RemoveAbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)
	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 1}, 1))

	require.NoError(t, s.Remove(ctx, "ghost"))
	assert.Equal(t, 1, s.DistinctCount())

	require.NoError(t, s.Remove(ctx, "a"))
	assert.Zero(t, s.DistinctCount())
}

func TestStore_Totals(t *testing.T) {
	ctx := context.Background()
	s := NewStore(ctx, nil)
	require.NoError(t, s.Add(ctx, Line{ID: "a", Price: 10_000}, 2))
	require.NoError(t, s.Add(ctx, Line{ID: "b", Price: 2_500}, 4))

	assert.Equal(t, 6, s.TotalCount())
	assert.Equal(t, int64(30_000), s.TotalPrice())

	require.NoError(t, s.Clear(ctx))
	assert.Zero(t, s.TotalCount())
	assert.Zero(t, s.TotalPrice())
}

func TestStore_PersistsEveryMutation(t *testing.T) {
	ctx := context.Background()
	p := &MemoryPersister{}
	s := NewStore(ctx, p)

	require.NoError(t, s.Add(ctx, Line{ID: "a", Name: "Sabun", Price: 10_000}, 2))

	// A second store over the same blob sees the same lines.
	restored := NewStore(ctx, p)
	lines := restored.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Sabun", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestStore_MalformedBlobDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	p := &MemoryPersister{Blob: []byte("{not json")}

	s := NewStore(ctx, p)
	assert.Empty(t, s.Lines())
	assert.Zero(t, s.TotalCount())
}
