package persistence

import (
	"context"
	"testing"

	"github.com/erp/labeler/internal/domain/labeling"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductLineStore_LoadEmpty(t *testing.T) {
	store := NewProductLineStore(t.TempDir())

	lines, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestProductLineStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewProductLineStore(t.TempDir())

	in := []labeling.ProductLine{{Name: "Axles"}, {Name: "Cabs"}}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestProductLineStore_SaveReplacesAndDedups(t *testing.T) {
	ctx := context.Background()
	store := NewProductLineStore(t.TempDir())

	require.NoError(t, store.Save(ctx, []labeling.ProductLine{{Name: "Old"}}))
	require.NoError(t, store.Save(ctx, []labeling.ProductLine{
		{Name: "B"}, {Name: " A "}, {Name: "B"}, {Name: ""},
	}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []labeling.ProductLine{{Name: "B"}, {Name: "A"}}, out)
}

func TestProductLineStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewProductLineStore(t.TempDir())

	assert.ErrorIs(t, store.Save(ctx, nil), context.Canceled)
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
