package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/book"
)

func TestGenerateShape(t *testing.T) {
	w, err := Generate(DefaultConfig(9999, 42))
	require.NoError(t, err)

	assert.Len(t, w.Adds, 9999)
	assert.Len(t, w.Modifies, 4999)
	assert.Len(t, w.Deletes, 3333)

	for i, add := range w.Adds {
		require.Equal(t, book.OrderID(i+1), add.ID)
		require.GreaterOrEqual(t, add.Price, book.Price(1000))
		require.LessOrEqual(t, add.Price, book.Price(2000))
		require.GreaterOrEqual(t, add.Volume, book.Volume(1))
		require.LessOrEqual(t, add.Volume, book.Volume(100))
	}
	for i, mod := range w.Modifies {
		require.Equal(t, book.OrderID(i+1), mod.ID)
		require.Positive(t, mod.Volume)
	}
	for i, id := range w.Deletes {
		require.Equal(t, book.OrderID(i+1), id)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(DefaultConfig(500, 7))
	require.NoError(t, err)
	b, err := Generate(DefaultConfig(500, 7))
	require.NoError(t, err)

	assert.Equal(t, a, b)

	c, err := Generate(DefaultConfig(500, 8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Adds, c.Adds)
}

func TestGenerateBothSides(t *testing.T) {
	w, err := Generate(DefaultConfig(1000, 1))
	require.NoError(t, err)

	var bids, asks int
	for _, add := range w.Adds {
		if add.Side == book.Bid {
			bids++
		} else {
			asks++
		}
	}
	assert.Positive(t, bids)
	assert.Positive(t, asks)
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	_, err := Generate(Config{Orders: 0})
	assert.Error(t, err)

	cfg := DefaultConfig(10, 1)
	cfg.PriceMin, cfg.PriceMax = cfg.PriceMax, cfg.PriceMin
	_, err = Generate(cfg)
	assert.Error(t, err)

	cfg = DefaultConfig(10, 1)
	cfg.VolumeMin = 0
	_, err = Generate(cfg)
	assert.Error(t, err)
}
