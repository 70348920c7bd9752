package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
)

var (
	chai  = models.Product{ID: 1, Name: "Ceramic Chai Set", Price: 10}
	tawa  = models.Product{ID: 2, Name: "Cast Iron Tawa", Price: 20}
	lamp  = models.Product{ID: 3, Name: "Brass Table Lamp", Price: 35}
)

func TestAddNewLines(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 1))
	require.NoError(t, l.Add(tawa, 2))

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Product.ID, "lines keep insertion order")
	assert.Equal(t, 2, lines[1].Product.ID)
	assert.Equal(t, 3, l.ItemCount())
}

func TestAddExistingProductIncrementsQuantity(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 2))
	require.NoError(t, l.Add(chai, 3))

	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	l := New()
	assert.ErrorIs(t, l.Add(chai, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, l.Add(chai, -2), ErrInvalidQuantity)
	assert.Empty(t, l.Lines())
}

func TestUpdateQuantity(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 1))
	require.NoError(t, l.Add(tawa, 1))

	l.UpdateQuantity(chai.ID, 4)
	assert.Equal(t, 4, l.Lines()[0].Quantity)

	// Zero or negative removes the line instead of keeping a dead entry.
	l.UpdateQuantity(chai.ID, 0)
	lines := l.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, tawa.ID, lines[0].Product.ID)

	// Updating an absent product is a no-op.
	l.UpdateQuantity(99, 3)
	assert.Len(t, l.Lines(), 1)
}

func TestRemoveIsIdempotent(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 1))

	l.Remove(chai.ID)
	l.Remove(chai.ID)
	l.Remove(42)
	assert.Empty(t, l.Lines())
}

func TestClear(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 2))
	require.NoError(t, l.Add(lamp, 1))

	l.Clear()
	assert.Empty(t, l.Lines())
	assert.Zero(t, l.ItemCount())
	assert.Zero(t, l.Subtotal())
}

func TestSubtotal(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 2)) // 20
	require.NoError(t, l.Add(tawa, 1)) // 20
	require.NoError(t, l.Add(lamp, 3)) // 105

	assert.InDelta(t, 145.0, l.Subtotal(), 1e-9)
}

func TestLinesReturnsCopy(t *testing.T) {
	l := New()
	require.NoError(t, l.Add(chai, 1))

	lines := l.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, l.Lines()[0].Quantity, "callers cannot mutate the ledger through the snapshot")
}
