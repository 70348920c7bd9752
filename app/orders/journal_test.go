package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adityakr/bazaari/app/models"
)

func lines() []models.CartLine {
	return []models.CartLine{
		{Product: models.Product{ID: 1, Name: "Kurta", Price: 12.99}, Quantity: 2},
		{Product: models.Product{ID: 2, Name: "Mojari", Price: 21.99}, Quantity: 1},
	}
}

func TestNewSnapshotsLines(t *testing.T) {
	in := lines()
	order := New(7, in, 47.97)

	// Mutating the source slice after the fact must not reach the order.
	in[0].Quantity = 99
	in[0].Product.Name = "changed"

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "Kurta", order.Items[0].Product.Name)
	assert.Equal(t, models.StatusProcessing, order.Status)
	assert.Equal(t, 7, order.UserID)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.Date.IsZero())
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(1, lines(), 10)
	b := New(1, lines(), 10)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestForUserNewestFirst(t *testing.T) {
	j := NewJournal()

	first := New(1, lines(), 10)
	first.Date = time.Now().Add(-2 * time.Hour)
	second := New(1, lines(), 20)
	second.Date = time.Now().Add(-1 * time.Hour)
	other := New(2, lines(), 30)

	j.Append(first)
	j.Append(other)
	j.Append(second)

	got := j.ForUser(1)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestForUserEmpty(t *testing.T) {
	j := NewJournal()
	assert.Empty(t, j.ForUser(42))
}

func TestFind(t *testing.T) {
	j := NewJournal()
	order := j.Place(1, lines(), 47.97)

	got, ok := j.Find(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, got.ID)

	_, ok = j.Find("missing")
	assert.False(t, ok)
}

func TestAdvanceStatus(t *testing.T) {
	j := NewJournal()
	order := j.Place(1, lines(), 10)

	got, err := j.AdvanceStatus(order.ID, models.StatusShipped)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, got.Status)

	got, err = j.AdvanceStatus(order.ID, models.StatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, got.Status)
}

func TestAdvanceStatusRejectsSkipsAndReversals(t *testing.T) {
	j := NewJournal()
	order := j.Place(1, lines(), 10)

	_, err := j.AdvanceStatus(order.ID, models.StatusDelivered)
	assert.ErrorIs(t, err, ErrBadTransition, "Processing cannot skip to Delivered")

	_, err = j.AdvanceStatus(order.ID, models.StatusProcessing)
	assert.ErrorIs(t, err, ErrBadTransition, "no self transition")

	_, err = j.AdvanceStatus("missing", models.StatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)

	// The failed attempts left the order untouched.
	got, ok := j.Find(order.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusProcessing, got.Status)
}

func TestStatusTransitionTable(t *testing.T) {
	assert.True(t, models.StatusProcessing.CanAdvanceTo(models.StatusShipped))
	assert.True(t, models.StatusShipped.CanAdvanceTo(models.StatusDelivered))
	assert.False(t, models.StatusShipped.CanAdvanceTo(models.StatusProcessing))
	assert.False(t, models.StatusDelivered.CanAdvanceTo(models.StatusShipped))
	assert.False(t, models.StatusProcessing.CanAdvanceTo("Bogus"))
}
