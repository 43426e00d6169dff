package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func lineFixture(id, size, color string, qty int) LineItem {
	return LineItem{
		ProductID: id,
		Name:      "Ankara Two-Piece",
		Price:     45000,
		Slug:      "ankara-two-piece",
		Size:      size,
		Color:     color,
		Quantity:  qty,
	}
}

func TestAdd_NewLine(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 2))

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.TotalItems)
	assert.Equal(t, int64(90000), s.TotalPrice)
}

func TestAdd_MergesSameVariant(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 1))
	s = Add(s, lineFixture("p1", "M", "Red", 3))

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 4, s.Items[0].Quantity)
	assert.Equal(t, 4, s.TotalItems)
}

func TestAdd_DifferentColorIsDistinctLine(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 1))
	s = Add(s, lineFixture("p1", "M", "Blue", 1))

	assert.Len(t, s.Items, 2)
	assert.Equal(t, 2, s.TotalItems)
}

func TestAdd_DifferentSizeIsDistinctLine(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 1))
	s = Add(s, lineFixture("p1", "L", "Red", 1))

	assert.Len(t, s.Items, 2)
}

func TestAdd_ColorlessLineMerges(t *testing.T) {
	// Accessories carry no color dimension. Two adds of the same size must
	// land on the same line.
	s := Add(Empty(), lineFixture("scarf", "One Size", "", 1))
	s = Add(s, lineFixture("scarf", "One Size", "", 2))

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 3, s.Items[0].Quantity)
}

func TestRemove(t *testing.T) {
	item := lineFixture("p1", "M", "Red", 2)
	s := Add(Empty(), item)
	s = Remove(s, item.Key())

	assert.Empty(t, s.Items)
	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, int64(0), s.TotalPrice)
}

func TestRemove_UnknownKeyIsNoOp(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 2))
	s = Remove(s, "missing-size:M")

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.TotalItems)
}

func TestUpdateQuantity(t *testing.T) {
	item := lineFixture("p1", "M", "Red", 2)
	s := Add(Empty(), item)
	s = UpdateQuantity(s, item.Key(), 7)

	assert.Equal(t, 7, s.Items[0].Quantity)
	assert.Equal(t, 7, s.TotalItems)
	assert.Equal(t, int64(45000*7), s.TotalPrice)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	item := lineFixture("p1", "M", "Red", 2)
	s := Add(Empty(), item)

	zeroed := UpdateQuantity(s, item.Key(), 0)
	removed := Remove(s, item.Key())

	assert.Equal(t, removed, zeroed)
	assert.Empty(t, zeroed.Items)
}

func TestUpdateQuantity_NegativeRemovesLine(t *testing.T) {
	item := lineFixture("p1", "M", "Red", 2)
	s := UpdateQuantity(Add(Empty(), item), item.Key(), -3)

	assert.Empty(t, s.Items)
}

func TestClear(t *testing.T) {
	s := Add(Empty(), lineFixture("p1", "M", "Red", 2))
	s = Add(s, lineFixture("p2", "L", "Green", 1))

	cleared := Clear(s)

	assert.Empty(t, cleared.Items)
	assert.Equal(t, 0, cleared.TotalItems)
	assert.Equal(t, int64(0), cleared.TotalPrice)
}

func TestLoad_NilItems(t *testing.T) {
	s := Load(nil)

	assert.NotNil(t, s.Items)
	assert.Empty(t, s.Items)
}

func TestLoad_RecomputesAggregates(t *testing.T) {
	s := Load([]LineItem{
		lineFixture("p1", "M", "Red", 2),
		lineFixture("p2", "L", "", 3),
	})

	assert.Equal(t, 5, s.TotalItems)
	assert.Equal(t, int64(45000*5), s.TotalPrice)
}

func TestAggregates_NeverDriftAcrossOperations(t *testing.T) {
	s := Empty()
	s = Add(s, lineFixture("p1", "M", "Red", 2))
	s = Add(s, lineFixture("p2", "L", "Blue", 1))
	s = Add(s, lineFixture("p1", "M", "Red", 1))
	s = UpdateQuantity(s, LineKey("p2", "L", "Blue"), 4)
	s = Remove(s, LineKey("p1", "M", "Red"))

	var wantItems int
	var wantPrice int64
	for _, it := range s.Items {
		wantItems += it.Quantity
		wantPrice += it.Price * int64(it.Quantity)
	}
	assert.Equal(t, wantItems, s.TotalItems)
	assert.Equal(t, wantPrice, s.TotalPrice)
}

func TestLineKey(t *testing.T) {
	assert.Equal(t, "p1-size:M-color:Red", LineKey("p1", "M", "Red"))
	assert.Equal(t, "p1-size:M", LineKey("p1", "M", ""))
}
