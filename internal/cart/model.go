package cart

import (
	"strings"

	"adornia-be/internal/catalog"
)

// LineItem is one purchase intent. Price is snapshotted at add-time and is
// not re-fetched from the catalog.
type LineItem struct {
	ProductID string        `json:"productId"`
	Name      string        `json:"name"`
	Price     int64         `json:"price"`
	Image     catalog.Image `json:"image,omitempty"`
	Slug      string        `json:"slug,omitempty"`
	Size      string        `json:"size,omitempty"`
	Color     string        `json:"color,omitempty"`
	Quantity  int           `json:"quantity"`
}

// Key returns the composite identity used to deduplicate cart lines.
func (li LineItem) Key() string {
	return LineKey(li.ProductID, li.Size, li.Color)
}

// LineKey builds the (product, size, color) composite identity.
func LineKey(productID, size, color string) string {
	parts := []string{productID}
	if size != "" {
		parts = append(parts, "size:"+size)
	}
	if color != "" {
		parts = append(parts, "color:"+color)
	}
	return strings.Join(parts, "-")
}

// State is the full cart. TotalItems and TotalPrice are derived and
// recomputed on every transition, never patched incrementally.
type State struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice int64      `json:"totalPrice"`
}

func Empty() State {
	return State{Items: []LineItem{}}
}

func recompute(items []LineItem) State {
	s := State{Items: items}
	for _, li := range items {
		s.TotalItems += li.Quantity
		s.TotalPrice += li.Price * int64(li.Quantity)
	}
	return s
}
