// Package wishlist holds the saved-for-later collection: an idempotent set
// keyed by bare product identity, with no variant dimension.
package wishlist

import (
	"time"

	"adornia-be/internal/catalog"
)

// Entry snapshots the product at the moment it was saved.
type Entry struct {
	ProductID     string        `json:"productId"`
	Name          string        `json:"name"`
	Price         int64         `json:"price"`
	DiscountPrice *int64        `json:"discountPrice,omitempty"`
	Image         catalog.Image `json:"image,omitempty"`
	Slug          string        `json:"slug,omitempty"`
	InStock       bool          `json:"inStock"`
	AddedAt       time.Time     `json:"addedAt"`
}

type State struct {
	Items      []Entry `json:"items"`
	TotalItems int     `json:"totalItems"`
}

func Empty() State {
	return State{Items: []Entry{}}
}

// Add is a no-op when the product is already present. New entries are
// prepended so the most recently saved item lists first.
func Add(s State, entry Entry) State {
	if Contains(s, entry.ProductID) {
		return s
	}
	if entry.AddedAt.IsZero() {
		entry.AddedAt = time.Now().UTC()
	}

	items := make([]Entry, 0, len(s.Items)+1)
	items = append(items, entry)
	items = append(items, s.Items...)
	return State{Items: items, TotalItems: len(items)}
}

func Remove(s State, productID string) State {
	items := make([]Entry, 0, len(s.Items))
	for _, e := range s.Items {
		if e.ProductID != productID {
			items = append(items, e)
		}
	}
	return State{Items: items, TotalItems: len(items)}
}

// Toggle removes the product if present, otherwise adds it.
func Toggle(s State, entry Entry) State {
	if Contains(s, entry.ProductID) {
		return Remove(s, entry.ProductID)
	}
	return Add(s, entry)
}

func Clear(State) State {
	return Empty()
}

func Load(items []Entry) State {
	if items == nil {
		items = []Entry{}
	}
	return State{Items: items, TotalItems: len(items)}
}

func Contains(s State, productID string) bool {
	for _, e := range s.Items {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}
