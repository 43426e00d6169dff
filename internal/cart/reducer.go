package cart

// The transitions below are pure: they never touch storage or the network,
// and each one returns a fully recomputed State.

// Add merges the incoming line into an existing one sharing its composite
// key, otherwise appends it. No stock cap is applied here; capping against
// available stock is the caller's policy.
func Add(s State, item LineItem) State {
	key := item.Key()

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)

	merged := false
	for i, existing := range items {
		if existing.Key() == key {
			existing.Quantity += item.Quantity
			items[i] = existing
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	return recompute(items)
}

// Remove drops the line with the given composite key.
func Remove(s State, key string) State {
	items := make([]LineItem, 0, len(s.Items))
	for _, li := range s.Items {
		if li.Key() != key {
			items = append(items, li)
		}
	}
	return recompute(items)
}

// UpdateQuantity sets a line's quantity. Zero or negative means removal,
// never a zero-quantity line.
func UpdateQuantity(s State, key string, quantity int) State {
	if quantity <= 0 {
		return Remove(s, key)
	}

	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	for i, li := range items {
		if li.Key() == key {
			li.Quantity = quantity
			items[i] = li
		}
	}
	return recompute(items)
}

// Clear resets to an empty cart.
func Clear(State) State {
	return Empty()
}

// Load replaces the collection wholesale. Used once at rehydration.
func Load(items []LineItem) State {
	if items == nil {
		items = []LineItem{}
	}
	return recompute(items)
}
