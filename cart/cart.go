// Package cart implements the client-side shopping cart: an ephemeral list
// of candidate line items accumulated before checkout. Prices and names are
// cached snapshots of the menu at the time the item was added; they are
// advisory only and the server recomputes the authoritative total when the
// cart is submitted as an order.
package cart

import "encoding/json"

// Item is one cart line, keyed by the menu item id it references.
type Item struct {
	MenuItemID string  `json:"menuItem"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image,omitempty"`
	Quantity   int     `json:"quantity"`
}

// Store persists the full cart snapshot after every mutation, the way the
// browser cart writes to local storage. Implementations may be lossy;
// concurrent writers are last-write-wins.
type Store interface {
	Save(snapshot []byte) error
	Load() ([]byte, error)
}

// Cart accumulates line items. Not safe for concurrent use; the browser
// cart it models is single-threaded.
type Cart struct {
	items []Item
	store Store

	// OnChange, when set, is called with the new item count after every
	// mutation. Drives the badge in the page header.
	OnChange func(count int)
}

// New returns an empty cart backed by store. A nil store disables
// persistence.
func New(store Store) *Cart {
	return &Cart{store: store}
}

// Load replaces the cart contents with the persisted snapshot. A missing or
// empty snapshot leaves the cart empty and is not an error.
func Load(store Store) (*Cart, error) {
	c := New(store)
	if store == nil {
		return c, nil
	}
	snapshot, err := store.Load()
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return c, nil
	}
	if err := json.Unmarshal(snapshot, &c.items); err != nil {
		return nil, err
	}
	return c, nil
}

// Add puts qty of item into the cart, merging with an existing line for the
// same menu item. A qty below 1 is treated as 1.
func (c *Cart) Add(item Item, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].MenuItemID == item.MenuItemID {
			c.items[i].Quantity += qty
			c.mutated()
			return
		}
	}
	item.Quantity = qty
	c.items = append(c.items, item)
	c.mutated()
}

// Remove deletes the line referencing menuItemID, if present.
func (c *Cart) Remove(menuItemID string) {
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.mutated()
			return
		}
	}
}

// SetQuantity sets the quantity of an existing line, removing it when qty
// drops to zero or below.
func (c *Cart) SetQuantity(menuItemID string, qty int) {
	if qty <= 0 {
		c.Remove(menuItemID)
		return
	}
	for i := range c.items {
		if c.items[i].MenuItemID == menuItemID {
			c.items[i].Quantity = qty
			c.mutated()
			return
		}
	}
}

// Total sums price × quantity over the cached line snapshots. Advisory: the
// server does not trust this number.
func (c *Cart) Total() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount is the badge number: the sum of all quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Clear empties the cart, as after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
	c.mutated()
}

func (c *Cart) mutated() {
	if c.store != nil {
		if snapshot, err := json.Marshal(c.items); err == nil {
			c.store.Save(snapshot)
		}
	}
	if c.OnChange != nil {
		c.OnChange(c.ItemCount())
	}
}
