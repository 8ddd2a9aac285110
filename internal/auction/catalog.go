package auction

import (
	"fmt"
	"sort"
	"sync"

	"collectibles-auction/internal/auctionerrors"
)

// PriceFilter restricts List results by current price. Nil bounds are open.
type PriceFilter struct {
	MinPrice *float64
	MaxPrice *float64
}

// Matches reports whether a current price falls inside the filter
func (f PriceFilter) Matches(price float64) bool {
	if f.MinPrice != nil && price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && price > *f.MaxPrice {
		return false
	}
	return true
}

// Catalog is the keyed collection of auction items. The catalog lock only
// guards the map itself; bidding on an item is serialized by the item's
// own lock, so lookups never contend with bids on other items.
type Catalog struct {
	mu    sync.RWMutex
	items map[string]*Item
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{items: make(map[string]*Item)}
}

// Get returns the item with the given id
func (c *Catalog) Get(itemID string) (*Item, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[itemID]
	if !ok {
		return nil, auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"itemId", fmt.Sprintf("item %s not found", itemID))
	}
	return item, nil
}

// Put adds or replaces an item. Administrative path, not part of bidding.
func (c *Catalog) Put(item *Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[item.ID()] = item
}

// Remove deletes an item by id. Administrative path, not part of bidding.
func (c *Catalog) Remove(itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[itemID]; !ok {
		return auctionerrors.NewFieldError(auctionerrors.ErrNotFound,
			"itemId", fmt.Sprintf("item %s not found", itemID))
	}
	delete(c.items, itemID)
	return nil
}

// Len returns the number of items in the catalog
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// List returns the items whose current price matches the filter, sorted by
// id so a single call sees a stable order. The filter looks at the live
// current price, not the starting price.
func (c *Catalog) List(filter PriceFilter) []*Item {
	c.mu.RLock()
	snapshot := make([]*Item, 0, len(c.items))
	for _, item := range c.items {
		snapshot = append(snapshot, item)
	}
	c.mu.RUnlock()

	matched := snapshot[:0]
	for _, item := range snapshot {
		if filter.Matches(item.CurrentPrice()) {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(a, b int) bool { return matched[a].ID() < matched[b].ID() })
	return matched
}
