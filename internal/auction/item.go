package auction

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"collectibles-auction/internal/auctionerrors"
	"collectibles-auction/internal/models"
	"collectibles-auction/utils"
)

// DefaultBidWindow is how long an item accepts bids after creation.
const DefaultBidWindow = 7 * 24 * time.Hour

// RecentBidLimit caps the recent-bids view on item detail pages.
const RecentBidLimit = 5

// Item is the auction aggregate. It exclusively owns its bid history and
// serializes all bidding on itself with its own mutex, so concurrent bids
// on the same item are validated against a live current price while bids
// on different items never block each other.
type Item struct {
	mu            sync.Mutex
	id            string
	name          string
	description   string
	startingPrice float64
	createdAt     time.Time
	window        time.Duration
	active        bool
	bids          []models.Bid
}

// NewItem creates an active item with the default bid window
func NewItem(id, name, description string, startingPrice float64, now time.Time) *Item {
	return NewItemWithWindow(id, name, description, startingPrice, DefaultBidWindow, now)
}

// NewItemWithWindow creates an active item with an explicit bid window
func NewItemWithWindow(id, name, description string, startingPrice float64, window time.Duration, now time.Time) *Item {
	return &Item{
		id:            id,
		name:          name,
		description:   description,
		startingPrice: startingPrice,
		createdAt:     now,
		window:        window,
		active:        true,
	}
}

func (i *Item) ID() string          { return i.id }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

// StartingPrice returns the current starting price. It can change via
// UpdateStartingPrice, so reads go through the lock like everything else.
func (i *Item) StartingPrice() float64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.startingPrice
}

// IsActive reports whether the item still accepts bids. It does not
// evaluate expiry; use ExpireIfDue for the state transition.
func (i *Item) IsActive() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.active
}

// CurrentPrice is the amount of the highest accepted bid, or the starting
// price while no bids exist.
func (i *Item) CurrentPrice() float64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.currentPriceLocked()
}

// MinimumNextBid is the smallest amount a new bid must reach
func (i *Item) MinimumNextBid() float64 {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.currentPriceLocked() + 0.01
}

// BidCount returns the number of accepted bids
func (i *Item) BidCount() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.bids)
}

// HighestBid returns the highest accepted bid. Accepted amounts are
// strictly increasing, so the highest bid is always the latest one and
// ties cannot occur.
func (i *Item) HighestBid() (models.Bid, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if len(i.bids) == 0 {
		return models.Bid{}, false
	}
	return i.bids[len(i.bids)-1], true
}

// Bids returns a copy of the full bid history in acceptance order
func (i *Item) Bids() []models.Bid {
	i.mu.Lock()
	defer i.mu.Unlock()
	return append([]models.Bid(nil), i.bids...)
}

// RecentBids returns up to limit bids, most recent first. The result is a
// fresh snapshot each call.
func (i *Item) RecentBids(limit int) []models.Bid {
	i.mu.Lock()
	recent := append([]models.Bid(nil), i.bids...)
	i.mu.Unlock()

	sort.SliceStable(recent, func(a, b int) bool {
		return recent[a].CreatedAt.After(recent[b].CreatedAt)
	})
	if limit >= 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// EndsAt returns when the bid window closes
func (i *Item) EndsAt() time.Time {
	return i.createdAt.Add(i.window)
}

// IsNew reports whether the item was listed within the last 24 hours
func (i *Item) IsNew(now time.Time) bool {
	return now.Sub(i.createdAt) < 24*time.Hour
}

// TimeLeft describes the remaining bid window for display: "2d 5h left",
// "5h left", "42m left" or "Ended". It is read-only; the expiry state
// transition happens in ExpireIfDue.
func (i *Item) TimeLeft(now time.Time) string {
	end := i.EndsAt()
	if !now.Before(end) {
		return "Ended"
	}

	remaining := end.Sub(now)
	days := int(remaining.Hours()) / 24
	hours := int(remaining.Hours()) % 24
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh left", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh left", hours)
	default:
		return fmt.Sprintf("%dm left", int(remaining.Minutes())%60)
	}
}

// ExpireIfDue deactivates the item once its bid window has elapsed.
// It reports true only on the Active -> Inactive transition, which happens
// at most once per item. Every mutating operation runs this check first.
func (i *Item) ExpireIfDue(now time.Time) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.expireIfDueLocked(now)
}

func (i *Item) expireIfDueLocked(now time.Time) bool {
	if i.active && !now.Before(i.EndsAt()) {
		i.active = false
		return true
	}
	return false
}

// Deactivate closes the item for bidding regardless of the window
func (i *Item) Deactivate() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.active = false
}

// PlaceBid validates and appends one bid atomically. The whole
// read-validate-append sequence runs under the item lock so no two bids
// are ever validated against a stale current price. On failure the bid
// history is untouched.
func (i *Item) PlaceBid(bidderName string, amount float64, now time.Time) (models.Bid, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.expireIfDueLocked(now)
	if !i.active {
		return models.Bid{}, auctionerrors.NewFieldError(auctionerrors.ErrItemInactive,
			"itemId", "this item is no longer accepting bids")
	}
	if strings.TrimSpace(bidderName) == "" {
		return models.Bid{}, auctionerrors.NewFieldError(auctionerrors.ErrInvalidBidder,
			"bidderName", "bidder name is required")
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return models.Bid{}, auctionerrors.NewFieldError(auctionerrors.ErrInvalidAmount,
			"bidAmount", "bid amount must be a positive number")
	}
	if current := i.currentPriceLocked(); amount <= current {
		return models.Bid{}, auctionerrors.NewFieldError(auctionerrors.ErrBidTooLow,
			"bidAmount", fmt.Sprintf("bid must be higher than current price ($%.2f)", current))
	}

	bid := models.Bid{
		BidID:      utils.GenerateID(),
		ItemID:     i.id,
		BidderName: bidderName,
		Amount:     amount,
		CreatedAt:  now,
	}
	i.bids = append(i.bids, bid)
	return bid, nil
}

// UpdateStartingPrice replaces the starting price on the administrative
// path. It does not touch already-placed bids, so once bids exist the
// current price is unaffected.
func (i *Item) UpdateStartingPrice(newPrice float64) error {
	if newPrice <= 0 || math.IsNaN(newPrice) || math.IsInf(newPrice, 0) {
		return auctionerrors.NewFieldError(auctionerrors.ErrInvalidAmount,
			"price", "price must be greater than 0")
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.startingPrice = newPrice
	return nil
}

func (i *Item) currentPriceLocked() float64 {
	if len(i.bids) == 0 {
		return i.startingPrice
	}
	// amounts strictly increase, the last accepted bid is the highest
	return i.bids[len(i.bids)-1].Amount
}
