package models

import (
	"fmt"
	"time"
)

// User represents a registered participant in the auction house
type User struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Bid is an immutable record of one accepted bid on an item. Once created
// it is never mutated; items keep their full bid history for the process
// lifetime.
type Bid struct {
	BidID      string    `json:"bid_id"`
	ItemID     string    `json:"item_id"`
	BidderName string    `json:"bidder_name"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// TimeAgo returns a rough human description of how long ago the bid was
// placed, for display next to recent bids.
func (b Bid) TimeAgo(now time.Time) string {
	minutes := int(now.Sub(b.CreatedAt).Minutes())
	switch {
	case minutes < 1:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%d hours ago", minutes/60)
	default:
		return fmt.Sprintf("%d days ago", minutes/(24*60))
	}
}
