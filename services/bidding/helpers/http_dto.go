package helpers

// Request/Response DTOs. Amounts arrive as text and are parsed by the
// service, which owns the distinction between bad format and bad value.
type PlaceBidRequest struct {
	BidderName string `json:"bidder_name" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

type UpdatePriceRequest struct {
	Price string `json:"price" binding:"required"`
}

type BidResponse struct {
	BidID      string  `json:"bid_id"`
	ItemID     string  `json:"item_id"`
	BidderName string  `json:"bidder_name"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"created_at"`
}

type RecentBidResponse struct {
	BidderName string  `json:"bidder_name"`
	Amount     float64 `json:"amount"`
	TimeAgo    string  `json:"time_ago"`
	CreatedAt  string  `json:"created_at"`
}

type ItemSummaryResponse struct {
	ItemID         string  `json:"item_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	StartingPrice  float64 `json:"starting_price"`
	CurrentPrice   float64 `json:"current_price"`
	MinimumNextBid float64 `json:"minimum_next_bid"`
	BidCount       int     `json:"bid_count"`
	Active         bool    `json:"active"`
	TimeLeft       string  `json:"time_left"`
	IsNew          bool    `json:"is_new"`
}

type ItemDetailResponse struct {
	ItemSummaryResponse
	RecentBids []RecentBidResponse `json:"recent_bids"`
}
