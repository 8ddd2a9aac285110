package bidding

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"collectibles-auction/internal/auction"
	"collectibles-auction/internal/auctionerrors"
	"collectibles-auction/internal/models"
	"collectibles-auction/utils"
)

// ItemCatalog is the catalog surface the service needs
type ItemCatalog interface {
	Get(itemID string) (*auction.Item, error)
	List(filter auction.PriceFilter) []*auction.Item
}

// PriceBroadcaster pushes a price change to whoever is listening.
// Delivery is best-effort and never fails the bid.
type PriceBroadcaster interface {
	Broadcast(itemID string, newPrice float64)
}

// BidderIndex records which items a bidder has bid on
type BidderIndex interface {
	RecordBid(bidderName, itemID string)
}

// BiddingService is the single entry point the HTTP layer calls for
// bidding: it parses input, locates the item, delegates acceptance to the
// item and broadcasts the new price on success.
type BiddingService struct {
	catalog     ItemCatalog
	broadcaster PriceBroadcaster
	index       BidderIndex
	now         func() time.Time
}

// NewBiddingService creates a BiddingService using the wall clock.
// index may be nil when nothing tracks bidder activity.
func NewBiddingService(catalog ItemCatalog, broadcaster PriceBroadcaster, index BidderIndex) *BiddingService {
	return &BiddingService{
		catalog:     catalog,
		broadcaster: broadcaster,
		index:       index,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// NewBiddingServiceWithClock is NewBiddingService with an injected time
// source, for tests that exercise the bid window.
func NewBiddingServiceWithClock(catalog ItemCatalog, broadcaster PriceBroadcaster, index BidderIndex, now func() time.Time) *BiddingService {
	svc := NewBiddingService(catalog, broadcaster, index)
	svc.now = now
	return svc
}

// SubmitBid places a bid on an item. The submitted amount arrives as text
// straight from the request; parse failures and non-finite values are
// invalid amounts before the item ever sees them. Time is sampled once so
// the expiry check and the bid timestamp agree.
func (s *BiddingService) SubmitBid(itemID, bidderName, amountText string) (models.Bid, error) {
	amount, err := parseAmount(amountText, "bidAmount")
	if err != nil {
		return models.Bid{}, err
	}

	item, err := s.catalog.Get(itemID)
	if err != nil {
		return models.Bid{}, err
	}

	now := s.now()
	bid, err := item.PlaceBid(bidderName, amount, now)
	if err != nil {
		return models.Bid{}, err
	}

	if s.index != nil {
		s.index.RecordBid(bidderName, itemID)
	}

	// the bid is already appended; delivery happens outside the item lock
	// and a slow subscriber cannot stall this request
	s.broadcaster.Broadcast(itemID, item.CurrentPrice())

	utils.Info("bid accepted", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": itemID,
		"bidder":  bidderName,
		"amount":  bid.Amount,
	})
	return bid, nil
}

// UpdatePrice replaces an item's starting price on the administrative
// path. Price corrections do not broadcast; only accepted bids do.
func (s *BiddingService) UpdatePrice(itemID, newPriceText string) error {
	newPrice, err := parseAmount(newPriceText, "price")
	if err != nil {
		return err
	}

	item, err := s.catalog.Get(itemID)
	if err != nil {
		return err
	}

	if err := item.UpdateStartingPrice(newPrice); err != nil {
		return err
	}

	utils.Info("starting price updated", map[string]any{"item_id": itemID, "price": newPrice})
	return nil
}

// GetItem returns the item with the given id
func (s *BiddingService) GetItem(itemID string) (*auction.Item, error) {
	return s.catalog.Get(itemID)
}

// ListItems returns items whose current price lies inside the optional
// bounds. Bound parse failures are invalid amounts.
func (s *BiddingService) ListItems(minPriceText, maxPriceText string) ([]*auction.Item, error) {
	var filter auction.PriceFilter

	if strings.TrimSpace(minPriceText) != "" {
		minPrice, err := parseAmount(minPriceText, "minPrice")
		if err != nil {
			return nil, err
		}
		filter.MinPrice = &minPrice
	}
	if strings.TrimSpace(maxPriceText) != "" {
		maxPrice, err := parseAmount(maxPriceText, "maxPrice")
		if err != nil {
			return nil, err
		}
		filter.MaxPrice = &maxPrice
	}

	return s.catalog.List(filter), nil
}

// Now exposes the service clock so the HTTP layer renders time-left and
// time-ago descriptors against the same time source bids are judged by.
func (s *BiddingService) Now() time.Time {
	return s.now()
}

// parseAmount parses a decimal input field. Unparsable and non-finite
// values are both reported as the same invalid-amount kind.
func parseAmount(text, field string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, auctionerrors.NewFieldError(auctionerrors.ErrInvalidAmount,
			field, fmt.Sprintf("invalid %s format", field))
	}
	return amount, nil
}
