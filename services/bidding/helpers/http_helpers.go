package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"collectibles-auction/internal/auction"
	"collectibles-auction/internal/auctionerrors"
	model "collectibles-auction/internal/models"
	"collectibles-auction/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, auctionerrors.ErrDuplicateKey):
		return http.StatusBadRequest, "identifier already exists"
	case errors.Is(err, auctionerrors.ErrInvalidBidder):
		return http.StatusBadRequest, "invalid bidder name"
	case errors.Is(err, auctionerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid amount"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrItemInactive):
		return http.StatusGone, "item no longer accepts bids"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// ItemSummary shapes an item for list responses
func ItemSummary(item *auction.Item, now time.Time) ItemSummaryResponse {
	return ItemSummaryResponse{
		ItemID:         item.ID(),
		Name:           item.Name(),
		Description:    item.Description(),
		StartingPrice:  item.StartingPrice(),
		CurrentPrice:   item.CurrentPrice(),
		MinimumNextBid: item.MinimumNextBid(),
		BidCount:       item.BidCount(),
		Active:         item.IsActive(),
		TimeLeft:       item.TimeLeft(now),
		IsNew:          item.IsNew(now),
	}
}

// ItemDetail shapes an item plus its recent bids for detail responses
func ItemDetail(item *auction.Item, now time.Time) ItemDetailResponse {
	recent := item.RecentBids(auction.RecentBidLimit)
	bids := make([]RecentBidResponse, 0, len(recent))
	for _, b := range recent {
		bids = append(bids, RecentBidResponse{
			BidderName: b.BidderName,
			Amount:     b.Amount,
			TimeAgo:    b.TimeAgo(now),
			CreatedAt:  b.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return ItemDetailResponse{
		ItemSummaryResponse: ItemSummary(item, now),
		RecentBids:          bids,
	}
}

// BidToResponse shapes an accepted bid for the created response
func BidToResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:      bid.BidID,
		ItemID:     bid.ItemID,
		BidderName: bid.BidderName,
		Amount:     bid.Amount,
		CreatedAt:  bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}
