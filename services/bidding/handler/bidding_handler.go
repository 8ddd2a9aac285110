package handler

import (
	"fmt"
	"net/http"
	"time"

	"collectibles-auction/internal/auction"
	model "collectibles-auction/internal/models"
	"collectibles-auction/services/bidding/helpers"
	"collectibles-auction/utils"

	"github.com/gin-gonic/gin"
)

type BiddingServiceInterface interface {
	SubmitBid(itemID, bidderName, amountText string) (model.Bid, error)
	UpdatePrice(itemID, newPriceText string) error
	GetItem(itemID string) (*auction.Item, error)
	ListItems(minPriceText, maxPriceText string) ([]*auction.Item, error)
	Now() time.Time
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /items/:item_id/bid
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.SubmitBid(itemID, req.BidderName, req.Amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("PlaceBidHandler: bid rejected", map[string]any{
			"item_id": itemID,
			"bidder":  req.BidderName,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.BidToResponse(bid), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":  bid.BidID,
		"item_id": bid.ItemID,
		"bidder":  bid.BidderName,
		"amount":  bid.Amount,
	})
}

// ListItemsHandler handles GET /items with optional minPrice/maxPrice
// filters applied to each item's current price
func (h *BiddingHandler) ListItemsHandler(c *gin.Context) {
	items, err := h.service.ListItems(c.Query("minPrice"), c.Query("maxPrice"))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Warn("ListItemsHandler: bad price filter", map[string]any{"error": err.Error()})
		return
	}

	now := h.service.Now()
	summaries := make([]helpers.ItemSummaryResponse, 0, len(items))
	for _, item := range items {
		summaries = append(summaries, helpers.ItemSummary(item, now))
	}

	utils.JSONResponse(c, http.StatusOK, summaries, "items retrieved successfully")
	helpers.LogSuccess("ListItemsHandler", "items retrieved successfully", map[string]any{
		"count": len(summaries),
	})
}

// GetItemHandler handles GET /items/:item_id
func (h *BiddingHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	item, err := h.service.GetItem(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, err, message)
		utils.Info("GetItemHandler: item not found", map[string]any{"item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ItemDetail(item, h.service.Now()), "item retrieved successfully")
}

// UpdatePriceHandler handles PUT /api/items/:item_id/price. Administrative
// correction: no price update is broadcast from here.
func (h *BiddingHandler) UpdatePriceHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdatePriceHandler", err)
		return
	}

	if err := h.service.UpdatePrice(itemID, req.Price); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdatePriceHandler: update rejected", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "price updated successfully")
	helpers.LogSuccess("UpdatePriceHandler", "price updated successfully", map[string]any{
		"item_id": itemID,
	})
}
