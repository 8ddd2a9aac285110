package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"collectibles-auction/internal/auction"
	bidding "collectibles-auction/internal/biddingService"
	"collectibles-auction/internal/notifier"
	"collectibles-auction/internal/repository"
	"collectibles-auction/internal/server"
	"collectibles-auction/utils"
)

func main() {
	catalog := auction.NewCatalog()
	users := repository.NewUserStore()
	prices := notifier.NewWithBuffer(getSubscriberBuffer())

	populateItems(catalog, getBidWindow())

	biddingSvc := bidding.NewBiddingService(catalog, prices, users)

	router := server.SetupRouter(biddingSvc, catalog, users, prices)

	port := getPort()
	utils.Info("starting auction server", map[string]any{"addr": port, "items": catalog.Len()})
	if err := router.Run(port); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// populateItems seeds the catalog with sample collectibles across three
// price bands, plus a few opening bids so list pages have history to show.
func populateItems(catalog *auction.Catalog, window time.Duration) {
	now := time.Now().UTC()

	type seed struct {
		id, name, description string
		startingPrice         float64
	}
	seeds := []seed{
		// entry-level range (under $500)
		{"item5", "Signed rap jersey", "A jersey autographed by a legendary west-coast rapper.", 355.67},
		{"item7", "Band-autographed guitar", "An electric guitar signed by a famous British rock band the night before their Monterrey show.", 458.91},
		// mid range ($500-$700)
		{"item3", "Designer jacket, signed", "A jacket from the artist's favorite label, autographed by the artist himself.", 521.89},
		{"item1", "Autographed baseball cap", "A cap autographed by a chart-topping regional artist.", 621.34},
		{"item6", "Stage-worn crop top", "A stage-worn and autographed crop top from a world tour stop.", 674.23},
		// premium range (over $700)
		{"item2", "Signed motorcycle helmet", "A helmet autographed by a famous singer, a true collector's piece.", 734.57},
		{"item4", "Songwriter's acoustic guitar", "A high-quality acoustic guitar played by a renowned singer-songwriter.", 823.12},
	}

	for _, s := range seeds {
		catalog.Put(auction.NewItemWithWindow(s.id, s.name, s.description, s.startingPrice, window, now))
	}

	// opening bids, each strictly above the price it found
	openingBids := []struct {
		itemID string
		bidder string
		amount float64
	}{
		{"item1", "Juan Perez", 645.00},
		{"item1", "Maria Garcia", 660.00},
		{"item3", "Ana Martinez", 550.00},
		{"item3", "Carlos Lopez", 575.00},
		{"item6", "Roberto Diaz", 690.00},
		{"item2", "Laura Sanchez", 760.00},
		{"item4", "Miguel Angel", 850.00},
	}
	for _, b := range openingBids {
		item, err := catalog.Get(b.itemID)
		if err != nil {
			continue
		}
		if _, err := item.PlaceBid(b.bidder, b.amount, now); err != nil {
			utils.Warn("sample bid rejected", map[string]any{
				"item_id": b.itemID, "bidder": b.bidder, "error": err.Error(),
			})
		}
	}
}

// getPort returns the server address from env or defaults to ":8080"
func getPort() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

// getBidWindow returns the bid window from BID_WINDOW (e.g. "168h") or the
// default seven days
func getBidWindow() time.Duration {
	if raw := os.Getenv("BID_WINDOW"); raw != "" {
		if window, err := time.ParseDuration(raw); err == nil && window > 0 {
			return window
		}
		utils.Warn("invalid BID_WINDOW, using default", map[string]any{"value": raw})
	}
	return auction.DefaultBidWindow
}

// getSubscriberBuffer returns the per-subscriber queue size from
// SUBSCRIBER_BUFFER or the notifier default
func getSubscriberBuffer() int {
	if raw := os.Getenv("SUBSCRIBER_BUFFER"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		utils.Warn("invalid SUBSCRIBER_BUFFER, using default", map[string]any{"value": raw})
	}
	return notifier.DefaultSendBuffer
}
