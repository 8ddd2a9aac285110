package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"collectibles-auction/internal/auction"
	bidding "collectibles-auction/internal/biddingService"
	"collectibles-auction/internal/notifier"
	"collectibles-auction/internal/repository"
	"collectibles-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// testEnv bundles the real wiring the server runs with, against an
// in-memory catalog seeded per test.
type testEnv struct {
	router  *gin.Engine
	catalog *auction.Catalog
	users   *repository.UserStore
	prices  *notifier.PriceNotifier
}

// SetupTestEnv initializes the full stack with the given items
func SetupTestEnv(items ...*auction.Item) *testEnv {
	gin.SetMode(gin.TestMode)

	catalog := auction.NewCatalog()
	for _, item := range items {
		catalog.Put(item)
	}
	users := repository.NewUserStore()
	prices := notifier.New()

	service := bidding.NewBiddingService(catalog, prices, users)
	router := server.SetupRouter(service, catalog, users, prices)

	return &testEnv{router: router, catalog: catalog, users: users, prices: prices}
}

// newItem builds an active item created now with the default window
func newItem(itemID, name string, startingPrice float64) *auction.Item {
	return auction.NewItem(itemID, name, name+" description", startingPrice, time.Now().UTC())
}

// ExecuteRequestAndParse executes an HTTP request on the router and parses
// the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// dataObject extracts the envelope's data field as an object
func dataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// dataList extracts the envelope's data field as a list
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return data
}
