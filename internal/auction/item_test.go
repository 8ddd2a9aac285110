package auction

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"collectibles-auction/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func newTestItem(startingPrice float64, now time.Time) *Item {
	return NewItem("item1", "Signed guitar", "A guitar with a famous signature", startingPrice, now)
}

func TestItem_CurrentPrice(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(100, now)

	// no bids: starting price is the current price
	require.Equal(t, 100.0, item.CurrentPrice())
	require.InDelta(t, 100.01, item.MinimumNextBid(), 1e-9)
	_, ok := item.HighestBid()
	require.False(t, ok)

	// each accepted bid becomes the new current price
	_, err := item.PlaceBid("alice", 100.01, now)
	require.NoError(t, err)
	require.Equal(t, 100.01, item.CurrentPrice())

	_, err = item.PlaceBid("bob", 100.02, now)
	require.NoError(t, err)
	require.Equal(t, 100.02, item.CurrentPrice())

	highest, ok := item.HighestBid()
	require.True(t, ok)
	require.Equal(t, "bob", highest.BidderName)
	require.Equal(t, 100.02, highest.Amount)
}

func TestItem_PlaceBid(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	tests := []struct {
		name      string
		bidder    string
		amount    float64
		wantErr   error
		wantField string
	}{
		{name: "valid_bid", bidder: "alice", amount: 100.01},
		{name: "empty_bidder", bidder: "", amount: 150, wantErr: auctionerrors.ErrInvalidBidder, wantField: "bidderName"},
		{name: "whitespace_bidder", bidder: "   ", amount: 150, wantErr: auctionerrors.ErrInvalidBidder, wantField: "bidderName"},
		{name: "zero_amount", bidder: "alice", amount: 0, wantErr: auctionerrors.ErrInvalidAmount, wantField: "bidAmount"},
		{name: "negative_amount", bidder: "alice", amount: -50, wantErr: auctionerrors.ErrInvalidAmount, wantField: "bidAmount"},
		{name: "equal_to_current_price", bidder: "alice", amount: 100, wantErr: auctionerrors.ErrBidTooLow, wantField: "bidAmount"},
		{name: "below_current_price", bidder: "alice", amount: 42, wantErr: auctionerrors.ErrBidTooLow, wantField: "bidAmount"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			item := newTestItem(100, now)
			bid, err := item.PlaceBid(tc.bidder, tc.amount, now)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Equal(t, tc.wantField, auctionerrors.FieldOf(err))
				// failed bids never touch the history
				require.Equal(t, 0, item.BidCount())
				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, bid.BidID)
			require.Equal(t, "item1", bid.ItemID)
			require.Equal(t, tc.bidder, bid.BidderName)
			require.Equal(t, tc.amount, bid.Amount)
			require.Equal(t, now, bid.CreatedAt)
			require.Equal(t, 1, item.BidCount())
		})
	}
}

// Empty bidder names are rejected before the amount is looked at, even
// when the amount would also be too low.
func TestItem_PlaceBid_BidderCheckedBeforeAmount(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(100, now)

	_, err := item.PlaceBid("", 10, now)
	require.ErrorIs(t, err, auctionerrors.ErrInvalidBidder)
}

func TestItem_PlaceBid_Scenario(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(100.00, now)

	_, err := item.PlaceBid("alice", 100.01, now)
	require.NoError(t, err)
	require.Equal(t, 100.01, item.CurrentPrice())

	_, err = item.PlaceBid("bob", 100.01, now)
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	_, err = item.PlaceBid("bob", 100.02, now)
	require.NoError(t, err)
	require.Equal(t, 100.02, item.CurrentPrice())

	_, err = item.PlaceBid("bob", 50.00, now)
	require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)

	// amounts are strictly increasing in acceptance order
	bids := item.Bids()
	require.Len(t, bids, 2)
	for i := 1; i < len(bids); i++ {
		require.Greater(t, bids[i].Amount, bids[i-1].Amount)
	}
}

func TestItem_PlaceBid_Expiry(t *testing.T) {
	t.Parallel()

	start := time.Now().UTC()
	item := NewItemWithWindow("item1", "Signed cap", "desc", 100, time.Hour, start)

	// still open one minute before the window closes
	_, err := item.PlaceBid("alice", 150, start.Add(59*time.Minute))
	require.NoError(t, err)

	// the first operation past the window flips the item inactive, once
	afterEnd := start.Add(61 * time.Minute)
	_, err = item.PlaceBid("bob", 200, afterEnd)
	require.ErrorIs(t, err, auctionerrors.ErrItemInactive)
	require.False(t, item.IsActive())

	// inactive is terminal for bidding
	_, err = item.PlaceBid("bob", 300, afterEnd.Add(time.Minute))
	require.ErrorIs(t, err, auctionerrors.ErrItemInactive)
	require.Equal(t, 1, item.BidCount())

	// reads remain valid after expiry
	require.Equal(t, 150.0, item.CurrentPrice())
	require.Equal(t, "Ended", item.TimeLeft(afterEnd))
}

func TestItem_ExpireIfDue(t *testing.T) {
	t.Parallel()

	start := time.Now().UTC()
	item := NewItemWithWindow("item1", "Signed cap", "desc", 100, time.Hour, start)

	require.False(t, item.ExpireIfDue(start.Add(30*time.Minute)))
	require.True(t, item.IsActive())

	// the transition fires exactly once
	require.True(t, item.ExpireIfDue(start.Add(2*time.Hour)))
	require.False(t, item.ExpireIfDue(start.Add(3*time.Hour)))
	require.False(t, item.IsActive())
}

func TestItem_Deactivate(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(100, now)

	item.Deactivate()

	_, err := item.PlaceBid("alice", 150, now)
	require.ErrorIs(t, err, auctionerrors.ErrItemInactive)
}

func TestItem_RecentBids(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(10, now)

	for i := 0; i < 8; i++ {
		_, err := item.PlaceBid(fmt.Sprintf("bidder%d", i), float64(20+i), now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}

	recent := item.RecentBids(5)
	require.Len(t, recent, 5)

	// most recent first
	require.Equal(t, "bidder7", recent[0].BidderName)
	for i := 1; i < len(recent); i++ {
		require.False(t, recent[i].CreatedAt.After(recent[i-1].CreatedAt))
	}

	// snapshots are independent of the item's history
	recent[0].BidderName = "mutated"
	require.Equal(t, "bidder7", item.RecentBids(5)[0].BidderName)
}

func TestItem_TimeLeft(t *testing.T) {
	t.Parallel()

	start := time.Now().UTC()
	item := newTestItem(100, start)

	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{name: "days_and_hours", now: start.Add(24 * time.Hour), want: "6d 0h left"},
		{name: "hours_only", now: start.Add(6*24*time.Hour + 19*time.Hour), want: "5h left"},
		{name: "minutes_only", now: start.Add(7*24*time.Hour - 42*time.Minute), want: "42m left"},
		{name: "ended", now: start.Add(8 * 24 * time.Hour), want: "Ended"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, item.TimeLeft(tc.now))
		})
	}

	// TimeLeft is a pure read: observing "Ended" does not deactivate
	require.True(t, item.IsActive())
}

func TestItem_UpdateStartingPrice(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(100, now)

	require.ErrorIs(t, item.UpdateStartingPrice(0), auctionerrors.ErrInvalidAmount)
	require.ErrorIs(t, item.UpdateStartingPrice(-5), auctionerrors.ErrInvalidAmount)

	require.NoError(t, item.UpdateStartingPrice(250))
	require.Equal(t, 250.0, item.StartingPrice())
	require.Equal(t, 250.0, item.CurrentPrice())

	// once bids exist the current price comes from the highest bid and an
	// administrative correction does not disturb it
	_, err := item.PlaceBid("alice", 300, now)
	require.NoError(t, err)
	require.NoError(t, item.UpdateStartingPrice(50))
	require.Equal(t, 300.0, item.CurrentPrice())
}

// Two bidders racing on the same item must never both be validated
// against the same stale price: every accepted amount strictly exceeds
// the amount accepted before it.
func TestItem_PlaceBid_ConcurrentSameItem(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	item := newTestItem(10, now)

	const bidders = 50
	var wg sync.WaitGroup
	accepted := make(chan float64, bidders)

	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			amount := float64(11 + i)
			if _, err := item.PlaceBid(fmt.Sprintf("bidder%d", i), amount, now); err == nil {
				accepted <- amount
			}
		}(i)
	}
	wg.Wait()
	close(accepted)

	require.Equal(t, len(accepted), item.BidCount())

	bids := item.Bids()
	require.NotEmpty(t, bids)
	last := 10.0
	for _, b := range bids {
		require.Greater(t, b.Amount, last)
		last = b.Amount
	}
	require.Equal(t, last, item.CurrentPrice())
}
