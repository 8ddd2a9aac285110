package notifier

import (
	"encoding/json"
	"sync"

	"collectibles-auction/utils"
)

// DefaultSendBuffer is how many pending price updates a subscriber may
// lag behind before it is considered stuck and dropped.
const DefaultSendBuffer = 16

// Conn is the transport a subscriber receives events on. Implementations
// must apply their own bounded send timeout (the websocket adapter sets a
// write deadline) so a dead peer cannot stall the writer goroutine forever.
type Conn interface {
	Send(data []byte) error
	Close() error
}

// PriceUpdate is the only event shape the notifier emits
type PriceUpdate struct {
	Type   string  `json:"type"`
	ItemID string  `json:"itemId"`
	Price  float64 `json:"price"`
}

type subscriber struct {
	id   string
	conn Conn
	out  chan []byte
	stop sync.Once
}

// PriceNotifier fans price-change events out to a dynamic set of
// subscribers. Each subscriber has its own buffered channel and writer
// goroutine, so one slow or failing connection never delays the others or
// the bidder whose bid triggered the broadcast.
type PriceNotifier struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	buffer int
}

// New creates a notifier with the default per-subscriber buffer
func New() *PriceNotifier {
	return NewWithBuffer(DefaultSendBuffer)
}

// NewWithBuffer creates a notifier with an explicit per-subscriber buffer
func NewWithBuffer(buffer int) *PriceNotifier {
	if buffer < 1 {
		buffer = 1
	}
	return &PriceNotifier{
		subs:   make(map[string]*subscriber),
		buffer: buffer,
	}
}

// Subscribe registers a connection and returns its handle. A writer
// goroutine owns all sends on the connection from here on.
func (n *PriceNotifier) Subscribe(conn Conn) string {
	sub := &subscriber{
		id:   utils.GenerateID(),
		conn: conn,
		out:  make(chan []byte, n.buffer),
	}

	n.mu.Lock()
	n.subs[sub.id] = sub
	n.mu.Unlock()

	go n.writeLoop(sub)

	utils.Info("price subscriber joined", map[string]any{"subscriber_id": sub.id})
	return sub.id
}

// Unsubscribe removes a subscriber and closes its connection. Removing an
// unknown or already-removed handle is a no-op.
func (n *PriceNotifier) Unsubscribe(handle string) {
	n.mu.Lock()
	sub, ok := n.subs[handle]
	if ok {
		delete(n.subs, handle)
	}
	n.mu.Unlock()

	if !ok {
		return
	}

	sub.stop.Do(func() { close(sub.out) })
	if err := sub.conn.Close(); err != nil {
		utils.Debug("closing subscriber connection", map[string]any{
			"subscriber_id": handle, "error": err.Error(),
		})
	}
	utils.Info("price subscriber left", map[string]any{"subscriber_id": handle})
}

// SubscriberCount returns the number of active subscribers
func (n *PriceNotifier) SubscriberCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

// Broadcast queues a price update for every current subscriber.
// Best-effort: a subscriber whose buffer is full is dropped, and nothing
// is ever reported back to the bidder.
func (n *PriceNotifier) Broadcast(itemID string, newPrice float64) {
	payload, err := json.Marshal(PriceUpdate{Type: "priceUpdate", ItemID: itemID, Price: newPrice})
	if err != nil {
		utils.Error("marshal price update", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	n.mu.RLock()
	var stuck []string
	for id, sub := range n.subs {
		select {
		case sub.out <- payload:
		default:
			stuck = append(stuck, id)
		}
	}
	delivered := len(n.subs) - len(stuck)
	n.mu.RUnlock()

	for _, id := range stuck {
		utils.Warn("dropping stuck price subscriber", map[string]any{"subscriber_id": id})
		n.Unsubscribe(id)
	}

	utils.Debug("price update broadcast", map[string]any{
		"item_id": itemID, "price": newPrice, "subscribers": delivered,
	})
}

// writeLoop drains one subscriber's queue. A send failure drops exactly
// that subscriber; everyone else keeps receiving.
func (n *PriceNotifier) writeLoop(sub *subscriber) {
	for payload := range sub.out {
		if err := sub.conn.Send(payload); err != nil {
			utils.Warn("price update delivery failed, dropping subscriber", map[string]any{
				"subscriber_id": sub.id, "error": err.Error(),
			})
			n.Unsubscribe(sub.id)
			return
		}
	}
}
