package server

import (
	"net/http"
	"time"

	"collectibles-auction/internal/notifier"
	"collectibles-auction/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // demo server, any origin may watch prices
	},
}

// wsConn adapts a gorilla connection to the notifier transport. The write
// deadline bounds delivery per subscriber so a dead peer fails fast
// instead of stalling its writer goroutine.
type wsConn struct {
	conn *websocket.Conn
}

func (c *wsConn) Send(data []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (c *wsConn) Close() error {
	return c.conn.Close()
}

// PriceFeedHandler handles GET /websocket/prices: upgrades the connection
// and subscribes it to price updates until the client goes away.
func PriceFeedHandler(prices *notifier.PriceNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.Error("websocket upgrade failed", map[string]any{"error": err.Error()})
			return
		}

		handle := prices.Subscribe(&wsConn{conn: conn})
		go watchClose(conn, prices, handle)
	}
}

// watchClose reads until the peer disconnects, then unsubscribes. The
// feed is one-way; inbound frames are discarded.
func watchClose(conn *websocket.Conn, prices *notifier.PriceNotifier, handle string) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			prices.Unsubscribe(handle)
			return
		}
	}
}
