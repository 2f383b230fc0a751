package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/marketstall/market-api/internal/events"
)

const (
	feedWriteWait  = 10 * time.Second
	feedPongWait   = 60 * time.Second
	feedPingPeriod = feedPongWait * 9 / 10
	feedSendBuffer = 64
)

type feedClient struct {
	conn *websocket.Conn
	send chan []byte
}

// FeedHandler streams market events to websocket subscribers. It implements
// events.Publisher so services can publish to it directly.
type FeedHandler struct {
	upgrader websocket.Upgrader

	clients      map[*feedClient]struct{}
	clientsMutex sync.RWMutex
	broadcast    chan []byte
	register     chan *feedClient
	unregister   chan *feedClient
	done         chan struct{}
	closeOnce    sync.Once
}

// NewFeedHandler accepts connections from allowedOrigins, or from anywhere
// when the list is empty.
func NewFeedHandler(allowedOrigins []string) *FeedHandler {
	return &FeedHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowedOrigins) == 0 || origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
		clients:    make(map[*feedClient]struct{}),
		broadcast:  make(chan []byte, feedSendBuffer),
		register:   make(chan *feedClient),
		unregister: make(chan *feedClient),
		done:       make(chan struct{}),
	}
}

// Run dispatches events to subscribers until Close is called.
func (h *FeedHandler) Run() {
	for {
		select {
		case client := <-h.register:
			h.clientsMutex.Lock()
			h.clients[client] = struct{}{}
			h.clientsMutex.Unlock()
		case client := <-h.unregister:
			h.drop(client)
		case message := <-h.broadcast:
			h.clientsMutex.RLock()
			var slow []*feedClient
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					slow = append(slow, client)
				}
			}
			h.clientsMutex.RUnlock()
			for _, client := range slow {
				h.drop(client)
			}
		case <-h.done:
			h.clientsMutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.clientsMutex.Unlock()
			return
		}
	}
}

func (h *FeedHandler) drop(client *feedClient) {
	h.clientsMutex.Lock()
	defer h.clientsMutex.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *FeedHandler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Subscribers is the number of connected clients.
func (h *FeedHandler) Subscribers() int {
	h.clientsMutex.RLock()
	defer h.clientsMutex.RUnlock()

	return len(h.clients)
}

func (h *FeedHandler) Publish(ctx context.Context, e events.Event) error {
	message, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}

	select {
	case h.broadcast <- message:
		return nil
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HandleFeed godoc
// @Summary Subscribe to market events
// @Description Upgrades to a WebSocket that receives every stand, reservation and incident change as JSON.
// @Tags events
// @Success 101 {object} events.Event
// @Failure 400 {object} response.Err
// @Router /events/ws [get]
func (h *FeedHandler) HandleFeed(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// Upgrade has already answered the request.
		zap.L().Debug("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &feedClient{
		conn: conn,
		send: make(chan []byte, feedSendBuffer),
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(h)
}

func (c *feedClient) writePump() {
	ticker := time.NewTicker(feedPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump only watches for the peer going away; subscribers do not send.
func (c *feedClient) readPump(h *FeedHandler) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(feedPongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("feed subscriber left", zap.Error(err))
			}
			return
		}
	}
}
