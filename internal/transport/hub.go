package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/goodnatureofminers/collider-backend/internal/model"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	DefaultSendQueue = 64
	writeTimeout     = 10 * time.Second
	readLimit        = 4096
)

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// Hub pushes stats and match events to websocket clients and accepts
// start/stop commands from them. A client whose queue is full is dropped.
type Hub struct {
	control   Control
	metrics   HubMetrics
	logger    *zap.Logger
	queueSize int
	upgrader  websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client
	closed  bool
	writers sync.WaitGroup
}

// NewHub returns a Hub instance. queueSize <= 0 selects DefaultSendQueue.
func NewHub(control Control, metrics HubMetrics, queueSize int, logger *zap.Logger) (*Hub, error) {
	if control == nil {
		return nil, errors.New("control is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}
	if queueSize <= 0 {
		queueSize = DefaultSendQueue
	}
	return &Hub{
		control:   control,
		metrics:   metrics,
		logger:    logger.Named("live_hub"),
		queueSize: queueSize,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[string]*client),
	}, nil
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade websocket", zap.Error(err))
		return
	}
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, h.queueSize),
	}
	if !h.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
			time.Now().Add(writeTimeout))
		_ = conn.Close()
		return
	}

	logger := h.logger.With(zap.String("client_id", c.id))
	logger.Debug("client connected")

	h.sendTo(c, EventStatsUpdate, h.control.Snapshot())
	h.readLoop(c, logger)
	h.unregister(c)
	logger.Debug("client disconnected")
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	h.writers.Add(1)
	go h.writeLoop(c)
	h.metrics.ObserveClients(len(h.clients))
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	h.metrics.ObserveClients(len(h.clients))
}

func (h *Hub) readLoop(c *client, logger *zap.Logger) {
	c.conn.SetReadLimit(readLimit)
	for {
		var cmd Command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("read command", zap.Error(err))
			}
			return
		}

		switch cmd.Action {
		case ActionStart:
			started, err := h.control.Start()
			if err != nil {
				logger.Info("start rejected", zap.Error(err))
			}
			h.sendTo(c, EventStatus, startStatus(started, err))
		case ActionStop:
			h.control.Stop()
			h.sendTo(c, EventStatus, Status{Message: MessageStopped})
		default:
			logger.Debug("unknown command", zap.String("action", cmd.Action))
		}
	}
}

// writeLoop drains the client queue until it is closed, then closes the
// connection. Queued frames are flushed before the close frame.
func (h *Hub) writeLoop(c *client) {
	defer h.writers.Done()
	defer func() {
		_ = c.conn.Close()
	}()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.logger.Debug("write frame", zap.String("client_id", c.id), zap.Error(err))
			h.unregister(c)
			for range c.send {
			}
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}

func (h *Hub) PublishStats(snapshot model.StatsSnapshot) {
	h.broadcast(EventStatsUpdate, snapshot)
}

func (h *Hub) PublishMatch(event model.MatchEvent) {
	h.broadcast(EventWalletMatched, event)
}

func (h *Hub) broadcast(event string, data any) {
	msg, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Error("encode event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.clients {
		h.enqueueLocked(c, event, msg)
	}
}

func (h *Hub) sendTo(c *client, event string, data any) {
	msg, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Error("encode event", zap.String("event", event), zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c.id]; ok {
		h.enqueueLocked(c, event, msg)
	}
}

func (h *Hub) enqueueLocked(c *client, event string, msg []byte) {
	select {
	case c.send <- msg:
		h.metrics.ObserveMessage(event, true)
	default:
		h.metrics.ObserveMessage(event, false)
		h.logger.Warn("dropping slow client", zap.String("client_id", c.id))
		h.removeLocked(c)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every client after its queued frames are written.
func (h *Hub) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	for _, c := range h.clients {
		h.removeLocked(c)
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.writers.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
