package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"salon/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
	broadcastQueue = 256
)

// Message is what agenda subscribers receive for every booking change.
type Message struct {
	Type        domain.AppointmentEventType `json:"type"`
	Appointment domain.Appointment          `json:"appointment"`
	Timestamp   string                      `json:"timestamp"`
}

// Client is one connected agenda screen. ProfessionalID, when set, limits the
// feed to that professional's appointments.
type Client struct {
	ProfessionalID string
	Conn           *websocket.Conn
	Send           chan []byte
	Hub            *AgendaHub
}

// AgendaHub fans appointment events out to connected admin clients. It
// implements service.AppointmentNotifier.
type AgendaHub struct {
	clients map[*Client]bool

	broadcast  chan domain.AppointmentEvent
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	upgrader websocket.Upgrader
	logger   *zap.Logger
	mutex    sync.RWMutex
}

func NewAgendaHub(logger *zap.Logger) *AgendaHub {
	return &AgendaHub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan domain.AppointmentEvent, broadcastQueue),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Run serves register, unregister and broadcast requests until ctx is done,
// then disconnects every client.
func (h *AgendaHub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.mutex.Unlock()
			h.logger.Info("agenda client connected", zap.String("professional_id", client.ProfessionalID))

		case client := <-h.unregister:
			h.drop(client)
			h.logger.Info("agenda client disconnected", zap.String("professional_id", client.ProfessionalID))

		case event := <-h.broadcast:
			h.dispatch(event)

		case <-ctx.Done():
			close(h.done)
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			return
		}
	}
}

// Publish queues event for delivery. It never blocks the caller; when the
// queue is full the event is dropped.
func (h *AgendaHub) Publish(event domain.AppointmentEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("agenda broadcast queue full, dropping event",
			zap.String("type", string(event.Type)),
			zap.String("appointment_id", event.Appointment.ID),
		)
	}
}

// ClientCount returns the number of connected clients.
func (h *AgendaHub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *AgendaHub) dispatch(event domain.AppointmentEvent) {
	payload, err := json.Marshal(Message{
		Type:        event.Type,
		Appointment: event.Appointment,
		Timestamp:   event.OccurredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logger.Error("failed to marshal agenda message", zap.Error(err))
		return
	}

	h.mutex.RLock()
	var slow []*Client
	for client := range h.clients {
		if client.ProfessionalID != "" && client.ProfessionalID != event.Appointment.ProfessionalID {
			continue
		}
		select {
		case client.Send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	for _, client := range slow {
		h.logger.Warn("agenda client too slow, disconnecting")
		h.drop(client)
	}
}

func (h *AgendaHub) drop(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

// ServeWS upgrades an authenticated request to an agenda feed. The optional
// professional_id query parameter narrows the feed.
func (h *AgendaHub) ServeWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade agenda connection", zap.Error(err))
		return
	}

	client := &Client{
		ProfessionalID: c.Query("professional_id"),
		Conn:           conn,
		Send:           make(chan []byte, sendBuffer),
		Hub:            h,
	}

	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// readPump only watches for pongs and the close frame; the feed is one-way.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("agenda websocket error", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.Hub.logger.Warn("failed to write agenda message", zap.Error(err))
				return
			}
		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
