package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"salon/internal/domain"
)

func newTestServer(t *testing.T) (*AgendaHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewAgendaHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws/agenda", hub.ServeWS)
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/agenda" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *AgendaHub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() != n {
		if time.Now().After(deadline) {
			t.Fatalf("ClientCount() = %d, want %d", hub.ClientCount(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	return msg
}

func event(eventType domain.AppointmentEventType, professionalID, id string) domain.AppointmentEvent {
	return domain.AppointmentEvent{
		Type: eventType,
		Appointment: domain.Appointment{
			ID:             id,
			ProfessionalID: professionalID,
			Date:           "2024-06-10",
			Time:           "10:00",
			Status:         domain.AppointmentStatusConfirmed,
		},
		OccurredAt: time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestAgendaHub_BroadcastsEvents(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)

	hub.Publish(event(domain.AppointmentEventBooked, "p1", "a1"))

	msg := readMessage(t, conn)
	if msg.Type != domain.AppointmentEventBooked || msg.Appointment.ID != "a1" {
		t.Fatalf("message = %+v", msg)
	}
	if msg.Timestamp != "2024-06-10T09:00:00Z" {
		t.Fatalf("Timestamp = %q", msg.Timestamp)
	}
}

func TestAgendaHub_FiltersByProfessional(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv, "?professional_id=p2")
	waitForClients(t, hub, 1)

	hub.Publish(event(domain.AppointmentEventBooked, "p1", "a1"))
	hub.Publish(event(domain.AppointmentEventCancelled, "p2", "a2"))

	msg := readMessage(t, conn)
	if msg.Appointment.ID != "a2" || msg.Type != domain.AppointmentEventCancelled {
		t.Fatalf("message = %+v, want only p2's event", msg)
	}
}

func TestAgendaHub_UnregistersOnClose(t *testing.T) {
	hub, srv := newTestServer(t)
	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	waitForClients(t, hub, 0)
}

func TestAgendaHub_PublishWithoutRunDoesNotBlock(t *testing.T) {
	hub := NewAgendaHub(zap.NewNop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < broadcastQueue+10; i++ {
			hub.Publish(event(domain.AppointmentEventBooked, "p1", "a"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish() blocked with a full queue")
	}
}
