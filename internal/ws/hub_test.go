package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func newHubServer(h *Hub) *httptest.Server {
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id := h.Register(conn)
		defer h.Unregister(id)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func waitForSessions(t *testing.T, h *Hub, want int) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if h.SessionCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected %d sessions, got %d", want, h.SessionCount())
}

func TestHub_PublishWithoutSessions(t *testing.T) {
	h := NewHub()

	// Nobody listening is not an error condition.
	h.Publish("taskCreated", map[string]string{"title": "unheard"})

	if h.SessionCount() != 0 {
		t.Errorf("expected no sessions, got %d", h.SessionCount())
	}
}

func TestHub_FanOutReachesAllSessions(t *testing.T) {
	h := NewHub()
	srv := newHubServer(h)
	defer srv.Close()

	first := dial(t, srv)
	defer first.Close()
	second := dial(t, srv)
	defer second.Close()
	waitForSessions(t, h, 2)

	h.Publish("taskCreated", map[string]any{"id": 1, "title": "Test Task"})

	for _, conn := range []*websocket.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("failed to read frame: %v", err)
		}

		var frame Event
		if err := json.Unmarshal(data, &frame); err != nil {
			t.Fatalf("failed to decode frame: %v", err)
		}
		if frame.Event != "taskCreated" {
			t.Errorf("expected taskCreated event, got %s", frame.Event)
		}
		payload, ok := frame.Payload.(map[string]any)
		if !ok || payload["title"] != "Test Task" {
			t.Errorf("unexpected payload: %v", frame.Payload)
		}
	}
}

func TestHub_DisconnectedSessionIsDropped(t *testing.T) {
	h := NewHub()
	srv := newHubServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	waitForSessions(t, h, 1)

	conn.Close()
	waitForSessions(t, h, 0)

	// Publishing after the disconnect still succeeds.
	h.Publish("taskDeleted", map[string]any{"id": 1})
}

func TestHub_CloseDropsAllSessions(t *testing.T) {
	h := NewHub()
	srv := newHubServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForSessions(t, h, 1)

	h.Close()

	if h.SessionCount() != 0 {
		t.Errorf("expected no sessions after close, got %d", h.SessionCount())
	}
}
