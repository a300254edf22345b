package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/models"
)

type fakeTokens struct {
	mu        sync.Mutex
	token     string
	next      string
	refreshes int
	err       error
}

func (f *fakeTokens) AccessToken() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeTokens) Refresh(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	if f.err != nil {
		return f.err
	}
	f.token = f.next
	return nil
}

func (f *fakeTokens) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

// pushServer accepts sockets on /realtime/{channel}. Each accepted socket is
// handed to onConn, which owns it.
type pushServer struct {
	*httptest.Server
	accepted atomic.Int32
	token    string
	channels chan string
}

func newPushServer(t *testing.T, token string, onConn func(n int32, conn *websocket.Conn)) *pushServer {
	t.Helper()
	ps := &pushServer{token: token, channels: make(chan string, 16)}
	up := websocket.Upgrader{}

	r := mux.NewRouter()
	r.HandleFunc("/realtime/{channel}", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(common.AccessTokenHeaderName) != ps.token {
			http.Error(w, "token expired", http.StatusUnauthorized)
			return
		}
		if strings.HasPrefix(mux.Vars(r)["channel"], "gifts:forbidden") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ps.channels <- mux.Vars(r)["channel"]
		onConn(ps.accepted.Add(1), conn)
	}).Methods(http.MethodGet)

	ps.Server = httptest.NewServer(r)
	t.Cleanup(ps.Close)
	return ps
}

func (ps *pushServer) wsURL() string {
	return "ws" + strings.TrimPrefix(ps.URL, "http")
}

// sendEvent runs on server goroutines, so it reports nothing; a lost
// message shows up as a timeout in the test body.
func sendEvent(conn *websocket.Conn, ev models.Event) {
	b, _ := json.Marshal(ev)
	_ = conn.WriteMessage(websocket.TextMessage, b)
}

// holdOpen blocks until the client goes away.
func holdOpen(conn *websocket.Conn) {
	defer conn.Close()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func newTestSubscriber(url string, tokens TokenSource) *Subscriber {
	return NewSubscriber(Config{BaseURL: url, BackoffMin: 5 * time.Millisecond, BackoffMax: 20 * time.Millisecond}, tokens, nil)
}

func TestSubscribe_DeliversEvents(t *testing.T) {
	ps := newPushServer(t, "A1", func(n int32, conn *websocket.Conn) {
		sendEvent(conn, models.Event{Type: models.EventInsert, Table: "gifts", New: json.RawMessage(`{"id":"g1"}`)})
		_ = conn.WriteMessage(websocket.TextMessage, []byte("not json"))
		sendEvent(conn, models.Event{Type: models.EventDelete, Table: "gifts", Old: &models.OldRef{ID: "g0"}})
		holdOpen(conn)
	})

	events := make(chan models.Event, 4)
	s := newTestSubscriber(ps.wsURL(), &fakeTokens{token: "A1"})

	sub, err := s.Subscribe(context.Background(), "gifts:l1", func(ev models.Event) { events <- ev }, nil)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	assert.Equal(t, "gifts:l1", <-ps.channels)

	first := <-events
	assert.Equal(t, models.EventInsert, first.Type)
	assert.JSONEq(t, `{"id":"g1"}`, string(first.New))

	second := <-events
	assert.Equal(t, models.EventDelete, second.Type)
	assert.Equal(t, "g0", second.Old.ID)
}

func TestSubscribe_ReconnectsAndResyncs(t *testing.T) {
	ps := newPushServer(t, "A1", func(n int32, conn *websocket.Conn) {
		if n == 1 {
			_ = conn.Close()
			return
		}
		sendEvent(conn, models.Event{Type: models.EventUpdate, Table: "telegrams", New: json.RawMessage(`{"id":"t1"}`)})
		holdOpen(conn)
	})

	events := make(chan models.Event, 4)
	resynced := make(chan struct{}, 4)
	s := newTestSubscriber(ps.wsURL(), &fakeTokens{token: "A1"})

	sub, err := s.Subscribe(context.Background(), "telegrams:l1",
		func(ev models.Event) { events <- ev },
		func() { resynced <- struct{}{} })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	select {
	case <-resynced:
	case <-time.After(5 * time.Second):
		t.Fatal("no resync after reconnect")
	}
	select {
	case ev := <-events:
		assert.Equal(t, models.EventUpdate, ev.Type)
	case <-time.After(5 * time.Second):
		t.Fatal("no event after reconnect")
	}
	assert.GreaterOrEqual(t, ps.accepted.Load(), int32(2))
}

func TestSubscribe_RefreshesExpiredToken(t *testing.T) {
	ps := newPushServer(t, "A2", func(n int32, conn *websocket.Conn) { holdOpen(conn) })
	tokens := &fakeTokens{token: "A1", next: "A2"}
	s := newTestSubscriber(ps.wsURL(), tokens)

	sub, err := s.Subscribe(context.Background(), "offerings:l1", func(models.Event) {}, nil)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	assert.Equal(t, 1, tokens.refreshCount())
	assert.Equal(t, "A2", tokens.AccessToken())
}

func TestSubscribe_Rejected(t *testing.T) {
	ps := newPushServer(t, "A1", func(n int32, conn *websocket.Conn) { holdOpen(conn) })
	s := newTestSubscriber(ps.wsURL(), &fakeTokens{token: "A1"})

	_, err := s.Subscribe(context.Background(), "gifts:forbidden", func(models.Event) {}, nil)
	var he *HandshakeError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusForbidden, he.Status)
	assert.Equal(t, "forbidden", he.Message)

	_, err = s.Subscribe(context.Background(), "no-separator", func(models.Event) {}, nil)
	require.ErrorContains(t, err, "invalid channel")
}

func TestSubscribe_ServerDown(t *testing.T) {
	s := newTestSubscriber("ws://127.0.0.1:1", &fakeTokens{token: "A1"})
	_, err := s.Subscribe(context.Background(), "gifts:l1", func(models.Event) {}, nil)
	require.Error(t, err)
}

func TestUnsubscribe_ClosesSocketAndIsIdempotent(t *testing.T) {
	closed := make(chan struct{})
	ps := newPushServer(t, "A1", func(n int32, conn *websocket.Conn) {
		holdOpen(conn)
		close(closed)
	})
	s := newTestSubscriber(ps.wsURL(), &fakeTokens{token: "A1"})

	sub, err := s.Subscribe(context.Background(), "gifts:l1", func(models.Event) {}, func() {
		t.Error("resync must not run after unsubscribe")
	})
	require.NoError(t, err)
	<-ps.channels

	require.NoError(t, sub.Unsubscribe())
	require.NoError(t, sub.Unsubscribe())

	select {
	case <-closed:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not see the socket close")
	}
	assert.Equal(t, int32(1), ps.accepted.Load())
}

func TestEndpoint(t *testing.T) {
	s := NewSubscriber(Config{BaseURL: "https://push.example/base"}, &fakeTokens{}, nil)
	got, err := s.endpoint("gifts:l1")
	require.NoError(t, err)
	assert.Equal(t, "wss://push.example/base/realtime/gifts:l1", got)
	assert.Equal(t, DefaultBackoffMin, s.cfg.BackoffMin)
	assert.Equal(t, DefaultBackoffMax, s.cfg.BackoffMax)
}
