package realtime

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
	"github.com/dmitrijs2005/kouden/internal/server/auth"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Membership resolves a user's role in a ledger; ledgers.Repository
// satisfies it.
type Membership interface {
	GetRole(ctx context.Context, ledgerID, userID string) (models.Role, error)
}

type Handler struct {
	hub        *Hub
	members    Membership
	jwtSecret  []byte
	logger     logging.Logger
	upgrader   websocket.Upgrader
	pingPeriod time.Duration
}

func NewHandler(hub *Hub, members Membership, secretKey string, logger logging.Logger) *Handler {
	return &Handler{
		hub:       hub,
		members:   members,
		jwtSecret: []byte(secretKey),
		logger:    logger.With("module", "realtime_handler"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		pingPeriod: pingPeriod,
	}
}

func accessToken(r *http.Request) string {
	if tok := r.Header.Get(common.AccessTokenHeaderName); tok != "" {
		return tok
	}
	return r.URL.Query().Get(common.AccessTokenHeaderName)
}

// ServeHTTP authorizes the caller for the channel in the path, then
// upgrades and streams events until either side closes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channel := mux.Vars(r)["channel"]
	table, ledgerID, ok := common.ParseChannelKey(channel)
	if !ok || !slices.Contains(models.Tables, table) {
		http.Error(w, "unknown channel", http.StatusBadRequest)
		return
	}

	userID, err := auth.GetUserIDFromToken(accessToken(r), h.jwtSecret)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, common.ErrTokenExpired) {
			msg = "token expired"
		}
		http.Error(w, msg, http.StatusUnauthorized)
		return
	}

	if _, err := h.members.GetRole(r.Context(), ledgerID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error(r.Context(), "membership lookup failed", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(r.Context(), "failed to upgrade", "err", err)
		return
	}

	sub := h.hub.subscribe(channel, userID)
	h.logger.Debug(r.Context(), "subscribed", "channel", channel, "user", userID)

	go h.readPump(conn, sub)
	h.writePump(r.Context(), conn, sub)
}

// readPump consumes control frames and ends the subscription once the
// client goes away.
func (h *Handler) readPump(conn *websocket.Conn, sub *subscriber) {
	defer h.hub.unsubscribe(sub)

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(ctx context.Context, conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(h.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ctx.Done():
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
