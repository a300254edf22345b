// Package realtime is the client side of the push channel: it keeps one
// websocket per subscribed channel open, reconnecting with exponential
// backoff, and decodes change events for the collection listeners.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/kouden/internal/client/collection"
	"github.com/dmitrijs2005/kouden/internal/common"
	"github.com/dmitrijs2005/kouden/internal/logging"
	"github.com/dmitrijs2005/kouden/internal/models"
)

const (
	writeWait        = 10 * time.Second
	handshakeTimeout = 10 * time.Second

	// readWait must exceed the server ping period.
	readWait = 90 * time.Second

	DefaultBackoffMin = 500 * time.Millisecond
	DefaultBackoffMax = 30 * time.Second
)

// TokenSource supplies the access token sent with the handshake.
// client.GRPCClient satisfies it.
type TokenSource interface {
	AccessToken() string
	Refresh(ctx context.Context) error
}

type Config struct {
	// BaseURL is the realtime server root, e.g. "ws://127.0.0.1:8080".
	BaseURL    string
	BackoffMin time.Duration
	BackoffMax time.Duration
}

// HandshakeError is a handshake the server answered with an HTTP error.
type HandshakeError struct {
	Status  int
	Message string
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("handshake rejected: %d %s", e.Status, e.Message)
}

// Subscriber implements collection.Subscriber over websockets.
type Subscriber struct {
	cfg      Config
	tokens   TokenSource
	logger   logging.Logger
	dialer   *websocket.Dialer
	readWait time.Duration
}

func NewSubscriber(cfg Config, tokens TokenSource, logger logging.Logger) *Subscriber {
	if cfg.BackoffMin <= 0 {
		cfg.BackoffMin = DefaultBackoffMin
	}
	if cfg.BackoffMax < cfg.BackoffMin {
		cfg.BackoffMax = max(DefaultBackoffMax, cfg.BackoffMin)
	}
	if logger == nil {
		logger = logging.NewDiscard()
	}
	return &Subscriber{
		cfg:      cfg,
		tokens:   tokens,
		logger:   logger.With("module", "realtime_subscriber"),
		dialer:   &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		readWait: readWait,
	}
}

// Subscribe dials the channel once and fails if that does not succeed.
// Afterwards a supervisor reconnects dropped sockets and calls onResync
// after every reconnect. The subscription outlives ctx; end it with
// Unsubscribe.
func (s *Subscriber) Subscribe(ctx context.Context, channel string, onEvent func(models.Event), onResync func()) (collection.Subscription, error) {
	if _, _, ok := common.ParseChannelKey(channel); !ok {
		return nil, fmt.Errorf("invalid channel %q", channel)
	}

	conn, err := s.connect(ctx, channel)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &subscription{ctx: runCtx, cancel: cancel, conn: conn, done: make(chan struct{})}
	log := s.logger.With("channel", channel)

	go s.supervise(sub, channel, conn, onEvent, onResync, log)
	log.Debug(ctx, "subscribed")
	return sub, nil
}

func (s *Subscriber) endpoint(channel string) (string, error) {
	u, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse realtime url: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}
	return u.JoinPath("realtime", channel).String(), nil
}

func (s *Subscriber) dial(ctx context.Context, channel string) (*websocket.Conn, error) {
	endpoint, err := s.endpoint(channel)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(common.AccessTokenHeaderName, s.tokens.AccessToken())

	conn, resp, err := s.dialer.DialContext(ctx, endpoint, header)
	if err != nil {
		if errors.Is(err, websocket.ErrBadHandshake) && resp != nil {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, &HandshakeError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		}
		return nil, err
	}
	return conn, nil
}

// connect dials once more after refreshing the token if the server says
// the token is no longer valid.
func (s *Subscriber) connect(ctx context.Context, channel string) (*websocket.Conn, error) {
	conn, err := s.dial(ctx, channel)
	var he *HandshakeError
	if errors.As(err, &he) && he.Status == http.StatusUnauthorized {
		if rerr := s.tokens.Refresh(ctx); rerr != nil {
			return nil, fmt.Errorf("refresh token: %w", rerr)
		}
		return s.dial(ctx, channel)
	}
	return conn, err
}

func (s *Subscriber) backoff() retry.Backoff {
	b := retry.NewExponential(s.cfg.BackoffMin)
	b = retry.WithJitterPercent(10, b)
	return retry.WithCappedDuration(s.cfg.BackoffMax, b)
}

// reconnect retries until it connects, ctx ends, or the server rejects the
// channel for good.
func (s *Subscriber) reconnect(ctx context.Context, channel string, log logging.Logger) (*websocket.Conn, error) {
	var conn *websocket.Conn
	attempt := 0
	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		attempt++
		c, err := s.connect(ctx, channel)
		if err != nil {
			var he *HandshakeError
			if errors.As(err, &he) && he.Status != http.StatusServiceUnavailable && he.Status < 500 {
				return err
			}
			log.Debug(ctx, "reconnect failed", "attempt", attempt, "err", err)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	return conn, err
}

func (s *Subscriber) supervise(sub *subscription, channel string, conn *websocket.Conn, onEvent func(models.Event), onResync func(), log logging.Logger) {
	defer close(sub.done)
	ctx := sub.ctx

	for {
		err := s.readLoop(ctx, conn, onEvent, log)
		_ = conn.Close()
		if ctx.Err() != nil {
			return
		}
		log.Warn(ctx, "push channel dropped", "err", err)

		conn, err = s.reconnect(ctx, channel, log)
		if err != nil {
			if ctx.Err() == nil {
				log.Error(ctx, "giving up on push channel", "err", err)
			}
			return
		}
		if !sub.setConn(conn) {
			_ = conn.Close()
			return
		}
		log.Info(ctx, "push channel reconnected")
		if onResync != nil {
			onResync()
		}
	}
}

func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn, onEvent func(models.Event), log logging.Logger) error {
	_ = conn.SetReadDeadline(time.Now().Add(s.readWait))
	conn.SetPingHandler(func(data string) error {
		_ = conn.SetReadDeadline(time.Now().Add(s.readWait))
		err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeWait))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		_ = conn.SetReadDeadline(time.Now().Add(s.readWait))

		var ev models.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			log.Warn(ctx, "dropping undecodable message", "err", err)
			continue
		}
		onEvent(ev)
	}
}

type subscription struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscription) setConn(conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.conn = conn
	return true
}

// Unsubscribe closes the socket and waits for the supervisor to exit. It is
// safe to call more than once.
func (s *subscription) Unsubscribe() error {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		if s.conn != nil {
			_ = s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			_ = s.conn.Close()
		}
		s.mu.Unlock()
	})
	<-s.done
	return nil
}
