package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"faqdesk/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000

	wsTypeFAQs = "faqs"
)

// wsEnvelope is the frame pushed to feed subscribers.
type wsEnvelope struct {
	Type string       `json:"type"`
	Data []models.FAQ `json:"data"`
}

// Browsers on any origin may read the public FAQ list.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// faqFeed pushes the FAQ list to one subscriber, skipping polls where nothing changed.
type faqFeed struct {
	h    *Handler
	conn *websocket.Conn
	last []byte
}

// @Summary      FAQ feed
// @Description  WebSocket upgrade; pushes {"type":"faqs","data":[...]} on connect and whenever the list changes, polled every interval (?interval=2s or ?interval_ms=2000, max 10s).
// @Tags         faqs
// @Router       /ws/faqs [get]
func (h *Handler) wsFAQs(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	feed := &faqFeed{h: h, conn: conn}
	ctx := c.Request.Context()
	if err := feed.push(ctx); err != nil {
		if h.log != nil {
			h.log.Infow("ws_initial_push_failed", "err", err)
		}
		return
	}

	poll := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer poll.Stop()
	defer ping.Stop()

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-poll.C:
			if err := feed.push(ctx); err != nil {
				if h.log != nil {
					h.log.Infow("ws_push_failed", "err", err)
				}
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}

// startReader drains control frames and closes done once the peer goes away.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Debugw("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// push sends the current list unless it is identical to the last frame sent.
func (f *faqFeed) push(ctx context.Context) error {
	faqs, err := f.h.services.ListAll(ctx)
	if err != nil {
		if f.h.log != nil {
			f.h.log.Errorw("ws_list_faqs_failed", "err", err)
		}
		return err
	}
	if faqs == nil {
		faqs = []models.FAQ{}
	}

	frame, err := json.Marshal(wsEnvelope{Type: wsTypeFAQs, Data: faqs})
	if err != nil {
		return err
	}
	if f.last != nil && bytes.Equal(frame, f.last) {
		return nil
	}

	_ = f.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := f.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return err
	}
	f.last = frame
	return nil
}
