package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erp/ledger/internal/domain/ledger"
	"github.com/erp/ledger/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SSEMessage is one server-sent event
type SSEMessage struct {
	Event string
	Data  string
	ID    string
}

// ChangesHandler streams change notices for a project over SSE. Clients
// react to any "change" event by reloading the ledger.
type ChangesHandler struct {
	BaseHandler
	subscriber ledger.ChangeSubscriber
	logger     *zap.Logger
	heartbeat  time.Duration
	maxClients int64
	clients    atomic.Int64

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// ChangesOption configures a ChangesHandler
type ChangesOption func(*ChangesHandler)

// WithSSELogger sets the logger
func WithSSELogger(logger *zap.Logger) ChangesOption {
	return func(h *ChangesHandler) {
		h.logger = logger
	}
}

// WithSSEHeartbeat sets the heartbeat interval
func WithSSEHeartbeat(interval time.Duration) ChangesOption {
	return func(h *ChangesHandler) {
		if interval > 0 {
			h.heartbeat = interval
		}
	}
}

// WithSSEMaxClients caps concurrent streams; 0 means unlimited
func WithSSEMaxClients(max int) ChangesOption {
	return func(h *ChangesHandler) {
		h.maxClients = int64(max)
	}
}

// NewChangesHandler creates a new ChangesHandler
func NewChangesHandler(subscriber ledger.ChangeSubscriber, opts ...ChangesOption) *ChangesHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &ChangesHandler{
		subscriber: subscriber,
		logger:     zap.NewNop(),
		heartbeat:  30 * time.Second,
		maxClients: 1000,
		ctx:        ctx,
		cancel:     cancel,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Stop ends every open stream
func (h *ChangesHandler) Stop() {
	h.stopOnce.Do(h.cancel)
}

// ClientCount returns the number of open streams
func (h *ChangesHandler) ClientCount() int {
	return int(h.clients.Load())
}

// Stream godoc
// @ID           streamProjectChanges
// @Summary      Subscribe to a project's change notices
// @Description  Server-sent events. "change" carries {table, project_id, timestamp}; notices for global supplier deletes carry the nil project ID and go to every stream.
// @Tags         ledger
// @Produce      text/event-stream
// @Param        project_id path string true "Project ID" format(uuid)
// @Success      200 {string} string "SSE stream"
// @Failure      503 {object} ErrorResponse
// @Router       /projects/{project_id}/changes [get]
func (h *ChangesHandler) Stream(c *gin.Context) {
	projectID, ok := h.projectID(c)
	if !ok {
		return
	}

	if n := h.clients.Add(1); h.maxClients > 0 && n > h.maxClients {
		h.clients.Add(-1)
		h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, "Maximum number of change streams reached")
		return
	}
	defer h.clients.Add(-1)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	// streams outlive the server's write timeout
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	// Buffered so a slow client never blocks the publisher
	messages := make(chan SSEMessage, 64)
	clientID := uuid.NewString()
	unsubscribe := h.subscriber.Subscribe(func(n ledger.ChangeNotice) {
		if n.ProjectID != projectID && n.ProjectID != uuid.Nil {
			return
		}
		data, err := json.Marshal(n)
		if err != nil {
			return
		}
		select {
		case messages <- SSEMessage{Event: "change", Data: string(data), ID: strconv.FormatInt(n.Timestamp.UnixMilli(), 10)}:
		default:
			h.logger.Warn("change stream full, dropping notice",
				zap.String("client_id", clientID), zap.String("table", n.Table))
		}
	})
	defer unsubscribe()

	h.logger.Debug("change stream opened", zap.String("client_id", clientID), zap.String("project_id", projectID.String()))
	defer h.logger.Debug("change stream closed", zap.String("client_id", clientID))

	writeEvent(c.Writer, SSEMessage{
		Event: "connected",
		Data:  fmt.Sprintf(`{"client_id":%q,"project_id":%q}`, clientID, projectID),
	})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	reqCtx := c.Request.Context()
	for {
		select {
		case <-reqCtx.Done():
			return
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			writeEvent(c.Writer, SSEMessage{Event: "heartbeat", Data: fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix())})
			c.Writer.Flush()
		case msg := <-messages:
			writeEvent(c.Writer, msg)
			c.Writer.Flush()
		}
	}
}

func writeEvent(w io.Writer, msg SSEMessage) {
	if msg.Event != "" {
		fmt.Fprintf(w, "event: %s\n", msg.Event)
	}
	if msg.ID != "" {
		fmt.Fprintf(w, "id: %s\n", msg.ID)
	}
	fmt.Fprintf(w, "data: %s\n\n", msg.Data)
}
