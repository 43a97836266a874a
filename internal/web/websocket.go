package web

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kapu/pitch-ai-go/internal/constants"
	"github.com/kapu/pitch-ai-go/internal/domain"
	"github.com/kapu/pitch-ai-go/internal/pitch"
	"go.uber.org/zap"
)

const (
	wsTypeStatus = "status"
	wsTypeResult = "result"
	wsTypeError  = "error"

	wsStatusGenerating = "generating"
)

type wsRequest struct {
	Idea string `json:"idea"`
}

type wsMessage struct {
	Type      string                `json:"type"`
	Status    string                `json:"status,omitempty"`
	RequestID string                `json:"requestId,omitempty"`
	Pitch     string                `json:"pitch,omitempty"`
	LogoURL   string                `json:"logoUrl,omitempty"`
	Sections  []domain.PitchSection `json:"sections,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// wsConn serializes writes; gorilla allows one concurrent writer.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsConn) writeJSON(msg wsMessage) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(constants.WebSocketConfig.WriteWait))
	return c.conn.WriteJSON(msg)
}

// handleWebSocket accepts one idea per message and answers with a status
// message followed by a result or error message. Requests on one
// connection are handled in order.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ws := &wsConn{conn: conn}
	conn.SetReadLimit(constants.WebSocketConfig.ReadLimit)
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(constants.WebSocketConfig.PongWait))
	})

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go s.pingLoop(ctx, conn)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(constants.WebSocketConfig.PongWait))

		var req wsRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("WebSocket read failed", zap.Error(err))
			}
			return
		}

		if err := s.serveWebSocketRequest(ctx, ws, req); err != nil {
			s.logger.Warn("WebSocket write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) serveWebSocketRequest(ctx context.Context, ws *wsConn, req wsRequest) error {
	idea, err := s.validateIdea(req.Idea)
	if err != nil {
		return ws.writeJSON(wsMessage{Type: wsTypeError, Error: constants.UserMessages.EmptyIdea})
	}

	ctx, requestID := withRequestID(ctx)

	if err := ws.writeJSON(wsMessage{Type: wsTypeStatus, Status: wsStatusGenerating, RequestID: requestID}); err != nil {
		return err
	}

	result, err := s.generator.Generate(ctx, idea)
	if err != nil {
		return ws.writeJSON(wsMessage{
			Type:      wsTypeError,
			RequestID: requestID,
			Error:     constants.UserMessages.GenerationFailed,
		})
	}

	return ws.writeJSON(wsMessage{
		Type:      wsTypeResult,
		RequestID: requestID,
		Pitch:     result.PitchText,
		LogoURL:   result.LogoImage,
		Sections:  pitch.Parse(result.PitchText),
	})
}

func (s *Server) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(constants.WebSocketConfig.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deadline := time.Now().Add(constants.WebSocketConfig.WriteWait)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				s.logger.Debug("WebSocket ping failed", zap.Error(err))
				return
			}
		}
	}
}
