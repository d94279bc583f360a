package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"pddtools/internal/model"
	"pddtools/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for dev
	},
}

// Handler handles the barrier bot WebSocket chat
type Handler struct {
	hub        *Hub
	authSvc    *service.AuthService
	barrierSvc *service.BarrierService
}

// NewHandler creates a new WebSocket handler
func NewHandler(hub *Hub, authSvc *service.AuthService, barrierSvc *service.BarrierService) *Handler {
	return &Handler{
		hub:        hub,
		authSvc:    authSvc,
		barrierSvc: barrierSvc,
	}
}

// BarrierWS handles GET /v1/ws/barrier
func (h *Handler) BarrierWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.authSvc.ValidateUserToken(token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	conn := &Connection{
		UserID: claims.UserID,
		Send:   make(chan []byte, 256),
		Hub:    h.hub,
	}

	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn)

	// Resume or open the dialogue on connect
	turn, err := h.barrierSvc.Current(context.Background(), claims.UserID)
	if err != nil {
		h.hub.SendToUser(claims.UserID, MsgError, map[string]string{"error": err.Error()})
		return
	}
	h.hub.SendToUser(claims.UserID, MsgBotTurn, turn)
}

// answerPayload is the client answer envelope
type answerPayload struct {
	Value model.AnswerValue `json:"value"`
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.hub.SendToUser(conn.UserID, MsgError, map[string]string{"error": "invalid message"})
			continue
		}

		ctx := context.Background()
		switch msg.Type {
		case MsgAnswer:
			var payload answerPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				h.hub.SendToUser(conn.UserID, MsgError, map[string]string{"error": "invalid answer"})
				continue
			}
			turn, err := h.barrierSvc.Answer(ctx, conn.UserID, payload.Value)
			if err != nil {
				h.hub.SendToUser(conn.UserID, MsgError, map[string]string{"error": err.Error()})
				continue
			}
			h.hub.SendToUser(conn.UserID, MsgBotTurn, turn)

		case MsgRestart:
			turn, err := h.barrierSvc.Start(ctx, conn.UserID)
			if err != nil {
				h.hub.SendToUser(conn.UserID, MsgError, map[string]string{"error": err.Error()})
				continue
			}
			h.hub.SendToUser(conn.UserID, MsgBotTurn, turn)

		default:
			h.hub.SendToUser(conn.UserID, MsgError, map[string]string{"error": "unknown message type"})
		}
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
