package handlers

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/4cecoder/arena/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	CheckOrigin:       func(r *http.Request) bool { return true },
	EnableCompression: false, // Disable compression
}

// HandleWebSocket upgrades the request, joins a new player and pumps
// messages until the connection goes away.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Error upgrading to WebSocket:", err)
		return
	}

	clientID := generateClientID()
	log.Printf("Creating new player: %s", clientID)
	client := NewClient(conn, clientID, h)

	if err := h.Join(clientID, r.URL.Query().Get("name"), client); err != nil {
		log.Printf("Error joining client %s: %v", clientID, err)
		if frame, encErr := h.codec.Encode(protocol.MsgError, protocol.Error{Message: err.Error()}); encErr == nil {
			_ = conn.WriteMessage(client.frameType, frame)
		}
		client.abort()
		return
	}

	go client.WritePump()
	client.ReadPump()
}

func generateClientID() string {
	return uuid.New().String()
}
