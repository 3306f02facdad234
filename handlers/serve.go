// Package handlers serve.go
package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/4cecoder/arena/models"
	"github.com/4cecoder/arena/protocol"
)

// handleClientMessage dispatches one frame read off a client's socket.
func handleClientMessage(c *Client, message []byte) {
	env, err := protocol.DecodeEnvelope(message)
	if err != nil {
		log.Printf("Error decoding message from client %s: %v", c.ID, err)
		return
	}

	switch env.Type {
	case protocol.MsgMove:
		move, err := protocol.DecodePayload[protocol.Move](env)
		if err != nil {
			log.Printf("Error decoding move message from client %s: %v", c.ID, err)
			return
		}
		cmd, ok := models.ParseCommand(move.Direction)
		if !ok {
			log.Printf("Invalid direction %q for client %s", move.Direction, c.ID)
			return
		}
		c.hub.Submit(c.ID, cmd)
	case protocol.MsgJoin:
		join, err := protocol.DecodePayload[protocol.Join](env)
		if err != nil {
			log.Printf("Error decoding join message from client %s: %v", c.ID, err)
			return
		}
		c.hub.Rename(c.ID, join.Name)
	default:
		log.Printf("Unknown game message type from client %s: %s", c.ID, env.Type)
	}
}

// HandleState serves the current snapshot as JSON.
func (h *Hub) HandleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Snapshot())
}

// HandleEliminated serves the elimination ledger.
func (h *Hub) HandleEliminated(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Snapshot().Eliminated)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
