package handlers

import (
	"net/http"
)

type serverInfo struct {
	Tick    uint64 `json:"tick"`
	Players int    `json:"players"`
	Coins   int    `json:"coins"`
	Meteors int    `json:"meteors"`
	Codec   string `json:"codec"`
	TickMS  int64  `json:"tickMs"`
}

func (h *Hub) HandleRoot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	info := serverInfo{
		Tick:    h.state.Tick,
		Players: len(h.state.Players),
		Coins:   len(h.state.Coins),
		Meteors: len(h.state.Meteors),
		Codec:   h.codec.Name(),
		TickMS:  h.tickInterval.Milliseconds(),
	}
	h.mu.Unlock()

	writeJSON(w, info)
}
