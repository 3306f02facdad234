// Package handlers hub.go owns the world and drives the tick loop.
package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sasha-s/go-deadlock"

	"github.com/4cecoder/arena/game"
	"github.com/4cecoder/arena/models"
	"github.com/4cecoder/arena/protocol"
)

// Conn is anything the hub can push frames to.
type Conn interface {
	Send([]byte) error
	Close() error
}

type Hub struct {
	mu             deadlock.Mutex
	engine         *game.Engine
	state          *models.WorldState
	codec          protocol.Codec
	clients        map[string]Conn
	pending        models.Commands
	notified       map[string]bool
	tickInterval   time.Duration
	broadcastEvery uint64
	queue          *MessageQueue
}

func NewHub(engine *game.Engine, codec protocol.Codec, tickInterval time.Duration, broadcastEvery int) *Hub {
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Hub{
		engine:         engine,
		state:          engine.InitialState(),
		codec:          codec,
		clients:        make(map[string]Conn),
		pending:        make(models.Commands),
		notified:       make(map[string]bool),
		tickInterval:   tickInterval,
		broadcastEvery: uint64(broadcastEvery),
		queue:          NewMessageQueue(64),
	}
}

// Run ticks until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case <-ticker.C:
			h.Step()
		}
	}
}

// Step runs one tick over the staged commands and fans out the results.
func (h *Hub) Step() {
	h.mu.Lock()
	defer h.mu.Unlock()

	cmds := h.pending
	h.pending = make(models.Commands)

	if _, err := h.engine.Tick(h.state, cmds); err != nil {
		if errors.Is(err, game.ErrPlacementExhausted) {
			log.Printf("tick %d: degraded replenishment: %v", h.state.Tick, err)
		} else {
			log.Printf("tick %d: %v", h.state.Tick, err)
		}
	}

	h.notifyEliminated()
	if h.state.Tick%h.broadcastEvery == 0 {
		h.broadcastState()
	}
}

// Join places a new player on the field and registers its connection.
func (h *Hub) Join(id, name string, conn Conn) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if name == "" {
		name = "Player " + id[:min(len(id), 8)]
	}
	p, err := h.engine.AddPlayer(h.state, id, name)
	if err != nil {
		return err
	}
	h.clients[id] = conn
	log.Printf("Registered new client: %s (%s) at (%d,%d)", id, p.Name, p.X, p.Y)

	welcome := protocol.Welcome{
		PlayerID: id,
		TickMS:   int(h.tickInterval / time.Millisecond),
		Width:    h.state.FieldSize.Width,
		Height:   h.state.FieldSize.Height,
	}
	h.sendTo(id, conn, protocol.MsgWelcome, welcome)
	return nil
}

// Submit stages cmd for the next tick. A later command from the same player
// replaces an earlier one.
func (h *Hub) Submit(id string, cmd models.Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[id]; !ok {
		return
	}
	h.pending[id] = cmd
}

func (h *Hub) Rename(id, name string) {
	if name == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if p := game.FindPlayer(h.state, id); p != nil {
		p.Name = name
	}
}

// Leave removes a disconnected player from the roster.
func (h *Hub) Leave(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	game.RemovePlayer(h.state, id)
	h.dropClient(id)
}

func (h *Hub) Snapshot() protocol.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()

	return protocol.NewSnapshot(h.state)
}

func (h *Hub) NumPlayers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.state.Players)
}

// notifyEliminated tells each newly eliminated client who beat it and then
// disconnects it. Every ledger entry is reported at most once.
func (h *Hub) notifyEliminated() {
	for loser, winner := range h.state.EliminatedPlayers {
		if h.notified[loser] {
			continue
		}
		h.notified[loser] = true
		log.Printf("Player %s was eliminated by %s", loser, winner)

		c, ok := h.clients[loser]
		if !ok {
			continue
		}
		h.sendTo(loser, c, protocol.MsgEliminated, protocol.Eliminated{PlayerID: loser, WinnerID: winner})
		h.dropClient(loser)
	}
}

func (h *Hub) broadcastState() {
	frame, err := h.codec.Encode(protocol.MsgState, protocol.NewSnapshot(h.state))
	if err != nil {
		log.Println("error encoding state:", err)
		return
	}

	var failed []string
	for id, c := range h.clients {
		if err := c.Send(frame); err != nil {
			log.Printf("error sending state to %s: %v", id, err)
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		game.RemovePlayer(h.state, id)
		h.dropClient(id)
	}
}

func (h *Hub) sendTo(id string, c Conn, t string, payload any) {
	frame, err := h.codec.Encode(t, payload)
	if err != nil {
		log.Printf("error encoding %s for %s: %v", t, id, err)
		return
	}
	if err := c.Send(frame); err != nil {
		log.Printf("error sending %s to %s: %v", t, id, err)
	}
}

func (h *Hub) dropClient(id string) {
	delete(h.pending, id)
	c, ok := h.clients[id]
	if !ok {
		return
	}
	delete(h.clients, id)
	if err := c.Close(); err != nil {
		log.Println("close:", err)
	}
	log.Printf("Unregistered client: %s", id)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id := range h.clients {
		h.dropClient(id)
	}
}
