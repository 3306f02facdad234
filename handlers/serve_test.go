package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/4cecoder/arena/protocol"
)

func TestHandleState(t *testing.T) {
	h := newTestHub(t, 1)
	if err := h.Join("p1", "alice", newFakeConn()); err != nil {
		t.Fatalf("Join: %v", err)
	}
	h.Step()

	rec := httptest.NewRecorder()
	h.HandleState(rec, httptest.NewRequest(http.MethodGet, "/state", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var snap protocol.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Tick != 1 || len(snap.Players) != 1 {
		t.Fatalf("snapshot tick=%d players=%d", snap.Tick, len(snap.Players))
	}
}

func TestHandleRoot(t *testing.T) {
	h := newTestHub(t, 1)
	h.Step()

	rec := httptest.NewRecorder()
	h.HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	var info serverInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if info.Tick != 1 || info.Codec != "json" || info.TickMS != 100 || info.Coins != 100 {
		t.Fatalf("info = %+v", info)
	}
}

func TestHandleEliminated(t *testing.T) {
	h := newTestHub(t, 1)
	h.state.EliminatedPlayers["x"] = "y"

	rec := httptest.NewRecorder()
	h.HandleEliminated(rec, httptest.NewRequest(http.MethodGet, "/eliminated", nil))
	var ledger map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &ledger); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ledger["x"] != "y" || len(ledger) != 1 {
		t.Fatalf("ledger = %v", ledger)
	}
}
