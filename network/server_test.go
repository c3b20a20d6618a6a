package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
)

var testGlyphs = render.Glyphs{Snake: 'o', Head: 'O', Food: '*', Empty: '.'}

func newRunningRegistry(t *testing.T) *status.Registry {
	t.Helper()
	e := engine.New(engine.NewFeeder([]engine.Coord{engine.At(0, 0)}, 1))
	if err := e.Initialize(5, 3); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	reg := status.NewRegistry()
	snap, _ := e.Snapshot()
	reg.BeginGame(snap)

	res, err := e.Tick()
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	reg.Publish(res)
	return reg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	s := NewServer(nil, status.NewRegistry(), testGlyphs)
	w := get(t, s.Handler(), "/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
}

func TestStateBeforeGame(t *testing.T) {
	s := NewServer(nil, status.NewRegistry(), testGlyphs)
	w := get(t, s.Handler(), "/state")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 before first game, got %d", w.Code)
	}
}

func TestState(t *testing.T) {
	s := NewServer(nil, newRunningRegistry(t), testGlyphs)
	w := get(t, s.Handler(), "/state")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var body struct {
		Tick     uint64   `json:"tick"`
		Length   int      `json:"length"`
		GameOver bool     `json:"game_over"`
		Heading  string   `json:"heading"`
		Rows     []string `json:"rows"`
		Head     struct {
			Row int `json:"row"`
			Col int `json:"col"`
		} `json:"head"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON: %v\n%s", err, w.Body.String())
	}

	if body.Tick != 1 || body.Length != 2 || body.GameOver {
		t.Errorf("Unexpected state %+v", body)
	}
	if body.Heading != "RIGHT" {
		t.Errorf("Expected heading RIGHT, got %q", body.Heading)
	}
	if body.Head.Row != 1 || body.Head.Col != 3 {
		t.Errorf("Expected head at (1,3), got %+v", body.Head)
	}
	want := []string{"*....", "..oO.", "....."}
	if len(body.Rows) != len(want) {
		t.Fatalf("Expected %d rows, got %d", len(want), len(body.Rows))
	}
	for i := range want {
		if body.Rows[i] != want[i] {
			t.Errorf("Row %d: expected %q, got %q", i, want[i], body.Rows[i])
		}
	}
}

func TestStats(t *testing.T) {
	s := NewServer(nil, newRunningRegistry(t), testGlyphs)
	w := get(t, s.Handler(), "/stats")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var stats map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if stats[status.KeyTicks] != 1.0 {
		t.Errorf("Expected 1 tick, got %v", stats[status.KeyTicks])
	}
	if stats[status.KeyGamesStarted] != 1.0 {
		t.Errorf("Expected 1 game, got %v", stats[status.KeyGamesStarted])
	}
}

func TestStartStop(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	s := NewServer(cfg, status.NewRegistry(), testGlyphs)

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	addr := s.Addr()
	if addr == "" {
		t.Fatal("Expected bound address")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
	if err != nil {
		t.Fatalf("GET /ping failed: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}

	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if s.Addr() != "" {
		t.Error("Expected empty address after Stop")
	}
	// Second stop is a no-op
	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("Second Stop failed: %v", err)
	}
}
