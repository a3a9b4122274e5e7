package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"dino-game-service/internal/app"
	"dino-game-service/internal/domain"
	"dino-game-service/internal/infra/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.NewSessionStore()
	content := memory.NewContentRepository(memory.NewStaticContentLoader(sampleCatalogs(), sampleCases()), time.Minute)
	service := app.NewGameService(store, content, app.Options{})
	wsHandler := NewWSHandler(service, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func dial(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	u := "ws" + server.URL[len("http"):] + "/ws?" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestWebSocketQuizFlow(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "mode=quiz&catalogId=cat-1")

	readNext(conn, t, "session")
	readNext(conn, t, "snapshot")

	if err := conn.WriteJSON(map[string]any{"type": "begin"}); err != nil {
		t.Fatalf("write begin: %v", err)
	}
	_, payload := readNext(conn, t, "snapshot")
	if payload["phase"] != string(domain.PhaseActive) {
		t.Fatalf("expected active phase, got %v", payload["phase"])
	}

	answer := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"deceptive": true},
	}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	_, payload = readNext(conn, t, "feedback")
	if payload["correct"] != true {
		t.Fatalf("expected correct feedback, got %v", payload)
	}

	if err := conn.WriteJSON(map[string]any{"type": "advance"}); err != nil {
		t.Fatalf("write advance: %v", err)
	}
	_, payload = readNext(conn, t, "snapshot")
	if payload["phase"] != string(domain.PhaseResults) {
		t.Fatalf("expected results phase, got %v", payload["phase"])
	}
	_, payload = readNext(conn, t, "summary")
	if payload["correctCount"] != float64(1) {
		t.Fatalf("expected one correct answer, got %v", payload)
	}
}

func TestWebSocketQuizRejectsAnswerBeforeBegin(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "mode=quiz&catalogId=cat-1")

	readNext(conn, t, "session")
	readNext(conn, t, "snapshot")

	answer := map[string]any{
		"type":    "answer",
		"payload": map[string]any{"deceptive": true},
	}
	if err := conn.WriteJSON(answer); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	readNext(conn, t, "error")
}

func TestWebSocketCaseFlow(t *testing.T) {
	server := newTestServer(t)
	conn := dial(t, server, "mode=case&caseId=case-1")

	readNext(conn, t, "session")
	readNext(conn, t, "case")

	if err := conn.WriteJSON(map[string]any{
		"type":    "select",
		"payload": map[string]any{"zoneId": "z1"},
	}); err != nil {
		t.Fatalf("write select: %v", err)
	}
	_, payload := readNext(conn, t, "selection")
	if payload["opened"] != true {
		t.Fatalf("expected selection opened, got %v", payload)
	}

	if err := conn.WriteJSON(map[string]any{
		"type":    "propose",
		"payload": map[string]any{"reason": "spoofed-domain"},
	}); err != nil {
		t.Fatalf("write propose: %v", err)
	}
	_, payload = readNext(conn, t, "proposal")
	if payload["match"] != true {
		t.Fatalf("expected matching proposal, got %v", payload)
	}

	if err := conn.WriteJSON(map[string]any{
		"type":    "verdict",
		"payload": map[string]any{"verdict": "malicious"},
	}); err != nil {
		t.Fatalf("write verdict: %v", err)
	}
	readNext(conn, t, "case")

	if err := conn.WriteJSON(map[string]any{"type": "finalize"}); err != nil {
		t.Fatalf("write finalize: %v", err)
	}
	_, payload = readNext(conn, t, "outcome")
	if payload["solved"] != true {
		t.Fatalf("expected solved outcome, got %v", payload)
	}
}

func TestWebSocketRejectsUnknownMode(t *testing.T) {
	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/ws?mode=arcade")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}

func sampleCatalogs() map[string]domain.Catalog {
	return map[string]domain.Catalog{
		"cat-1": {
			ID: "cat-1",
			Questions: []domain.Question{
				{
					ID:          "q1",
					Category:    domain.CategoryEmail,
					Payload:     domain.Payload{Sender: "security@amaz0n.example", Subject: "Verify now"},
					Deceptive:   true,
					Difficulty:  1,
					Explanation: "Spoofed sender.",
					Flags:       []string{"spoofed-domain"},
				},
			},
		},
	}
}

func sampleCases() map[string]domain.ClueCase {
	return map[string]domain.ClueCase{
		"case-1": {
			ID:        "case-1",
			Title:     "Test case",
			Brief:     "Inspect the message.",
			Malicious: true,
			Zones: []domain.Zone{
				{ID: "z1", Reason: "spoofed-domain", Label: "sender", Note: "Lookalike domain."},
			},
			Reasons: []string{"spoofed-domain", "urgency"},
		},
	}
}
