package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"dino-game-service/internal/app"
	"dino-game-service/internal/domain"
)

type WSHandler struct {
	service  *app.GameService
	logger   zerolog.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Deceptive bool `json:"deceptive"`
}

type zonePayload struct {
	ZoneID string `json:"zoneId"`
}

type reasonPayload struct {
	Reason string `json:"reason"`
}

type verdictPayload struct {
	Verdict string `json:"verdict"`
}

type sessionStarted struct {
	SessionID string `json:"sessionId"`
}

type introState struct {
	Step int `json:"step"`
}

type hintText struct {
	Hint string `json:"hint"`
}

type selectionState struct {
	ZoneID string `json:"zoneId,omitempty"`
	Opened bool   `json:"opened"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the game
// use cases. Each connection owns exactly one session; closing the socket
// tears the session down.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "quiz"
	}
	if mode != "quiz" && mode != "case" {
		http.Error(w, "mode must be quiz or case", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("ws upgrade failed")
		return
	}
	defer conn.Close()

	if mode == "case" {
		h.serveCase(conn, r)
		return
	}
	h.serveQuiz(conn, r)
}

func (h *WSHandler) serveQuiz(conn *websocket.Conn, r *http.Request) {
	catalogID := r.URL.Query().Get("catalogId")
	if catalogID == "" {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "missing catalogId"}})
		return
	}
	flat := r.URL.Query().Get("variant") == "flat"

	sessionID, snap, err := h.service.StartQuiz(r.Context(), catalogID, flat)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.End(sessionID)

	events, cancel, err := h.service.Subscribe(sessionID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()

	send := make(chan outboundMessage[any], 16)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	eventsDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				h.logger.Debug().Err(err).Msg("ws write error")
				return
			}
		}
	}()

	go func() {
		defer close(eventsDone)
		for {
			select {
			case event, ok := <-events:
				if !ok {
					return
				}
				select {
				case send <- outboundMessage[any]{Type: event.Type, Payload: event}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "session", Payload: sessionStarted{SessionID: sessionID}}
	send <- outboundMessage[any]{Type: "snapshot", Payload: snap}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "intro":
			step, err := h.service.AdvanceIntro(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "intro", Payload: introState{Step: step}}
		case "begin":
			snap, err := h.service.Begin(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "snapshot", Payload: snap}
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid answer payload"}}
				continue
			}
			choice := payload.Deceptive
			feedback, err := h.service.SubmitAnswer(sessionID, &choice)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "feedback", Payload: feedback}
		case "advance":
			snap, err := h.service.Advance(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "snapshot", Payload: snap}
			if snap.Phase == domain.PhaseResults {
				summary, err := h.service.Summary(sessionID)
				if err != nil {
					send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
					continue
				}
				send <- outboundMessage[any]{Type: "summary", Payload: summary}
			}
		case "hint":
			hint, err := h.service.Hint(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "hint", Payload: hintText{Hint: hint}}
		case "restart":
			snap, err := h.service.Restart(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "snapshot", Payload: snap}
		case "snapshot":
			snap, err := h.service.Snapshot(sessionID)
			if err != nil {
				send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				continue
			}
			send <- outboundMessage[any]{Type: "snapshot", Payload: snap}
		default:
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
	}

	close(closeSignals)
	<-eventsDone
	close(send)
	<-writerDone
}

func (h *WSHandler) serveCase(conn *websocket.Conn, r *http.Request) {
	caseID := r.URL.Query().Get("caseId")
	if caseID == "" {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: "missing caseId"}})
		return
	}

	sessionID, snap, err := h.service.StartCase(r.Context(), caseID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer h.service.End(sessionID)

	if err := conn.WriteJSON(outboundMessage[any]{Type: "session", Payload: sessionStarted{SessionID: sessionID}}); err != nil {
		return
	}
	if err := conn.WriteJSON(outboundMessage[any]{Type: "case", Payload: snap}); err != nil {
		return
	}

	// Case sessions have no countdown, so a single read loop writing
	// responses inline is enough.
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			return
		}
		var outbound outboundMessage[any]
		switch inbound.Type {
		case "select":
			var payload zonePayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid select payload"}}
				break
			}
			opened, err := h.service.SelectZone(sessionID, payload.ZoneID)
			if err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "selection", Payload: selectionState{ZoneID: payload.ZoneID, Opened: opened}}
		case "cancel":
			if err := h.service.CancelSelection(sessionID); err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "selection", Payload: selectionState{Opened: false}}
		case "propose":
			var payload reasonPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid propose payload"}}
				break
			}
			result, err := h.service.ProposeReason(sessionID, payload.Reason)
			if err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "proposal", Payload: result}
		case "verdict":
			var payload verdictPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid verdict payload"}}
				break
			}
			if err := h.service.SetVerdict(sessionID, domain.Verdict(payload.Verdict)); err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			cs, err := h.service.CaseSnapshot(sessionID)
			if err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "case", Payload: cs}
		case "finalize":
			outcome, err := h.service.FinalizeCase(sessionID)
			if err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "outcome", Payload: outcome}
		case "snapshot":
			cs, err := h.service.CaseSnapshot(sessionID)
			if err != nil {
				outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
				break
			}
			outbound = outboundMessage[any]{Type: "case", Payload: cs}
		default:
			outbound = outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
		}
		if err := conn.WriteJSON(outbound); err != nil {
			return
		}
	}
}
