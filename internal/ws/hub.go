package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/quizforge/quizforge/internal/scoring"
	"github.com/quizforge/quizforge/internal/telemetry"
)

// Rooms are keyed by session ID; a browser joins its own session's room
// to receive quiz lifecycle events while requests are in flight.
var (
	mu    sync.RWMutex
	rooms = map[string]map[*websocket.Conn]struct{}{}
)

type Action string

const (
	ActionJoin  Action = "join"
	ActionLeave Action = "leave"
)

type Event string

const (
	EventQuizGenerated Event = "quiz.event.generated"
	EventQuizAnswered  Event = "quiz.event.answered"
	EventQuizScored    Event = "quiz.event.scored"
	EventQuizError     Event = "quiz.event.error"
)

type PayloadEvent struct {
	Event Event `json:"event"`
	Data  any   `json:"data,omitempty"`
}

type ClientMessage struct {
	Action  Action `json:"action"`
	Session string `json:"session"`
}

func HandleWS(c *websocket.Conn) {
	tlog := telemetry.L().With().Str("module", "ws").Logger()
	tlog.Info().Msg("ws_connected")
	defer func() {
		mu.Lock()
		for room := range rooms {
			delete(rooms[room], c)
		}
		mu.Unlock()
		_ = c.Close()
	}()

	for {
		_, msg, err := c.ReadMessage()
		if err != nil {
			break
		}

		var cm ClientMessage
		if err := json.Unmarshal(msg, &cm); err != nil {
			continue
		}

		switch cm.Action {
		case ActionJoin:
			joinRoom(c, cm.Session)
		case ActionLeave:
			leaveRoom(c, cm.Session)
		}
	}
}

func joinRoom(c *websocket.Conn, sid string) {
	if sid == "" {
		return
	}
	mu.Lock()
	if rooms[sid] == nil {
		rooms[sid] = map[*websocket.Conn]struct{}{}
	}
	rooms[sid][c] = struct{}{}
	mu.Unlock()
}

func leaveRoom(c *websocket.Conn, sid string) {
	if sid == "" {
		return
	}
	mu.Lock()
	delete(rooms[sid], c)
	mu.Unlock()
}

func broadcast(sid string, pl PayloadEvent) {
	mu.RLock()
	conns := rooms[sid]
	mu.RUnlock()

	for c := range conns {
		_ = c.WriteJSON(pl)
	}
}

// BroadcastQuizGenerated tells the session a fresh quiz is ready to render.
func BroadcastQuizGenerated(sid string, questionCount int) {
	broadcast(sid, PayloadEvent{
		Event: EventQuizGenerated,
		Data:  map[string]any{"question_count": questionCount},
	})
}

// BroadcastAnswered mirrors an incremental answer back to the session's
// other tabs.
func BroadcastAnswered(sid string, question, option int) {
	broadcast(sid, PayloadEvent{
		Event: EventQuizAnswered,
		Data:  map[string]any{"question": question, "option": option},
	})
}

func BroadcastScored(sid string, res scoring.Result) {
	broadcast(sid, PayloadEvent{Event: EventQuizScored, Data: res})
}

func BroadcastError(sid string, msg string) {
	broadcast(sid, PayloadEvent{Event: EventQuizError, Data: msg})
}
