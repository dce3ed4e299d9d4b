package transport

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/zerchniv/matchserver/internal/match"
	"github.com/zerchniv/matchserver/internal/match/events"
	"github.com/zerchniv/matchserver/internal/match/state"
)

const (
	readLimit    = 4096
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeSeat upgrades r to a WebSocket connection and pumps frames between
// it and the seat's side of actor for as long as the connection lives. A
// dropped connection does not stop the actor: the match keeps running and
// the seat's outbound events keep queuing in its outbox (bounded) until a
// new connection attaches to resume that seat.
func ServeSeat(w http.ResponseWriter, r *http.Request, actor *match.Actor, seat state.Seat, log *zap.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.String("match_id", actor.ID()), zap.Error(err))
		return
	}

	done := make(chan struct{})
	go writePump(conn, actor.Outbox(seat), done, log)
	readPump(conn, actor, seat, log)
	close(done)
}

// readPump decodes inbound frames and submits them to the actor until the
// connection closes or sends something unreadable.
func readPump(conn *websocket.Conn, actor *match.Actor, seat state.Seat, log *zap.Logger) {
	defer conn.Close()

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Debug("websocket read error", zap.String("match_id", actor.ID()), zap.String("seat", string(seat)), zap.Error(err))
			}
			return
		}

		cmd, err := DecodeCommand(seat, env)
		if err != nil {
			log.Debug("dropping malformed command frame", zap.String("match_id", actor.ID()), zap.String("seat", string(seat)), zap.Error(err))
			continue
		}
		actor.Submit(cmd)
	}
}

// writePump drains the seat's outbox and writes each event to conn as a
// JSON frame, interleaved with periodic pings, until done closes or a
// write fails.
func writePump(conn *websocket.Conn, outbox <-chan events.Event, done <-chan struct{}, log *zap.Logger) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case e, ok := <-outbox:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			env, err := EncodeEvent(e)
			if err != nil {
				log.Warn("failed to encode outbound event", zap.Error(err))
				continue
			}
			if err := conn.WriteJSON(env); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
