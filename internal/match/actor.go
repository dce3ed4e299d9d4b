// Package match owns the match actor: the single goroutine that is the
// sole writer of one match's state. Each match is a single-writer actor:
// one goroutine owns a command channel and the state value. Everything
// else in this package's subpackages (state, rules, dispatch, events) is
// pure and safe to call from any goroutine as long as only one goroutine
// ever calls it for a given match: the actor is what enforces that.
package match

import (
	"time"

	"go.uber.org/zap"

	"github.com/zerchniv/matchserver/internal/logging"
	"github.com/zerchniv/matchserver/internal/match/dispatch"
	"github.com/zerchniv/matchserver/internal/match/events"
	"github.com/zerchniv/matchserver/internal/match/state"
)

// Config bounds an actor's timers and channel capacity. Zero-value fields
// are replaced by DefaultConfig's values where a caller only wants to
// override one knob.
type Config struct {
	// TurnDuration is how long the active seat has to act before the
	// actor forces an end_turn on its behalf.
	TurnDuration time.Duration
	// IdleDuration is how long the match may go with no command from
	// either seat before it ends with reason=timeout.
	IdleDuration time.Duration
	InboxSize    int
	OutboxSize   int
}

// DefaultConfig mirrors the timings a casual match uses absent an
// operator override via internal/config.
func DefaultConfig() Config {
	return Config{
		TurnDuration: 90 * time.Second,
		IdleDuration: 5 * time.Minute,
		InboxSize:    32,
		OutboxSize:   64,
	}
}

// Actor is the single writer of one match's state: it owns the
// dispatcher, the inbound command queue, and the per-seat outbound event
// channels, all pumped from one goroutine (Run). It follows the same
// channel-handoff shape as an accept-loop/session pair, generalized here
// from "hand off new connections" to "hand off commands and events"
// around a single dispatcher.
type Actor struct {
	id         string
	dispatcher *dispatch.Dispatcher
	log        *zap.Logger
	cfg        Config

	inbox    chan dispatch.Command
	outboxes map[state.Seat]chan events.Event
	closeCh  chan struct{}
	doneCh   chan struct{}
	started  time.Time
}

// New builds an actor over an existing, game-started dispatcher. Run must
// be started in its own goroutine before Submit or Outbox are useful.
func New(id string, d *dispatch.Dispatcher, log *zap.Logger, cfg Config) *Actor {
	if log == nil {
		log = logging.Nop()
	}
	def := DefaultConfig()
	if cfg.TurnDuration == 0 {
		cfg.TurnDuration = def.TurnDuration
	}
	if cfg.IdleDuration == 0 {
		cfg.IdleDuration = def.IdleDuration
	}
	if cfg.InboxSize == 0 {
		cfg.InboxSize = def.InboxSize
	}
	if cfg.OutboxSize == 0 {
		cfg.OutboxSize = def.OutboxSize
	}
	return &Actor{
		id:         id,
		dispatcher: d,
		log:        log,
		cfg:        cfg,
		inbox:      make(chan dispatch.Command, cfg.InboxSize),
		outboxes: map[state.Seat]chan events.Event{
			state.SeatP1: make(chan events.Event, cfg.OutboxSize),
			state.SeatP2: make(chan events.Event, cfg.OutboxSize),
		},
		closeCh: make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// ID returns the match id this actor runs.
func (a *Actor) ID() string { return a.id }

// Done returns a channel that closes once Run has returned, for a
// registry or supervisor to reap the actor's bookkeeping.
func (a *Actor) Done() <-chan struct{} { return a.doneCh }

// Submit enqueues a client-originated command. A full inbox drops the
// command rather than blocking the caller's read loop; the client will
// notice nothing happened and can retry. A dropped command is silent,
// not an error event.
func (a *Actor) Submit(cmd dispatch.Command) {
	select {
	case a.inbox <- cmd:
	default:
		a.log.Warn("match actor inbox full, dropping command",
			logging.MatchFields(a.id, string(cmd.Seat()), string(cmd.Type()))...)
	}
}

// Outbox returns the seat's outbound event channel. The transport layer
// is the only intended reader: one goroutine per seat draining this and
// writing each event to that seat's WebSocket connection.
func (a *Actor) Outbox(seat state.Seat) <-chan events.Event {
	return a.outboxes[seat]
}

// Stop asks Run to exit at its next opportunity, for server shutdown.
// Safe to call more than once or after Run has already exited on its own.
func (a *Actor) Stop() {
	select {
	case <-a.closeCh:
	default:
		close(a.closeCh)
	}
}

// Run is the actor's goroutine body: the sole reader of inbox and sole
// writer of the dispatcher's state for as long as the match runs. It
// returns once the match ends (Result set), Stop is called, or the idle
// timeout fires.
func (a *Actor) Run() {
	defer close(a.doneCh)
	a.started = time.Now()
	a.publish(a.dispatcher.GameStart())

	idle := time.NewTimer(a.cfg.IdleDuration)
	turn := time.NewTimer(a.cfg.TurnDuration)
	defer idle.Stop()
	defer turn.Stop()

	for {
		select {
		case cmd := <-a.inbox:
			resetTimer(idle, a.cfg.IdleDuration)
			evts := a.dispatcher.Dispatch(cmd)
			a.publish(evts)
			if a.dispatcher.State.Result != nil {
				a.logGameOver()
				return
			}
			resetTimer(turn, a.cfg.TurnDuration)

		case <-turn.C:
			seat := a.dispatcher.State.ActiveSeat
			a.log.Debug("turn timer fired, forcing end_turn",
				logging.MatchFields(a.id, string(seat), "end_turn")...)
			evts := a.dispatcher.Dispatch(dispatch.EndTurnCommand{FromSeat: seat})
			a.publish(evts)
			if a.dispatcher.State.Result != nil {
				a.logGameOver()
				return
			}
			turn.Reset(a.cfg.TurnDuration)

		case <-idle.C:
			a.log.Info("match idle timeout, ending match", logging.MatchFields(a.id, "", "")...)
			a.publish(a.dispatcher.Timeout())
			a.logGameOver()
			return

		case <-a.closeCh:
			return
		}
	}
}

// resetTimer stops t, draining a pending fire if one raced ahead of the
// stop, before rearming it for d. Required any time Reset is called on a
// timer that might not have been received from yet (time.Timer's
// documented reuse caveat).
func resetTimer(t *time.Timer, d time.Duration) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	t.Reset(d)
}

// publish fans evts out to the per-seat outboxes: a broadcast event is
// copied unchanged to both seats, a private event goes only to its
// addressed seat. Seat-filtered state views (events.BuildStateView) are
// built by the dispatcher as private per-seat events, not broadcasts.
func (a *Actor) publish(evts []events.Event) {
	for _, e := range evts {
		if e.Broadcast {
			a.send(state.SeatP1, e)
			a.send(state.SeatP2, e)
			continue
		}
		a.send(e.Seat, e)
	}
}

func (a *Actor) send(seat state.Seat, e events.Event) {
	ch, ok := a.outboxes[seat]
	if !ok {
		return
	}
	select {
	case ch <- e:
	default:
		a.log.Warn("match actor outbox full, dropping event",
			logging.MatchFields(a.id, string(seat), string(e.Kind))...)
	}
}

// logGameOver writes a structured match-summary line: winner, reason,
// round count, and wall clock duration, once the dispatcher has recorded
// a terminal result.
func (a *Actor) logGameOver() {
	result := a.dispatcher.State.Result
	if result == nil {
		return
	}
	a.log.Info("match finished",
		zap.String("match_id", a.id),
		zap.String("winner", string(result.Winner)),
		zap.String("reason", string(result.Reason)),
		zap.Int("round", a.dispatcher.State.RoundNumber),
		zap.Duration("duration", time.Since(a.started)),
	)
}
