// Package room implements the per-room session engine. Each Room runs one
// goroutine that owns the game state, the role assignment, and the set of
// connected clients; every mutation flows through its inbox, so nothing in a
// room ever races and no lock spans two rooms.
package room

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
	"github.com/sam-patel-1289/crossfire-codenames/internal/roles"
)

var ErrRoomNotReady = errors.New("room is not ready yet")
var ErrRoomClosed = errors.New("room is closed")
var ErrNotJoined = errors.New("client is not joined to this room")
var ErrNotAuthorized = errors.New("client does not hold the authoritative role")
var ErrInvalidSlot = errors.New("invalid role slot")
var ErrHostPresent = errors.New("room already has a host connection")
var ErrSessionReplaced = errors.New("a newer connection took over this session")

// Kind distinguishes the three connection categories.
type Kind string

const (
	KindHost      Kind = "host"
	KindPlayer    Kind = "player"
	KindSpectator Kind = "spectator"
)

// Timeouts bounds every wait the room performs.
type Timeouts struct {
	// JoinWait caps how long an admitted client may wait for the board.
	JoinWait time.Duration
	// HostGrace is how long a room survives without its host.
	HostGrace time.Duration
	// SlotGrace is how long a disconnected player's slot stays reserved.
	SlotGrace time.Duration
	// Idle tears the room down after this long with no connected clients.
	Idle time.Duration
}

func DefaultTimeouts() Timeouts {
	return Timeouts{
		JoinWait:  5 * time.Second,
		HostGrace: 30 * time.Second,
		SlotGrace: 30 * time.Second,
		Idle:      30 * time.Minute,
	}
}

// Snapshot is one synchronized view of the room, already redacted for its
// recipient. Revision is strictly monotonic; a client that observes a gap
// reconnects for a fresh snapshot instead of patching.
type Snapshot struct {
	Revision int
	State    game.State
	Roles    map[roles.Slot]roles.Status
	YourSlot roles.Slot
}

type Msg interface{ isRoomMsg() }

// Join admits a connection. Reply receives nil once the client is joined and
// guaranteed a snapshot on Outbox, or the admission error. For player and
// spectator connections the reply is deferred until the board exists, bounded
// by Timeouts.JoinWait.
type Join struct {
	ClientID string
	Kind     Kind
	Slot     roles.Slot // player joins only
	Outbox   chan Snapshot
	Reply    chan error
}

// Leave detaches a connection. Outbox identifies which connection is
// leaving: a Leave whose outbox no longer matches the registered handle is a
// stale goodbye from a superseded connection and is ignored, so a reconnect
// racing its old connection's teardown cannot evict itself. A nil Outbox
// matches unconditionally.
type Leave struct {
	ClientID string
	Outbox   chan Snapshot
}

// FromClient carries a game command. Reply receives the rejection reason, or
// nil when the command was applied and broadcast.
type FromClient struct {
	ClientID string
	Cmd      game.Command
	Reply    chan error
}

// PublishBoard installs the dealt board. Sent once by the host connection
// after room creation; pending joins are flushed with their first snapshot.
type PublishBoard struct {
	Cards    []game.Card
	Starting game.Team
}

// GetView reflects internal state without data races; tests only.
type GetView struct{ Reply chan View }

type Shutdown struct{}

func (Join) isRoomMsg()         {}
func (Leave) isRoomMsg()        {}
func (FromClient) isRoomMsg()   {}
func (PublishBoard) isRoomMsg() {}
func (GetView) isRoomMsg()      {}
func (Shutdown) isRoomMsg()     {}

// internal timer messages
type joinWaitExpired struct{ ClientID string }
type hostGraceExpired struct{ gen int }
type slotGraceExpired struct {
	ClientID string
	gen      int
}
type idleExpired struct{}

func (joinWaitExpired) isRoomMsg()  {}
func (hostGraceExpired) isRoomMsg() {}
func (slotGraceExpired) isRoomMsg() {}
func (idleExpired) isRoomMsg()      {}

type View struct {
	Revision      int
	NumClients    int
	NumPending    int
	BoardReady    bool
	HostConnected bool
	State         game.State
	Roles         map[roles.Slot]roles.Status
}

type handle struct {
	kind   Kind
	outbox chan Snapshot
}

type pendingJoin struct {
	req   Join
	timer *time.Timer
}

type Room struct {
	code    string
	inbox   chan Msg
	ctx     context.Context
	cancel  context.CancelFunc
	log     *zap.Logger
	tm      Timeouts
	onClose func()

	rev        int
	lastSent   int
	state      game.State
	boardReady bool
	assign     *roles.Assignment
	clients    map[string]*handle
	pending    map[string]*pendingJoin

	hostID        string
	hostConnected bool
	hostGraceGen  int
	slotGraceGen  map[string]int

	idleTimer  *time.Timer
	lastActive time.Time
}

// New starts a room actor. onClose runs exactly once, after the loop exits,
// so the registry can unlink the room.
func New(parent context.Context, code string, tm Timeouts, log *zap.Logger, onClose func()) *Room {
	ctx, cancel := context.WithCancel(parent)
	r := &Room{
		code:         code,
		inbox:        make(chan Msg, 64),
		ctx:          ctx,
		cancel:       cancel,
		log:          log.With(zap.String("room", code)),
		tm:           tm,
		onClose:      onClose,
		assign:       roles.NewAssignment(),
		clients:      make(map[string]*handle),
		pending:      make(map[string]*pendingJoin),
		slotGraceGen: make(map[string]int),
		lastActive:   time.Now(),
	}
	if tm.Idle > 0 {
		r.idleTimer = time.AfterFunc(tm.Idle, func() {
			r.Post(idleExpired{})
		})
	}
	go r.loop()
	return r
}

func (r *Room) Inbox() chan<- Msg { return r.inbox }

func (r *Room) Code() string { return r.code }

// Post sends msg unless the room has shut down. Timer callbacks and the
// transport layer use it so they never block on a dead inbox.
func (r *Room) Post(msg Msg) bool {
	select {
	case r.inbox <- msg:
		return true
	case <-r.ctx.Done():
		return false
	}
}

func (r *Room) loop() {
	defer func() {
		if r.onClose != nil {
			r.onClose()
		}
	}()
	for {
		select {
		case <-r.ctx.Done():
			r.teardown()
			return

		case m := <-r.inbox:
			switch msg := m.(type) {
			case Join:
				r.handleJoin(msg)
			case Leave:
				r.handleLeave(msg)
			case FromClient:
				r.handleCommand(msg)
			case PublishBoard:
				r.handlePublishBoard(msg)
			case joinWaitExpired:
				r.expirePendingJoin(msg.ClientID)
			case hostGraceExpired:
				if msg.gen == r.hostGraceGen && !r.hostConnected {
					r.log.Info("host grace expired, closing room")
					r.teardown()
					return
				}
			case slotGraceExpired:
				r.expireSlotGrace(msg.ClientID, msg.gen)
			case idleExpired:
				if r.idleFired() {
					return
				}
			case GetView:
				msg.Reply <- View{
					Revision:      r.rev,
					NumClients:    len(r.clients),
					NumPending:    len(r.pending),
					BoardReady:    r.boardReady,
					HostConnected: r.hostConnected,
					State:         r.state,
					Roles:         r.assign.Snapshot(),
				}
			case Shutdown:
				r.teardown()
				return
			}
		}
	}
}

func (r *Room) handleJoin(msg Join) {
	r.touch()

	switch msg.Kind {
	case KindHost:
		if r.hostConnected && r.hostID != msg.ClientID {
			msg.Reply <- ErrHostPresent
			return
		}
		r.hostID = msg.ClientID
		r.hostConnected = true
		r.hostGraceGen++ // cancels any pending grace fire
		r.adopt(msg.ClientID, &handle{kind: KindHost, outbox: msg.Outbox})
		msg.Reply <- nil
		if r.boardReady {
			r.sendTo(msg.ClientID)
		}
		return

	case KindPlayer:
		if !msg.Slot.Valid() {
			msg.Reply <- ErrInvalidSlot
			return
		}
		// Claim before the board exists so the role picker stays truthful
		// for everyone racing the host's handshake.
		if err := r.assign.Claim(msg.Slot, msg.ClientID); err != nil {
			msg.Reply <- err
			return
		}
		r.slotGraceGen[msg.ClientID]++ // reconnect cancels pending release

	case KindSpectator:
		// no slot to claim

	default:
		msg.Reply <- ErrInvalidSlot
		return
	}

	if !r.boardReady {
		r.parkJoin(msg)
		return
	}

	r.adopt(msg.ClientID, &handle{kind: msg.Kind, outbox: msg.Outbox})
	msg.Reply <- nil
	if msg.Kind == KindPlayer {
		// The claim changed the role table; everyone sees it, the joiner
		// gets its first snapshot from the same broadcast.
		r.bump()
		r.broadcast()
	} else {
		r.sendTo(msg.ClientID)
	}
}

// adopt installs a handle for id. A reconnect can land before the previous
// connection's Leave; the superseded outbox is closed so its writer exits,
// and the stale Leave later no-ops against the new outbox.
func (r *Room) adopt(id string, h *handle) {
	if old, ok := r.clients[id]; ok && old.outbox != h.outbox {
		close(old.outbox)
	}
	r.clients[id] = h
}

func (r *Room) parkJoin(msg Join) {
	id := msg.ClientID
	if old, ok := r.pending[id]; ok {
		// Reconnect while still admitting: the newer connection takes over
		// the parked join, and the old timer must not expire it.
		old.timer.Stop()
		old.req.Reply <- ErrSessionReplaced
	}
	p := &pendingJoin{req: msg}
	p.timer = time.AfterFunc(r.tm.JoinWait, func() {
		r.Post(joinWaitExpired{ClientID: id})
	})
	r.pending[id] = p
	r.log.Debug("join parked awaiting board", zap.String("client", id))
}

func (r *Room) expirePendingJoin(clientID string) {
	p, ok := r.pending[clientID]
	if !ok {
		return
	}
	delete(r.pending, clientID)
	r.assign.Release(clientID)
	p.req.Reply <- ErrRoomNotReady
	r.log.Info("join timed out waiting for board", zap.String("client", clientID))
}

func (r *Room) handlePublishBoard(msg PublishBoard) {
	if r.boardReady {
		return // board is dealt once
	}
	r.state = game.NewState(msg.Cards, msg.Starting)
	r.boardReady = true
	r.bump()

	for id, p := range r.pending {
		p.timer.Stop()
		delete(r.pending, id)
		r.adopt(id, &handle{kind: p.req.Kind, outbox: p.req.Outbox})
		p.req.Reply <- nil
	}
	r.broadcast()
	r.log.Info("board published", zap.Int("revision", r.rev))
}

func (r *Room) handleLeave(msg Leave) {
	r.touch()

	if p, ok := r.pending[msg.ClientID]; ok {
		if msg.Outbox != nil && p.req.Outbox != msg.Outbox {
			return // stale goodbye, a newer connection owns this admission
		}
		// Disconnected while admitting: no dangling reservation.
		p.timer.Stop()
		delete(r.pending, msg.ClientID)
		r.assign.Release(msg.ClientID)
		return
	}

	h, ok := r.clients[msg.ClientID]
	if !ok {
		return
	}
	if msg.Outbox != nil && h.outbox != msg.Outbox {
		return // stale goodbye, the client already reconnected
	}
	delete(r.clients, msg.ClientID)
	r.detach(msg.ClientID, h)
}

// detach runs the post-disconnect bookkeeping for a removed handle: host
// grace for the host, slot reservation for a player.
func (r *Room) detach(clientID string, h *handle) {
	if h.kind == KindHost {
		r.hostConnected = false
		r.hostGraceGen++
		gen := r.hostGraceGen
		time.AfterFunc(r.tm.HostGrace, func() {
			r.Post(hostGraceExpired{gen: gen})
		})
		r.log.Info("host disconnected, grace timer armed")
		return
	}

	if _, held := r.assign.SlotOf(clientID); held {
		// Reserve the slot for a reconnect instead of vacating it.
		r.slotGraceGen[clientID]++
		gen := r.slotGraceGen[clientID]
		time.AfterFunc(r.tm.SlotGrace, func() {
			r.Post(slotGraceExpired{ClientID: clientID, gen: gen})
		})
	}
}

func (r *Room) expireSlotGrace(clientID string, gen int) {
	if gen != r.slotGraceGen[clientID] {
		return // reconnected in the meantime
	}
	delete(r.slotGraceGen, clientID)
	if _, ok := r.clients[clientID]; ok {
		return
	}
	if _, released := r.assign.Release(clientID); released && r.boardReady {
		r.bump()
		r.broadcast()
	}
}

func (r *Room) handleCommand(msg FromClient) {
	r.touch()

	h, ok := r.clients[msg.ClientID]
	if !ok {
		msg.Reply <- ErrNotJoined
		return
	}
	if !r.boardReady {
		msg.Reply <- ErrRoomNotReady
		return
	}

	cmd := msg.Cmd
	switch h.kind {
	case KindHost:
		// The host adjudicates; a command without a team acts for the
		// team whose turn it is.
		if cmd.Team == "" {
			cmd.Team = r.state.Turn
		}
	case KindPlayer:
		slot, held := r.assign.SlotOf(msg.ClientID)
		if !held {
			msg.Reply <- ErrNotAuthorized
			return
		}
		cmd.Team = slot.Team()
		switch cmd.Type {
		case game.CmdGiveClue:
			if !slot.Spymaster() {
				msg.Reply <- ErrNotAuthorized
				return
			}
		case game.CmdRevealCard, game.CmdEndTurn:
			if slot.Spymaster() {
				msg.Reply <- ErrNotAuthorized
				return
			}
		}
	default:
		msg.Reply <- ErrNotAuthorized
		return
	}

	events, next, err := game.Apply(r.state, cmd)
	if err != nil {
		msg.Reply <- err
		return
	}
	r.state = next
	r.bump()
	msg.Reply <- nil
	r.broadcast()

	for _, ev := range events {
		if ev.Type == game.EvtGameCompleted {
			r.log.Info("game completed", zap.String("winner", string(ev.Winner)))
		}
	}
}

// bump advances the revision. Going backward means the room's single-writer
// invariant broke, which is fatal to the room by policy.
func (r *Room) bump() {
	r.rev++
}

func (r *Room) broadcast() {
	if r.rev <= r.lastSent {
		// A revision going backward means corrupted state; serving it is
		// worse than forcing everyone to rejoin.
		r.log.Error("revision regression, tearing room down",
			zap.Int("revision", r.rev), zap.Int("last_sent", r.lastSent))
		r.teardown()
		return
	}
	r.lastSent = r.rev
	for id, h := range r.clients {
		r.deliver(id, h)
	}
}

func (r *Room) sendTo(clientID string) {
	if h, ok := r.clients[clientID]; ok {
		r.deliver(clientID, h)
	}
}

func (r *Room) deliver(clientID string, h *handle) {
	snap := Snapshot{
		Revision: r.rev,
		State:    r.stateFor(clientID, h.kind),
		Roles:    r.assign.Snapshot(),
	}
	if slot, held := r.assign.SlotOf(clientID); held {
		snap.YourSlot = slot
	}
	select {
	case h.outbox <- snap:
	default:
		// Slow consumer: cut it loose, it will reconnect and resync.
		r.log.Warn("dropping slow client", zap.String("client", clientID))
		close(h.outbox)
		delete(r.clients, clientID)
		r.detach(clientID, h)
	}
}

// stateFor applies the role-appropriate redaction: the host and spymasters
// see hidden alignments, operatives and spectators never do.
func (r *Room) stateFor(clientID string, kind Kind) game.State {
	if kind == KindHost {
		return r.state
	}
	if slot, held := r.assign.SlotOf(clientID); held && slot.Spymaster() {
		return r.state
	}
	return game.Redact(r.state)
}

// idleFired decides what to do with an idle-timer fire: close the room if it
// has been quiet and empty for the full window, otherwise re-arm the single
// timer for the remainder. Reports whether the room closed.
func (r *Room) idleFired() bool {
	if r.tm.Idle <= 0 {
		return false
	}
	quiet := time.Since(r.lastActive)
	if quiet >= r.tm.Idle && len(r.clients) == 0 && len(r.pending) == 0 {
		r.log.Info("room idle, closing")
		r.teardown()
		return true
	}
	next := r.tm.Idle - quiet
	if next < time.Millisecond || len(r.clients) > 0 || len(r.pending) > 0 {
		next = r.tm.Idle
	}
	r.idleTimer.Reset(next)
	return false
}

func (r *Room) touch() {
	r.lastActive = time.Now()
}

func (r *Room) teardown() {
	if r.idleTimer != nil {
		r.idleTimer.Stop()
	}
	for id, p := range r.pending {
		p.timer.Stop()
		delete(r.pending, id)
		p.req.Reply <- ErrRoomClosed
	}
	for id, h := range r.clients {
		close(h.outbox) // transport layer turns this into a RoomClosed notice
		delete(r.clients, id)
	}
	r.cancel()
}
