// Package registry holds the process-wide table of live rooms. Like the
// rooms themselves it is an actor: one goroutine owns the map, so a Get
// racing a Remove sees either the room or nothing, never a torn-down one.
package registry

import (
	"context"

	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/code"
	"github.com/sam-patel-1289/crossfire-codenames/internal/room"
)

type Msg interface{ isRegistryMsg() }

// Create allocates a fresh code and an empty room. Reply always receives a
// result; Err is only set when code generation itself fails.
type Create struct {
	Reply chan CreateResult
}

type CreateResult struct {
	Code string
	Room *room.Room
	Err  error
}

// Get looks up a room. The code is normalized before lookup so any
// case/whitespace variant resolves to the same room. Reply receives nil for
// unknown codes.
type Get struct {
	Code  string
	Reply chan *room.Room
}

// Remove unlinks a room from the table. The room's own teardown posts this
// through its onClose hook.
type Remove struct{ Code string }

type Shutdown struct{}

func (Create) isRegistryMsg()   {}
func (Get) isRegistryMsg()      {}
func (Remove) isRegistryMsg()   {}
func (Shutdown) isRegistryMsg() {}

type Registry struct {
	inbox    chan Msg
	rooms    map[string]*room.Room
	timeouts room.Timeouts
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(parent context.Context, timeouts room.Timeouts, log *zap.Logger) *Registry {
	ctx, cancel := context.WithCancel(parent)
	g := &Registry{
		inbox:    make(chan Msg, 64),
		rooms:    make(map[string]*room.Room),
		timeouts: timeouts,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go g.loop()
	return g
}

func (g *Registry) Inbox() chan<- Msg { return g.inbox }

// Post sends msg unless the registry has shut down.
func (g *Registry) Post(msg Msg) bool {
	select {
	case g.inbox <- msg:
		return true
	case <-g.ctx.Done():
		return false
	}
}

func (g *Registry) loop() {
	for {
		select {
		case <-g.ctx.Done():
			g.shutdown()
			return

		case m := <-g.inbox:
			switch msg := m.(type) {
			case Create:
				msg.Reply <- g.create()

			case Get:
				msg.Reply <- g.rooms[code.Normalize(msg.Code)]

			case Remove:
				c := code.Normalize(msg.Code)
				if _, ok := g.rooms[c]; ok {
					delete(g.rooms, c)
					g.log.Info("room removed", zap.String("room", c))
				}

			case Shutdown:
				g.shutdown()
				return
			}
		}
	}
}

func (g *Registry) create() CreateResult {
	var c string
	for {
		generated, err := code.Generate()
		if err != nil {
			return CreateResult{Err: err}
		}
		if _, taken := g.rooms[generated]; !taken {
			c = generated
			break
		}
		g.log.Warn("room code collision, regenerating", zap.String("room", generated))
	}

	r := room.New(g.ctx, c, g.timeouts, g.log, func() {
		// Runs on the room goroutine after its loop exits; Post keeps it
		// from blocking if the registry is already gone.
		g.Post(Remove{Code: c})
	})
	g.rooms[c] = r
	g.log.Info("room created", zap.String("room", c))
	return CreateResult{Code: c, Room: r}
}

func (g *Registry) shutdown() {
	for c, r := range g.rooms {
		r.Post(room.Shutdown{})
		delete(g.rooms, c)
	}
	g.cancel()
}
