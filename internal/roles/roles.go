package roles

import (
	"fmt"

	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
)

// Slot is one of the four claimable player roles.
type Slot string

const (
	RedSpymaster  Slot = "red-spymaster"
	RedOperative  Slot = "red-operative"
	BlueSpymaster Slot = "blue-spymaster"
	BlueOperative Slot = "blue-operative"
)

var All = []Slot{RedSpymaster, RedOperative, BlueSpymaster, BlueOperative}

func (s Slot) Valid() bool {
	switch s {
	case RedSpymaster, RedOperative, BlueSpymaster, BlueOperative:
		return true
	}
	return false
}

func (s Slot) Team() game.Team {
	switch s {
	case RedSpymaster, RedOperative:
		return game.TeamRed
	default:
		return game.TeamBlue
	}
}

func (s Slot) Spymaster() bool {
	return s == RedSpymaster || s == BlueSpymaster
}

// SlotUnavailableError names the contested slot and lists the ones still
// open so the client can offer an alternative instead of a dead end.
type SlotUnavailableError struct {
	Slot Slot
	Open []Slot
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s is already held (%d open)", e.Slot, len(e.Open))
}

type Status struct {
	Held     bool   `json:"held"`
	ClientID string `json:"client_id,omitempty"`
}

// Assignment tracks the holder of each slot. It is not safe for concurrent
// use on its own; the owning room actor serializes all access, which is what
// makes claims linearizable.
type Assignment struct {
	holders map[Slot]string
}

func NewAssignment() *Assignment {
	return &Assignment{holders: make(map[Slot]string)}
}

// Claim binds slot to clientID. First caller wins; a claim on a held slot
// fails with a SlotUnavailableError unless the holder is clientID itself
// (reconnects re-claim their own slot). A client holds at most one slot, so
// claiming a new slot releases any slot it held before.
func (a *Assignment) Claim(slot Slot, clientID string) error {
	if holder, held := a.holders[slot]; held {
		if holder == clientID {
			return nil
		}
		return &SlotUnavailableError{Slot: slot, Open: a.Open()}
	}
	a.Release(clientID)
	a.holders[slot] = clientID
	return nil
}

// Release vacates whatever slot clientID holds. No-op if it holds nothing.
func (a *Assignment) Release(clientID string) (Slot, bool) {
	for slot, holder := range a.holders {
		if holder == clientID {
			delete(a.holders, slot)
			return slot, true
		}
	}
	return "", false
}

// SlotOf reports the slot clientID currently holds.
func (a *Assignment) SlotOf(clientID string) (Slot, bool) {
	for slot, holder := range a.holders {
		if holder == clientID {
			return slot, true
		}
	}
	return "", false
}

// Open lists vacant slots in fixed order.
func (a *Assignment) Open() []Slot {
	var open []Slot
	for _, s := range All {
		if _, held := a.holders[s]; !held {
			open = append(open, s)
		}
	}
	return open
}

// Snapshot reports every slot's status, for the role-picker view.
func (a *Assignment) Snapshot() map[Slot]Status {
	out := make(map[Slot]Status, len(All))
	for _, s := range All {
		holder, held := a.holders[s]
		out[s] = Status{Held: held, ClientID: holder}
	}
	return out
}
