package registry

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/room"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return New(ctx, room.DefaultTimeouts(), zap.NewNop())
}

func createRoom(t *testing.T, g *Registry) (string, *room.Room) {
	t.Helper()
	reply := make(chan CreateResult, 1)
	g.Inbox() <- Create{Reply: reply}
	select {
	case res := <-reply:
		if res.Err != nil {
			t.Fatalf("create failed: %v", res.Err)
		}
		return res.Code, res.Room
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for create")
		return "", nil // unreachable
	}
}

func getRoom(t *testing.T, g *Registry, c string) *room.Room {
	t.Helper()
	reply := make(chan *room.Room, 1)
	g.Inbox() <- Get{Code: c, Reply: reply}
	select {
	case r := <-reply:
		return r
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for get")
		return nil // unreachable
	}
}

func TestRegistry_Create_Get_SamePointer(t *testing.T) {
	g := newTestRegistry(t)
	c, created := createRoom(t, g)

	got := getRoom(t, g, c)
	if got == nil || got != created {
		t.Fatalf("expected same room pointer for code %s", c)
	}
}

func TestRegistry_Get_NormalizesVariants(t *testing.T) {
	g := newTestRegistry(t)
	c, created := createRoom(t, g)

	variants := []string{
		c,
		" " + c + " ",
		c + "\n",
		"\t" + c,
	}
	// Case variants only matter when the code has letters, but lowering the
	// whole thing is always safe to try.
	variants = append(variants, toLower(c), " "+toLower(c)+" ")

	for _, v := range variants {
		if got := getRoom(t, g, v); got != created {
			t.Fatalf("variant %q did not resolve to the room", v)
		}
	}
}

func toLower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func TestRegistry_Get_UnknownCode_Nil(t *testing.T) {
	g := newTestRegistry(t)
	if got := getRoom(t, g, "ZZZZZZ"); got != nil {
		t.Fatalf("unknown code should resolve to nil, got %v", got)
	}
	if got := getRoom(t, g, ""); got != nil {
		t.Fatalf("empty code should resolve to nil")
	}
}

func TestRegistry_Remove_ThenGetIsNil(t *testing.T) {
	g := newTestRegistry(t)
	c, _ := createRoom(t, g)

	g.Inbox() <- Remove{Code: " " + toLower(c)}
	if got := getRoom(t, g, c); got != nil {
		t.Fatalf("room should be gone after remove")
	}
}

func TestRegistry_RoomCloseUnlinksItself(t *testing.T) {
	g := newTestRegistry(t)
	c, r := createRoom(t, g)

	r.Inbox() <- room.Shutdown{}

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if getRoom(t, g, c) == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("closed room was never removed from the registry")
}

func TestRegistry_CodesAreUniqueAcrossLiveRooms(t *testing.T) {
	g := newTestRegistry(t)
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		c, _ := createRoom(t, g)
		if seen[c] {
			t.Fatalf("duplicate live room code %s", c)
		}
		seen[c] = true
	}
}
