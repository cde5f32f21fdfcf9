package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sam-patel-1289/crossfire-codenames/internal/code"
	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
	"github.com/sam-patel-1289/crossfire-codenames/internal/protocol"
	"github.com/sam-patel-1289/crossfire-codenames/internal/registry"
	"github.com/sam-patel-1289/crossfire-codenames/internal/roles"
	"github.com/sam-patel-1289/crossfire-codenames/internal/room"
	"github.com/sam-patel-1289/crossfire-codenames/internal/words"
)

const writeTimeout = 3 * time.Second

// Handler upgrades GET /ws?code=..&role=..&client_id=.. to a websocket and
// runs the session protocol against the room. role is "host", "spectator",
// or a slot name; client_id is echoed back on first join so reconnects can
// present the same identity.
func Handler(reg *registry.Registry, boards words.Generator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := code.Normalize(r.URL.Query().Get("code"))
		if c == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		kind, slot, ok := parseRole(r.URL.Query().Get("role"))
		if !ok {
			http.Error(w, "unknown role", http.StatusBadRequest)
			return
		}

		reply := make(chan *room.Room, 1)
		if !reg.Post(registry.Get{Code: c, Reply: reply}) {
			http.Error(w, "server shutting down", http.StatusServiceUnavailable)
			return
		}
		rm := <-reply
		if rm == nil {
			http.Error(w, "room not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		clientID := r.URL.Query().Get("client_id")
		if clientID == "" {
			clientID = uuid.NewString()
		}
		clog := log.With(zap.String("room", c), zap.String("client", clientID))

		out := make(chan room.Snapshot, 8)
		joinReply := make(chan error, 1)
		if !rm.Post(room.Join{ClientID: clientID, Kind: kind, Slot: slot, Outbox: out, Reply: joinReply}) {
			writeMsg(r.Context(), conn, protocol.ServerMessage{Type: protocol.TypeRoomClosed})
			return
		}

		if kind == room.KindHost {
			// The board is dealt on host attach; the room ignores this once
			// the board exists, so host reconnects are harmless.
			cards, starting := boards()
			rm.Post(room.PublishBoard{Cards: cards, Starting: starting})
		}

		// The room bounds the admission wait; the select below only guards
		// against the client going away mid-admission.
		select {
		case err = <-joinReply:
		case <-r.Context().Done():
			rm.Post(room.Leave{ClientID: clientID, Outbox: out})
			return
		}
		if err != nil {
			clog.Info("join rejected", zap.Error(err))
			writeMsg(r.Context(), conn, protocol.ServerMessage{Type: protocol.TypeError, Error: errorInfo(err)})
			return
		}
		defer rm.Post(room.Leave{ClientID: clientID, Outbox: out})

		writeMsg(r.Context(), conn, protocol.ServerMessage{Type: protocol.TypeJoined, ClientID: clientID})
		clog.Info("client joined", zap.String("kind", string(kind)))

		// Writer: snapshots from the room, then a closed-room notice when
		// the outbox closes under us.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for snap := range out {
				writeMsg(writeCtx, conn, protocol.ServerMessage{
					Type:     protocol.TypeSnapshot,
					Revision: snap.Revision,
					State:    &snap.State,
					Roles:    snap.Roles,
					YourSlot: snap.YourSlot,
				})
			}
			writeMsg(writeCtx, conn, protocol.ServerMessage{Type: protocol.TypeRoomClosed})
			conn.Close(websocket.StatusNormalClosure, "room closed")
		}()

		// Reader loop.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				return
			}

			var cm protocol.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeMsg(r.Context(), conn, protocol.ServerMessage{
					Type:  protocol.TypeError,
					Error: &protocol.ErrorInfo{Code: protocol.CodeBadMessage, Message: "bad json"},
				})
				continue
			}

			cmd, ok := toCommand(cm)
			if !ok {
				writeMsg(r.Context(), conn, protocol.ServerMessage{
					Type:  protocol.TypeError,
					Error: &protocol.ErrorInfo{Code: protocol.CodeBadMessage, Message: "unknown message type"},
				})
				continue
			}

			cmdReply := make(chan error, 1)
			if !rm.Post(room.FromClient{ClientID: clientID, Cmd: cmd, Reply: cmdReply}) {
				return
			}
			select {
			case err = <-cmdReply:
			case <-r.Context().Done():
				return
			}
			if err != nil {
				writeMsg(r.Context(), conn, protocol.ServerMessage{Type: protocol.TypeError, Error: errorInfo(err)})
			}
		}
	}
}

func parseRole(role string) (room.Kind, roles.Slot, bool) {
	switch role {
	case "host":
		return room.KindHost, "", true
	case "", "spectator":
		return room.KindSpectator, "", true
	default:
		slot := roles.Slot(role)
		if slot.Valid() {
			return room.KindPlayer, slot, true
		}
		return "", "", false
	}
}

func toCommand(m protocol.ClientMessage) (game.Command, bool) {
	switch m.Type {
	case protocol.TypeGiveClue:
		return game.Command{Type: game.CmdGiveClue, Team: game.Team(m.Team), ClueWord: m.ClueWord, ClueCount: m.ClueCount}, true
	case protocol.TypeRevealCard:
		return game.Command{Type: game.CmdRevealCard, Team: game.Team(m.Team), CardIndex: m.CardIndex}, true
	case protocol.TypeEndTurn:
		return game.Command{Type: game.CmdEndTurn, Team: game.Team(m.Team)}, true
	default:
		return game.Command{}, false
	}
}

// errorInfo maps internal errors onto the wire taxonomy.
func errorInfo(err error) *protocol.ErrorInfo {
	var unavailable *roles.SlotUnavailableError
	switch {
	case errors.As(err, &unavailable):
		return &protocol.ErrorInfo{
			Code:      protocol.CodeSlotUnavailable,
			Message:   unavailable.Error(),
			Slot:      unavailable.Slot,
			OpenSlots: unavailable.Open,
		}
	case errors.Is(err, room.ErrRoomNotReady):
		return &protocol.ErrorInfo{Code: protocol.CodeRoomNotReady, Message: err.Error()}
	case errors.Is(err, room.ErrRoomClosed), errors.Is(err, room.ErrSessionReplaced):
		return &protocol.ErrorInfo{Code: protocol.CodeRoomClosed, Message: err.Error()}
	default:
		return &protocol.ErrorInfo{Code: protocol.CodeActionRejected, Message: err.Error()}
	}
}

func writeMsg(ctx context.Context, conn *websocket.Conn, msg protocol.ServerMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}
	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	_ = conn.Write(wctx, websocket.MessageText, payload)
}
