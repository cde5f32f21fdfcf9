// Package protocol defines the JSON messages exchanged over the websocket.
// Every message carries a tag field so clients can switch on it.
package protocol

import (
	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
	"github.com/sam-patel-1289/crossfire-codenames/internal/roles"
)

// Client -> server message types.
const (
	TypeGiveClue   = "GiveClue"
	TypeRevealCard = "RevealCard"
	TypeEndTurn    = "EndTurn"
)

// Server -> client message types.
const (
	TypeJoined     = "Joined"
	TypeSnapshot   = "Snapshot"
	TypeError      = "Error"
	TypeRoomClosed = "RoomClosed"
)

// Error codes, mirrored by the HTTP surface.
const (
	CodeRoomNotFound    = "room_not_found"
	CodeRoomNotReady    = "room_not_ready"
	CodeRoomClosed      = "room_closed"
	CodeSlotUnavailable = "slot_unavailable"
	CodeActionRejected  = "action_rejected"
	CodeBadMessage      = "bad_message"
)

type ClientMessage struct {
	Type      string `json:"type"`
	ClueWord  string `json:"clue_word,omitempty"`
	ClueCount int    `json:"clue_count,omitempty"`
	CardIndex int    `json:"card_index"`
	// Team is only honored for the host connection; player teams follow
	// their claimed slot.
	Team string `json:"team,omitempty"`
}

type ServerMessage struct {
	Type     string                      `json:"type"`
	Revision int                         `json:"revision,omitempty"`
	ClientID string                      `json:"client_id,omitempty"`
	State    *game.State                 `json:"state,omitempty"`
	Roles    map[roles.Slot]roles.Status `json:"roles,omitempty"`
	YourSlot roles.Slot                  `json:"your_slot,omitempty"`
	Error    *ErrorInfo                  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Slot and OpenSlots are set for slot_unavailable so the client can
	// offer the remaining choices.
	Slot      roles.Slot   `json:"slot,omitempty"`
	OpenSlots []roles.Slot `json:"open_slots,omitempty"`
}
