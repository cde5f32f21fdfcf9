package game

import "errors"

var ErrWrongTurn = errors.New("not your team's turn")
var ErrWrongPhase = errors.New("action not valid in current phase")
var ErrInvalidClue = errors.New("invalid clue")
var ErrCardOutOfRange = errors.New("card index out of range")
var ErrCardRevealed = errors.New("card already revealed")
var ErrUnsupportedCommand = errors.New("unsupported command")
var ErrGameCompleted = errors.New("game already completed")

type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

// Opponent returns the other team.
func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Alignment is a card's hidden affiliation.
type Alignment string

const (
	AlignRed      Alignment = "red"
	AlignBlue     Alignment = "blue"
	AlignNeutral  Alignment = "neutral"
	AlignAssassin Alignment = "assassin"
	// AlignHidden replaces the true alignment in redacted snapshots.
	AlignHidden Alignment = ""
)

type Phase string

const (
	PhaseClue  Phase = "clue"
	PhaseGuess Phase = "guess"
	PhaseDone  Phase = "done"
)

type Card struct {
	Word      string    `json:"word"`
	Alignment Alignment `json:"alignment,omitempty"`
	Revealed  bool      `json:"revealed"`
}

type Clue struct {
	Word  string `json:"word"`
	Count int    `json:"count"` // 0 means unlimited guesses
}

// State is the authoritative game document. Values are treated as
// immutable: Apply copies before mutating so older snapshots stay valid.
type State struct {
	Cards []Card `json:"cards"`
	Turn  Team   `json:"turn"`
	Phase Phase  `json:"phase"`
	Clue  *Clue  `json:"clue,omitempty"`
	// GuessesLeft is -1 while the clue allows unlimited guesses.
	GuessesLeft int          `json:"guesses_left"`
	Remaining   map[Team]int `json:"remaining"`
	Winner      Team         `json:"winner,omitempty"`
}

// NewState builds the initial state for a dealt board. The starting team
// moves first and has one extra card to find.
func NewState(cards []Card, starting Team) State {
	s := State{
		Cards:     cards,
		Turn:      starting,
		Phase:     PhaseClue,
		Remaining: map[Team]int{TeamRed: 0, TeamBlue: 0},
	}
	for _, c := range cards {
		switch c.Alignment {
		case AlignRed:
			s.Remaining[TeamRed]++
		case AlignBlue:
			s.Remaining[TeamBlue]++
		}
	}
	return s
}

type CommandType string

const (
	CmdGiveClue   CommandType = "GiveClue"
	CmdRevealCard CommandType = "RevealCard"
	CmdEndTurn    CommandType = "EndTurn"
)

type Command struct {
	Type      CommandType
	Team      Team
	ClueWord  string
	ClueCount int
	CardIndex int
}

type EventType string

const (
	EvtClueGiven     EventType = "ClueGiven"
	EvtCardRevealed  EventType = "CardRevealed"
	EvtTurnEnded     EventType = "TurnEnded"
	EvtGameCompleted EventType = "GameCompleted"
)

type Event struct {
	Type      EventType
	Team      Team
	CardIndex int
	Winner    Team
}
