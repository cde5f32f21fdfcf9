package game

import "strings"

const maxClueCount = 9

// Apply validates cmd against s and returns the events it produced plus the
// next state. On error the returned state is s unchanged; rejected commands
// never mutate.
func Apply(s State, cmd Command) ([]Event, State, error) {
	if s.Phase == PhaseDone {
		return nil, s, ErrGameCompleted
	}

	switch cmd.Type {
	case CmdGiveClue:
		if cmd.Team != s.Turn {
			return nil, s, ErrWrongTurn
		}
		if s.Phase != PhaseClue {
			return nil, s, ErrWrongPhase
		}
		word := strings.TrimSpace(cmd.ClueWord)
		if word == "" || cmd.ClueCount < 0 || cmd.ClueCount > maxClueCount {
			return nil, s, ErrInvalidClue
		}

		next := s
		next.Clue = &Clue{Word: word, Count: cmd.ClueCount}
		next.Phase = PhaseGuess
		if cmd.ClueCount == 0 {
			next.GuessesLeft = -1
		} else {
			// The extra guess lets the team chase a leftover from an earlier clue.
			next.GuessesLeft = cmd.ClueCount + 1
		}
		return []Event{{Type: EvtClueGiven, Team: cmd.Team}}, next, nil

	case CmdRevealCard:
		if cmd.Team != s.Turn {
			return nil, s, ErrWrongTurn
		}
		if s.Phase != PhaseGuess {
			return nil, s, ErrWrongPhase
		}
		if cmd.CardIndex < 0 || cmd.CardIndex >= len(s.Cards) {
			return nil, s, ErrCardOutOfRange
		}
		if s.Cards[cmd.CardIndex].Revealed {
			return nil, s, ErrCardRevealed
		}
		return revealCard(s, cmd)

	case CmdEndTurn:
		if cmd.Team != s.Turn {
			return nil, s, ErrWrongTurn
		}
		if s.Phase != PhaseGuess {
			return nil, s, ErrWrongPhase
		}
		next := passTurn(s)
		return []Event{{Type: EvtTurnEnded, Team: cmd.Team}}, next, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func revealCard(s State, cmd Command) ([]Event, State, error) {
	next := s
	next.Cards = make([]Card, len(s.Cards))
	copy(next.Cards, s.Cards)
	next.Remaining = map[Team]int{
		TeamRed:  s.Remaining[TeamRed],
		TeamBlue: s.Remaining[TeamBlue],
	}

	card := &next.Cards[cmd.CardIndex]
	card.Revealed = true
	events := []Event{{Type: EvtCardRevealed, Team: cmd.Team, CardIndex: cmd.CardIndex}}

	switch card.Alignment {
	case AlignAssassin:
		return finish(next, cmd.Team.Opponent(), events)

	case Alignment(cmd.Team):
		next.Remaining[cmd.Team]--
		if next.Remaining[cmd.Team] == 0 {
			return finish(next, cmd.Team, events)
		}
		if next.GuessesLeft > 0 {
			next.GuessesLeft--
			if next.GuessesLeft == 0 {
				next = passTurn(next)
				events = append(events, Event{Type: EvtTurnEnded, Team: cmd.Team})
			}
		}
		return events, next, nil

	case Alignment(cmd.Team.Opponent()):
		opp := cmd.Team.Opponent()
		next.Remaining[opp]--
		if next.Remaining[opp] == 0 {
			return finish(next, opp, events)
		}
		next = passTurn(next)
		events = append(events, Event{Type: EvtTurnEnded, Team: cmd.Team})
		return events, next, nil

	default: // neutral
		next = passTurn(next)
		events = append(events, Event{Type: EvtTurnEnded, Team: cmd.Team})
		return events, next, nil
	}
}

func passTurn(s State) State {
	s.Turn = s.Turn.Opponent()
	s.Phase = PhaseClue
	s.Clue = nil
	s.GuessesLeft = 0
	return s
}

func finish(s State, winner Team, events []Event) ([]Event, State, error) {
	s.Phase = PhaseDone
	s.Winner = winner
	s.Clue = nil
	s.GuessesLeft = 0
	events = append(events, Event{Type: EvtGameCompleted, Winner: winner})
	return events, s, nil
}
