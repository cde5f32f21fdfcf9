package game

// Redact returns a copy of s safe to send to a viewer without spymaster
// privileges: unrevealed cards lose their alignment. Revealed cards keep it,
// since revealing is public. After the game completes everything is public.
func Redact(s State) State {
	if s.Phase == PhaseDone {
		return s
	}
	out := s
	out.Cards = make([]Card, len(s.Cards))
	copy(out.Cards, s.Cards)
	for i := range out.Cards {
		if !out.Cards[i].Revealed {
			out.Cards[i].Alignment = AlignHidden
		}
	}
	return out
}
