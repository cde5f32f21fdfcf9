package words

import (
	"math/rand"

	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
)

// Generator deals a fresh board and picks the starting team. The room layer
// treats this as an opaque collaborator so tests can swap in fixed boards.
type Generator func() ([]game.Card, game.Team)

const (
	boardSize     = 25
	startingCards = 9
	secondCards   = 8
	neutralCards  = 7
)

// NewBoard deals a standard board: 25 distinct words, 9 for the starting
// team, 8 for the other, 7 bystanders, 1 assassin.
func NewBoard() ([]game.Card, game.Team) {
	starting := game.TeamRed
	if rand.Intn(2) == 1 {
		starting = game.TeamBlue
	}
	second := starting.Opponent()

	picked := rand.Perm(len(wordList))[:boardSize]
	cards := make([]game.Card, 0, boardSize)
	for i, wi := range picked {
		var align game.Alignment
		switch {
		case i < startingCards:
			align = game.Alignment(starting)
		case i < startingCards+secondCards:
			align = game.Alignment(second)
		case i < startingCards+secondCards+neutralCards:
			align = game.AlignNeutral
		default:
			align = game.AlignAssassin
		}
		cards = append(cards, game.Card{Word: wordList[wi], Alignment: align})
	}

	// Shuffle so alignment can't be read off board position.
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards, starting
}
