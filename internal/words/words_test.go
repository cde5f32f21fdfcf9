package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sam-patel-1289/crossfire-codenames/internal/game"
)

func TestNewBoard_Composition(t *testing.T) {
	for i := 0; i < 20; i++ {
		cards, starting := NewBoard()
		require.Len(t, cards, 25)
		require.Contains(t, []game.Team{game.TeamRed, game.TeamBlue}, starting)

		counts := map[game.Alignment]int{}
		seen := map[string]bool{}
		for _, c := range cards {
			counts[c.Alignment]++
			assert.False(t, c.Revealed)
			assert.False(t, seen[c.Word], "duplicate word %q", c.Word)
			seen[c.Word] = true
		}

		assert.Equal(t, 9, counts[game.Alignment(starting)], "starting team gets nine cards")
		assert.Equal(t, 8, counts[game.Alignment(starting.Opponent())])
		assert.Equal(t, 7, counts[game.AlignNeutral])
		assert.Equal(t, 1, counts[game.AlignAssassin])
	}
}
