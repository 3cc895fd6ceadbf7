package console

import (
	"fmt"

	"sakura/internal/protocol"
)

var ordinals = []string{"first", "second", "third", "fourth", "fifth"}

func ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return "next"
}

// renderPlayer prints a player's hand and chosen cards, and the rows when
// withRows is set.
func (s *Session) renderPlayer(playerID int, withRows bool) {
	v := s.game.ViewFor(playerID)
	fmt.Fprintf(s.out, protocol.MsgPlayer, v.ID)
	fmt.Fprintf(s.out, protocol.MsgHandCards, v.Hand)
	fmt.Fprintf(s.out, protocol.MsgChosenCards, v.Chosen)
	if withRows {
		for i, row := range v.Rows {
			fmt.Fprintf(s.out, protocol.MsgRow, i+1, row)
		}
	}
}
