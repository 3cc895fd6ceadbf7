package engine

import "errors"

var ErrIllegalPlacement = errors.New("card cannot extend this row")

// RowCount is the number of rows each player builds.
const RowCount = 3

// CanExtend reports whether a card of the given rank may join row. Rows grow
// only at their ends: below the current head or above the current tail.
func CanExtend(row *Sequence, rank int) bool {
	return extendIndex(row, rank) >= 0
}

// extendIndex returns the insertion index for rank, or -1 if the rank falls
// inside the row's span.
func extendIndex(row *Sequence, rank int) int {
	if row.IsEmpty() {
		return 0
	}
	if rank < row.Head().Rank {
		return 0
	}
	i := 0
	for i < row.Len() && rank > row.cards[i].Rank {
		i++
	}
	if i == row.Len() {
		return i
	}
	return -1
}

// TryExtendRow adds card to row if the placement is legal. On failure the
// row is left untouched.
func TryExtendRow(row *Sequence, card *Card) error {
	i := extendIndex(row, card.Rank)
	if i < 0 {
		return ErrIllegalPlacement
	}
	row.insertAt(i, card)
	return nil
}
