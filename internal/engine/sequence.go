package engine

import (
	"errors"
	"strings"
)

var ErrCardNotFound = errors.New("card not in sequence")

// Sequence is an ordered run of cards: a hand, a chosen pool or a row.
// Ascending rank order is established by SortAscending and kept by
// InsertSorted; Append does not maintain it.
type Sequence struct {
	cards []*Card
}

// NewSequence returns a sequence holding cards in the given order.
func NewSequence(cards ...*Card) *Sequence {
	s := &Sequence{cards: make([]*Card, 0, len(cards))}
	s.cards = append(s.cards, cards...)
	return s
}

// Append adds card at the tail.
func (s *Sequence) Append(card *Card) {
	s.cards = append(s.cards, card)
}

// InsertSorted puts card before the first element of strictly higher rank,
// so it lands at the end of its own rank's run.
func (s *Sequence) InsertSorted(card *Card) {
	i := 0
	for i < len(s.cards) && s.cards[i].Rank <= card.Rank {
		i++
	}
	s.insertAt(i, card)
}

func (s *Sequence) insertAt(i int, card *Card) {
	s.cards = append(s.cards, nil)
	copy(s.cards[i+1:], s.cards[i:])
	s.cards[i] = card
}

// SortAscending bubble-sorts the sequence by rank. Equal ranks keep their
// relative order.
func (s *Sequence) SortAscending() {
	for end := len(s.cards) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if s.cards[i].Rank > s.cards[i+1].Rank {
				s.cards[i], s.cards[i+1] = s.cards[i+1], s.cards[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// FindByRank returns the first card with the given rank.
func (s *Sequence) FindByRank(rank int) (*Card, bool) {
	for _, c := range s.cards {
		if c.Rank == rank {
			return c, true
		}
	}
	return nil, false
}

// Remove unlinks this exact card; another card of equal rank and color is
// not a match.
func (s *Sequence) Remove(card *Card) error {
	for i, c := range s.cards {
		if c == card {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			return nil
		}
	}
	return ErrCardNotFound
}

// Len returns the number of cards.
func (s *Sequence) Len() int {
	return len(s.cards)
}

func (s *Sequence) IsEmpty() bool {
	return len(s.cards) == 0
}

// Cards returns a copy of the card slice.
func (s *Sequence) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Ranks lists the ranks in sequence order.
func (s *Sequence) Ranks() []int {
	out := make([]int, len(s.cards))
	for i, c := range s.cards {
		out[i] = c.Rank
	}
	return out
}

// Head returns the first card, or nil when empty.
func (s *Sequence) Head() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[0]
}

// Tail returns the last card, or nil when empty.
func (s *Sequence) Tail() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// Points sums the color points of every card.
func (s *Sequence) Points() int {
	total := 0
	for _, c := range s.cards {
		total += c.Color.Points()
	}
	return total
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
