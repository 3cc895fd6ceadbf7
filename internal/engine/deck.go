package engine

// Deck is the ordered card list read from a config file.
type Deck struct {
	cards []*Card
}

// NewDeck creates a deck that deals cards in the given order.
func NewDeck(cards []*Card) *Deck {
	d := &Deck{cards: make([]*Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Draw removes and returns the top n cards. Returns fewer if deck is short.
func (d *Deck) Draw(n int) []*Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := make([]*Card, n)
	copy(drawn, d.cards[:n])
	d.cards = d.cards[n:]
	return drawn
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Deal hands out cards one at a time in seat order until every player holds
// perPlayer cards or the deck runs out.
func (d *Deck) Deal(players []*Player, perPlayer int) {
	for round := 0; round < perPlayer; round++ {
		for _, p := range players {
			drawn := d.Draw(1)
			if len(drawn) == 0 {
				return
			}
			p.Hand.Append(drawn[0])
		}
	}
}
