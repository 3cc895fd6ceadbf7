package engine

// Player holds one player's cards.
type Player struct {
	ID     int                 `json:"id"`
	Hand   *Sequence           `json:"-"`
	Chosen *Sequence           `json:"-"`
	Rows   [RowCount]*Sequence `json:"-"`
}

func NewPlayer(id int) *Player {
	p := &Player{
		ID:     id,
		Hand:   NewSequence(),
		Chosen: NewSequence(),
	}
	for i := range p.Rows {
		p.Rows[i] = NewSequence()
	}
	return p
}

// HasCards is true while the player still holds hand or chosen cards.
func (p *Player) HasCards() bool {
	return !p.Hand.IsEmpty() || !p.Chosen.IsEmpty()
}

// Row returns the row for a 1-based row number.
func (p *Player) Row(number int) (*Sequence, bool) {
	if number < 1 || number > RowCount {
		return nil, false
	}
	return p.Rows[number-1], true
}

// Choose moves the first hand card of the given rank into the chosen pool.
func (p *Player) Choose(rank int) (*Card, error) {
	card, ok := p.Hand.FindByRank(rank)
	if !ok {
		return nil, ErrCardNotInHand
	}
	if err := p.Hand.Remove(card); err != nil {
		return nil, err
	}
	p.Chosen.InsertSorted(card)
	return card, nil
}

// Place moves a chosen card onto the end of a row. The card leaves the
// chosen pool first and is sorted back in if the row rejects it.
func (p *Player) Place(rowNumber, rank int) (*Card, error) {
	row, ok := p.Row(rowNumber)
	if !ok {
		return nil, ErrInvalidRow
	}
	card, ok := p.Chosen.FindByRank(rank)
	if !ok {
		return nil, ErrCardNotChosen
	}
	if err := p.Chosen.Remove(card); err != nil {
		return nil, err
	}
	if err := TryExtendRow(row, card); err != nil {
		p.Chosen.InsertSorted(card)
		return nil, err
	}
	return card, nil
}

// Discard drops a chosen card from the game.
func (p *Player) Discard(rank int) (*Card, error) {
	card, ok := p.Chosen.FindByRank(rank)
	if !ok {
		return nil, ErrCardNotChosen
	}
	if err := p.Chosen.Remove(card); err != nil {
		return nil, err
	}
	return card, nil
}
