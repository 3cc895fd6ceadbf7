package engine

// ChoosingState holds the state of one choosing phase.
type ChoosingState struct {
	PickOrder      []int           `json:"pick_order"`     // player IDs, one entry per pick
	CurrentPicker  int             `json:"current_picker"` // index into pick order
	PicksPerPlayer int             `json:"picks_per_player"`
	Picks          map[int][]*Card `json:"-"` // cards chosen this phase per player
}

// SetupChoosing lays out the pick order for a choosing phase: each player in
// seat order makes all of their picks before the next one starts. A player
// with a short hand picks only what they hold.
func SetupChoosing(players []*Player, picksPerPlayer int) *ChoosingState {
	cs := &ChoosingState{
		Picks:          make(map[int][]*Card),
		PicksPerPlayer: picksPerPlayer,
	}
	for _, p := range players {
		n := picksPerPlayer
		if h := p.Hand.Len(); h < n {
			n = h
		}
		for i := 0; i < n; i++ {
			cs.PickOrder = append(cs.PickOrder, p.ID)
		}
	}
	return cs
}

// CurrentPickerID returns who should pick now, or 0 when the phase is over.
func (cs *ChoosingState) CurrentPickerID() int {
	if cs.CurrentPicker >= len(cs.PickOrder) {
		return 0
	}
	return cs.PickOrder[cs.CurrentPicker]
}

// PickNumber returns the 1-based number of the pick the player is about to
// make.
func (cs *ChoosingState) PickNumber(playerID int) int {
	return len(cs.Picks[playerID]) + 1
}

// Pick lets the current picker move a hand card to their chosen pool.
func (cs *ChoosingState) Pick(p *Player, rank int) (*Card, error) {
	if cs.CurrentPickerID() != p.ID {
		return nil, ErrNotYourTurn
	}
	card, err := p.Choose(rank)
	if err != nil {
		return nil, err
	}
	cs.Picks[p.ID] = append(cs.Picks[p.ID], card)
	cs.CurrentPicker++
	return card, nil
}

// IsDone returns true when all picks are made.
func (cs *ChoosingState) IsDone() bool {
	return cs.CurrentPicker >= len(cs.PickOrder)
}
