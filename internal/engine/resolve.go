package engine

// Resolve handles handing the action phase from player to player.

// NextActor returns the first player after the given seat whose chosen pool
// still holds cards, or 0 if there is none. Pass 0 to start from the first
// seat.
func (g *Game) NextActor(after int) int {
	start := 0
	if after != 0 {
		for i, p := range g.Players {
			if p.ID == after {
				start = i + 1
				break
			}
		}
	}
	for _, p := range g.Players[start:] {
		if !p.Chosen.IsEmpty() {
			return p.ID
		}
	}
	return 0
}

// ExchangeHands passes every remaining hand to the next seat. With two
// players this swaps the hands in one step.
func (g *Game) ExchangeHands() Event {
	n := len(g.Players)
	if n < 2 {
		return Event{Type: EventHandsExchanged}
	}
	last := g.Players[n-1].Hand
	for i := n - 1; i > 0; i-- {
		g.Players[i].Hand = g.Players[i-1].Hand
	}
	g.Players[0].Hand = last
	return Event{Type: EventHandsExchanged, Data: map[string]interface{}{
		"round": g.Round,
	}}
}

func (g *Game) beginActionPhase() []Event {
	g.Choosing = nil
	g.Phase = PhaseAction
	events := []Event{{Type: EventPhaseChange, Data: map[string]interface{}{
		"phase": PhaseAction.String(),
	}}}
	return append(events, g.passTurn(0)...)
}

// passTurn moves the action phase to the next player with chosen cards,
// ending the round when nobody is left.
func (g *Game) passTurn(after int) []Event {
	next := g.NextActor(after)
	if next == 0 {
		g.CurrentActor = 0
		return g.endRound()
	}
	g.CurrentActor = next
	return nil
}
