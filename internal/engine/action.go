package engine

// ActionType identifies player actions sent to Game.Apply.
type ActionType string

const (
	ActionChoose  ActionType = "choose"
	ActionPlace   ActionType = "place"
	ActionDiscard ActionType = "discard"
)

// Action is a player's action input.
type Action struct {
	Type ActionType `json:"type"`
	// Params depend on Type:
	// choose: Rank
	// place: Row (1-based), Rank
	// discard: Rank
	Rank int `json:"rank,omitempty"`
	Row  int `json:"row,omitempty"`
}

// EventType identifies events emitted by the engine.
type EventType string

const (
	EventRoundStart     EventType = "round_start"
	EventCardChosen     EventType = "card_chosen"
	EventHandsExchanged EventType = "hands_exchanged"
	EventCardPlaced     EventType = "card_placed"
	EventCardDiscarded  EventType = "card_discarded"
	EventTurnEnd        EventType = "turn_end"
	EventRoundEnd       EventType = "round_end"
	EventGameOver       EventType = "game_over"
	EventPhaseChange    EventType = "phase_change"
)

// Event is emitted by the engine after state changes.
type Event struct {
	Type   EventType   `json:"type"`
	Player int         `json:"player,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}
