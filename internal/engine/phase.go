package engine

// GamePhase represents the current phase of the game state machine.
type GamePhase int

const (
	PhaseSetup    GamePhase = iota // hands dealt, not yet sorted
	PhaseChoosing                  // players moving hand cards to their chosen pool
	PhaseAction                    // players placing or discarding chosen cards
	PhaseRoundEnd                  // both action phases done
	PhaseGameOver                  // game finished, scores final
)

var phaseNames = map[GamePhase]string{
	PhaseSetup:    "Setup",
	PhaseChoosing: "Choosing",
	PhaseAction:   "Action",
	PhaseRoundEnd: "RoundEnd",
	PhaseGameOver: "GameOver",
}

func (p GamePhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "Unknown"
}
