package engine

// GameConfig holds the fixed rule constants of a game.
type GameConfig struct {
	HandSize      int // cards dealt to each player
	ChoosePerTurn int // cards each player keeps per choosing phase
	MaxRank       int // highest rank a command may name
}

func DefaultConfig() GameConfig {
	return GameConfig{
		HandSize:      10,
		ChoosePerTurn: 2,
		MaxRank:       120,
	}
}
