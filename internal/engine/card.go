package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrInvalidColor  = errors.New("invalid color")
)

// Color is one of the four card colors.
type Color int

const (
	ColorRed   Color = 1
	ColorGreen Color = 2
	ColorBlue  Color = 3
	ColorWhite Color = 4
)

var colorNames = map[Color]string{
	ColorRed:   "Red",
	ColorGreen: "Green",
	ColorBlue:  "Blue",
	ColorWhite: "White",
}

var colorTokens = map[Color]string{
	ColorRed:   "r",
	ColorGreen: "g",
	ColorBlue:  "b",
	ColorWhite: "w",
}

var colorPoints = map[Color]int{
	ColorRed:   10,
	ColorWhite: 7,
	ColorGreen: 4,
	ColorBlue:  3,
}

func (c Color) String() string {
	if s, ok := colorNames[c]; ok {
		return s
	}
	return "Unknown"
}

// Token returns the single-letter notation used in config files.
func (c Color) Token() string {
	if s, ok := colorTokens[c]; ok {
		return s
	}
	return "?"
}

// Points is what a card of this color adds to its row.
func (c Color) Points() int {
	return colorPoints[c]
}

// Card is a single playing card. Cards are handled by pointer: two cards can
// share a rank, so sequences tell them apart by identity.
type Card struct {
	Color Color `json:"color"`
	Rank  int   `json:"rank"`
}

// NewCard allocates a card.
func NewCard(rank int, color Color) *Card {
	return &Card{Color: color, Rank: rank}
}

func (c *Card) String() string {
	return fmt.Sprintf("%d_%s", c.Rank, c.Color.Token())
}

// ParseRank converts a whole token to an integer.
func ParseRank(token string) (int, error) {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return n, nil
}

// ParseColor maps r, g, b or w to a Color.
func ParseColor(token string) (Color, error) {
	token = strings.TrimSpace(token)
	for c, t := range colorTokens {
		if t == token {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// ParseCard builds a card from its rank and color tokens.
func ParseCard(rankToken, colorToken string) (*Card, error) {
	rank, err := ParseRank(rankToken)
	if err != nil {
		return nil, err
	}
	if rank < 1 {
		return nil, fmt.Errorf("%w: rank %d", ErrInvalidNumber, rank)
	}
	color, err := ParseColor(colorToken)
	if err != nil {
		return nil, err
	}
	return NewCard(rank, color), nil
}
