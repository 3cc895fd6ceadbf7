package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"sakura/internal/engine"
)

// MagicNumber is the required first line of a config file.
const MagicNumber = "ESP"

// DeckSize is the number of card lines following the header.
const DeckSize = 20

var (
	ErrCannotOpen   = errors.New("cannot open file")
	ErrInvalidMagic = errors.New("invalid magic number")
	ErrInvalidFile  = errors.New("invalid file")
)

// File is a parsed config file.
type File struct {
	// PlayerCount is informational; the game always seats two players.
	PlayerCount int
	Cards       []*engine.Card
}

// Deck returns a deck dealing the cards in file order.
func (f *File) Deck() *engine.Deck {
	return engine.NewDeck(f.Cards)
}

// Load reads and parses the config file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	defer fh.Close()
	return Parse(fh)
}

// Parse reads the header and the card lines. Anything after the last card
// line, such as appended results, is ignored.
func Parse(r io.Reader) (*File, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	magic, ok := next()
	if !ok || magic != MagicNumber {
		return nil, ErrInvalidMagic
	}

	countLine, ok := next()
	if !ok {
		return nil, fmt.Errorf("%w: missing player count", ErrInvalidFile)
	}
	count, err := engine.ParseRank(countLine)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFile, lineNo, err)
	}

	f := &File{PlayerCount: count, Cards: make([]*engine.Card, 0, DeckSize)}
	for len(f.Cards) < DeckSize {
		line, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
			}
			return nil, fmt.Errorf("%w: expected %d cards, found %d", ErrInvalidFile, DeckSize, len(f.Cards))
		}
		card, err := ParseCardLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFile, lineNo, err)
		}
		f.Cards = append(f.Cards, card)
	}
	return f, nil
}

// ParseCardLine parses "<rank>_<color>".
func ParseCardLine(line string) (*engine.Card, error) {
	rank, color, ok := strings.Cut(strings.TrimSpace(line), "_")
	if !ok {
		return nil, fmt.Errorf("%w: %q", engine.ErrInvalidColor, line)
	}
	return engine.ParseCard(rank, color)
}
