package protocol

import (
	"strings"

	"sakura/internal/engine"
)

// Console keywords.
const (
	KeywordQuit    = "quit"
	KeywordHelp    = "help"
	KeywordPlace   = "place"
	KeywordDiscard = "discard"
)

// CommandKind tags a decoded input line.
type CommandKind int

const (
	CmdInvalid CommandKind = iota
	CmdQuit
	CmdHelp
	CmdChoose
	CmdPlace
	CmdDiscard
)

var commandNames = map[CommandKind]string{
	CmdInvalid: "invalid",
	CmdQuit:    "quit",
	CmdHelp:    "help",
	CmdChoose:  "choose",
	CmdPlace:   "place",
	CmdDiscard: "discard",
}

func (k CommandKind) String() string {
	if s, ok := commandNames[k]; ok {
		return s
	}
	return "unknown"
}

// Command is one decoded line of input. Row and Rank are set for the kinds
// that take them; Reason is set for CmdInvalid.
type Command struct {
	Kind   CommandKind
	Row    int
	Rank   int
	Reason Reason
}

func invalid(r Reason) Command {
	return Command{Kind: CmdInvalid, Reason: r}
}

// Action converts a game command into an engine action.
func (c Command) Action() (engine.Action, bool) {
	switch c.Kind {
	case CmdChoose:
		return engine.Action{Type: engine.ActionChoose, Rank: c.Rank}, true
	case CmdPlace:
		return engine.Action{Type: engine.ActionPlace, Row: c.Row, Rank: c.Rank}, true
	case CmdDiscard:
		return engine.Action{Type: engine.ActionDiscard, Rank: c.Rank}, true
	default:
		return engine.Action{}, false
	}
}

// ParseChoice decodes a choosing-phase line: a bare card number or quit.
func ParseChoice(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 1 && fields[0] == KeywordQuit {
		return Command{Kind: CmdQuit}
	}
	if len(fields) != 1 {
		return invalid(ReasonInvalidNumber)
	}
	rank, err := engine.ParseRank(fields[0])
	if err != nil {
		return invalid(ReasonInvalidNumber)
	}
	return Command{Kind: CmdChoose, Rank: rank}
}

// ParseAction decodes an action-phase line.
func ParseAction(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return invalid(ReasonUnknownCommand)
	}
	args := fields[1:]

	switch fields[0] {
	case KeywordQuit:
		if len(args) != 0 {
			return invalid(ReasonWrongArgCount)
		}
		return Command{Kind: CmdQuit}

	case KeywordHelp:
		if len(args) != 0 {
			return invalid(ReasonWrongArgCount)
		}
		return Command{Kind: CmdHelp}

	case KeywordPlace:
		if len(args) != 2 {
			return invalid(ReasonWrongArgCount)
		}
		row, err := engine.ParseRank(args[0])
		if err != nil {
			return invalid(ReasonInvalidRow)
		}
		rank, err := engine.ParseRank(args[1])
		if err != nil {
			return invalid(ReasonInvalidNumber)
		}
		return Command{Kind: CmdPlace, Row: row, Rank: rank}

	case KeywordDiscard:
		if len(args) != 1 {
			return invalid(ReasonWrongArgCount)
		}
		rank, err := engine.ParseRank(args[0])
		if err != nil {
			return invalid(ReasonInvalidNumber)
		}
		return Command{Kind: CmdDiscard, Rank: rank}

	default:
		return invalid(ReasonUnknownCommand)
	}
}
