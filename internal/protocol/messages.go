package protocol

import (
	"errors"

	"sakura/internal/engine"
)

// Console banners and prompts.
const (
	MsgWelcome        = "Welcome to SyntaxSakura (%d players are playing)!\n\n"
	MsgChoosingHeader = "-------------------\nCARD CHOOSING PHASE\n-------------------\n\n"
	MsgActionHeader   = "------------------\nCARD ACTION PHASE\n------------------\n\n"
	MsgGameEndHeader  = "--------\nGAME END\n--------\n\n"
	MsgPlayer         = "Player %d:\n"
	MsgHandCards      = "  hand cards: %s\n"
	MsgChosenCards    = "  chosen cards: %s\n"
	MsgRow            = "  row_%d: %s\n"
	MsgChoosePrompt   = "Please choose a %s card to keep:\n"
	MsgActionPrompt   = "What do you want to do?\n"
	MsgInputMarker    = " > "
	MsgHelp           = "\nAvailable commands:\n\n" +
		"- help\n  Display this help message.\n\n" +
		"- place <row number> <card number>\n  Append a card to the chosen row or if the chosen row does not exist create it.\n\n" +
		"- discard <card number>\n  Discard a card from the chosen cards.\n\n" +
		"- quit\n  Terminate the program.\n\n"
)

// Process-level messages printed by the CLI.
const (
	MsgUsage          = "Usage: ./sakura <config file>\n"
	MsgCannotOpenFile = "Error: Cannot open file: %s\n"
	MsgInvalidFile    = "Error: Invalid file: %s\n"
	MsgWriteWarning   = "Warning: Results not written to file!\n"
)

// Reason says why an input line could not be decoded.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonUnknownCommand
	ReasonWrongArgCount
	ReasonInvalidNumber
	ReasonInvalidRow
)

var reasonMessages = map[Reason]string{
	ReasonUnknownCommand: "Please enter a correct command!",
	ReasonWrongArgCount:  "Please enter the correct number of parameters!",
	ReasonInvalidNumber:  "Please enter a valid number!",
	ReasonInvalidRow:     "Please enter a valid row number!",
}

func (r Reason) String() string {
	if s, ok := reasonMessages[r]; ok {
		return s
	}
	return ""
}

// ErrorMessage maps an engine error to the line shown to the player.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrRankOutOfRange), errors.Is(err, engine.ErrInvalidNumber):
		return ReasonInvalidNumber.String()
	case errors.Is(err, engine.ErrInvalidRow):
		return ReasonInvalidRow.String()
	case errors.Is(err, engine.ErrCardNotInHand):
		return "Please enter the number of a card in your hand cards!"
	case errors.Is(err, engine.ErrCardNotChosen):
		return "Please enter the number of a card in your chosen cards!"
	case errors.Is(err, engine.ErrIllegalPlacement):
		return "This card cannot extend the chosen row!"
	default:
		return ReasonUnknownCommand.String()
	}
}
