package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"sakura/internal/engine"
	"sakura/internal/protocol"
)

// ErrQuit is returned by Run when a player types quit.
var ErrQuit = errors.New("player quit")

// Session drives one game over a line-based console.
type Session struct {
	game   *engine.Game
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

func NewSession(game *engine.Game, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		game:   game,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run starts the game and plays it to the end. It returns the final scores,
// ErrQuit if a player quit, or io.ErrUnexpectedEOF if input ran out first.
func (s *Session) Run() ([]engine.ScoreEntry, error) {
	s.handleEvents(s.game.StartGame())

	for s.game.Phase != engine.PhaseGameOver {
		var err error
		switch s.game.Phase {
		case engine.PhaseChoosing:
			err = s.chooseTurn()
		case engine.PhaseAction:
			err = s.actionTurn()
		default:
			err = fmt.Errorf("%w: %s", engine.ErrWrongPhase, s.game.Phase)
		}
		if err != nil {
			return nil, err
		}
	}
	return s.game.Scores, nil
}

// chooseTurn handles one pick of the current chooser.
func (s *Session) chooseTurn() error {
	id := s.game.CurrentPlayerID()
	s.renderPlayer(id, false)

	for {
		fmt.Fprintf(s.out, protocol.MsgChoosePrompt, ordinal(s.game.Choosing.PickNumber(id)))
		line, err := s.readLine()
		if err != nil {
			return err
		}

		cmd := protocol.ParseChoice(line)
		switch cmd.Kind {
		case protocol.CmdQuit:
			return ErrQuit
		case protocol.CmdInvalid:
			s.sendError(cmd.Reason.String())
			continue
		}
		if s.apply(id, cmd) {
			return nil
		}
	}
}

// actionTurn handles one place or discard of the current actor.
func (s *Session) actionTurn() error {
	id := s.game.CurrentPlayerID()
	s.renderPlayer(id, true)

	for {
		fmt.Fprint(s.out, protocol.MsgActionPrompt)
		line, err := s.readLine()
		if err != nil {
			return err
		}

		cmd := protocol.ParseAction(line)
		switch cmd.Kind {
		case protocol.CmdQuit:
			return ErrQuit
		case protocol.CmdHelp:
			fmt.Fprint(s.out, protocol.MsgHelp)
			continue
		case protocol.CmdInvalid:
			s.sendError(cmd.Reason.String())
			continue
		}
		if s.apply(id, cmd) {
			return nil
		}
	}
}

// apply sends a decoded command to the engine and reports whether it took
// effect.
func (s *Session) apply(playerID int, cmd protocol.Command) bool {
	action, ok := cmd.Action()
	if !ok {
		s.sendError(protocol.ReasonUnknownCommand.String())
		return false
	}
	events, err := s.game.Apply(playerID, action)
	if err != nil {
		s.logger.Debug("action rejected",
			"player", playerID, "action", action.Type, "rank", action.Rank, "row", action.Row, "error", err)
		s.sendError(protocol.ErrorMessage(err))
		return false
	}
	s.handleEvents(events)
	return true
}

func (s *Session) handleEvents(events []engine.Event) {
	for _, ev := range events {
		s.logger.Debug("game event", "type", ev.Type, "player", ev.Player, "data", ev.Data)
		if ev.Type != engine.EventPhaseChange {
			continue
		}
		data, _ := ev.Data.(map[string]interface{})
		switch data["phase"] {
		case engine.PhaseChoosing.String():
			fmt.Fprint(s.out, protocol.MsgChoosingHeader)
		case engine.PhaseAction.String():
			fmt.Fprint(s.out, protocol.MsgActionHeader)
		case engine.PhaseGameOver.String():
			fmt.Fprint(s.out, protocol.MsgGameEndHeader)
		}
	}
}

func (s *Session) readLine() (string, error) {
	fmt.Fprint(s.out, protocol.MsgInputMarker)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.ErrUnexpectedEOF
	}
	return s.in.Text(), nil
}

func (s *Session) sendError(message string) {
	fmt.Fprintln(s.out, message)
}
