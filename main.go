package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"sakura/internal/config"
	"sakura/internal/console"
	"sakura/internal/engine"
	"sakura/internal/protocol"
	"sakura/internal/qrcode"
	"sakura/internal/report"
)

var version = "dev"

// Exit codes.
const (
	exitOK          = 0
	exitUsage       = 1
	exitCannotOpen  = 2
	exitInvalidFile = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sakura", flag.ContinueOnError)
	fs.SetOutput(stderr)
	settingsPath := fs.String("settings", "", "optional YAML settings file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(stdout, protocol.MsgUsage)
		return exitUsage
	}
	if *showVersion {
		fmt.Fprintln(stdout, "sakura", version)
		return exitOK
	}
	if fs.NArg() != 1 {
		fmt.Fprint(stdout, protocol.MsgUsage)
		return exitUsage
	}
	path := fs.Arg(0)

	settings, err := config.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(stderr, "settings: %v\n", err)
		return exitUsage
	}
	logger := settings.Log.NewLogger(stderr).With("game", uuid.NewString())

	file, err := config.Load(path)
	if err != nil {
		logger.Debug("config rejected", "path", path, "error", err)
		if errors.Is(err, config.ErrCannotOpen) {
			fmt.Fprintf(stdout, protocol.MsgCannotOpenFile, path)
			return exitCannotOpen
		}
		fmt.Fprintf(stdout, protocol.MsgInvalidFile, path)
		return exitInvalidFile
	}

	players := []*engine.Player{engine.NewPlayer(1), engine.NewPlayer(2)}
	game := engine.NewGame(players, file.Deck(), engine.DefaultConfig())
	logger.Info("game created", "config", path, "players", len(players))

	fmt.Fprintf(stdout, protocol.MsgWelcome, len(players))
	scores, err := console.NewSession(game, stdin, stdout, logger).Run()
	switch {
	case errors.Is(err, console.ErrQuit), errors.Is(err, io.ErrUnexpectedEOF):
		logger.Info("game aborted", "round", game.Round, "reason", err)
		return exitOK
	case err != nil:
		logger.Error("game failed", "error", err)
		return exitOK
	}

	text := report.Format(scores)
	fmt.Fprint(stdout, text)
	if err := report.Append(path, text); err != nil {
		logger.Warn("results not written", "path", path, "error", err)
		fmt.Fprint(stdout, protocol.MsgWriteWarning)
	}

	if settings.Results.QR {
		code, err := qrcode.Terminal(text)
		if err != nil {
			logger.Warn("qr code", "error", err)
		} else {
			fmt.Fprint(stdout, code)
		}
	}
	return exitOK
}
