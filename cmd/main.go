package main

import (
	"chat-term/contract"
	"chat-term/internal"
	"chat-term/moderation"
	"chat-term/observability"
	"chat-term/runtime/workers"
	"chat-term/transport"
	"chat-term/ui"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the chat and returns once the session ends.
// Deferred cleanups restore the terminal and close the socket on every path.
func run() error {
	// 1. Configuration & boot logger, the terminal is still in cooked mode
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	bootLog := logs.GetLoggerFromString(config.LogLevel)

	// 2. Network, a busy port is fatal
	peer, err := transport.ResolvePeer(config.PeerHost, config.PeerPort)
	if err != nil {
		return err
	}
	conn, err := transport.Open(config.LocalPort, config.MaxMessageSize)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	bootLog.Info("Socket bound", "local", conn.LocalAddr().String(), "peer", peer.String())

	moderator, err := newModerator(config)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}

	// 3. Session logger, never writes to the terminal
	log, logCloser, err := config.SessionLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()

	// 4. Terminal
	screen, err := ui.OpenScreen()
	if err != nil {
		return err
	}
	display, err := ui.NewDisplay(screen, config.SelfLabel)
	if err != nil {
		screen.Fini()
		return err
	}
	defer display.Close()
	defer func() {
		if r := recover(); r != nil {
			display.Close()
			panic(r)
		}
	}()

	// 5. Context & Signals, closing the socket and waking the editor
	// unblocks both loops
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	context.AfterFunc(ctx, func() {
		_ = conn.Close()
		display.Interrupt()
	})

	// 6. Both loops under supervision
	stats := observability.NewSessionStats()
	editor := ui.NewEditor(screen, display.Input, config.MaxMessageSize, func(err error) {
		stats.IncrBells()
		log.Debug("Bell", "reason", err)
	})
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewReceiveWorker(log, conn, display.Transcript, moderator, stats),
		workers.NewSendWorker(log, editor, display.Input, conn, display.Transcript,
			peer, config.SelfLabel, stats, cancel),
	).Run(ctx)

	// 7. Final Cleanup
	display.Close()
	log.Info("Session ended")
	if config.PrintSummary {
		stats.Report(os.Stdout)
	}
	return nil
}

// newModerator returns a nil Moderator when no word is configured.
func newModerator(config internal.Config) (contract.Moderator, error) {
	words := moderation.ParseWords(config.CensoredWords)
	if len(words) == 0 {
		return nil, nil
	}
	censorRune, err := config.CensorRune()
	if err != nil {
		return nil, err
	}
	return moderation.NewModerator(words, censorRune)
}
