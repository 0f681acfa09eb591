// Headless peer: sends stdin lines to PEER_HOST:PEER_PORT and prints
// every datagram received on LOCAL_PORT. Handy to talk to the full-screen
// client from a script or a second shell on the same host.
package main

import (
	"bufio"
	"chat-term/domain"
	"chat-term/internal"
	"chat-term/transport"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	peer, err := transport.ResolvePeer(config.PeerHost, config.PeerPort)
	if err != nil {
		return err
	}
	conn, err := transport.Open(config.LocalPort, config.MaxMessageSize)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	context.AfterFunc(ctx, func() { _ = conn.Close() })

	log.Info("Headless peer started", "local", conn.LocalAddr().String(), "peer", peer.String())

	go func() {
		for {
			payload, from, err := conn.Receive()
			if err != nil {
				if !errors.Is(err, net.ErrClosed) {
					log.Error("Receive failed", "error", err)
				}
				return
			}
			color.Cyan.Println(domain.FormatLine(domain.SenderLabel(from), string(payload)))
		}
	}()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 4096), 64*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping headless peer")
			return nil
		case err = <-scanErr:
			return err
		case line := <-lines:
			if len(line) > config.MaxMessageSize {
				log.Warn("Line too long, not sent", "bytes", len(line), "max", config.MaxMessageSize)
				continue
			}
			if err = conn.Send(peer, []byte(line)); err != nil {
				log.Debug("Message not sent", "error", err)
				continue
			}
			color.Green.Println(domain.FormatLine(config.SelfLabel, line))
		}
	}
}
