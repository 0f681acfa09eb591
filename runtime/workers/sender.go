package workers

import (
	"chat-term/contract"
	"chat-term/domain"
	chaterrors "chat-term/errors"
	"chat-term/observability"
	"context"
	"errors"
	"log/slog"
	"net"
)

// SendWorker is the foreground loop: read a line, send it, echo it.
// Send failures are counted and logged, never shown: datagrams may be lost.
type SendWorker struct {
	log        *slog.Logger
	editor     contract.LineReader
	input      contract.InputPane
	transport  contract.Transport
	transcript contract.Transcript
	peer       *net.UDPAddr
	selfLabel  string
	stats      *observability.SessionStats
	stop       context.CancelFunc
}

// NewSendWorker takes the session stop function, called when the user quits.
func NewSendWorker(
	log *slog.Logger,
	editor contract.LineReader,
	input contract.InputPane,
	transport contract.Transport,
	transcript contract.Transcript,
	peer *net.UDPAddr,
	selfLabel string,
	stats *observability.SessionStats,
	stop context.CancelFunc,
) *SendWorker {
	return &SendWorker{
		log:        log,
		editor:     editor,
		input:      input,
		transport:  transport,
		transcript: transcript,
		peer:       peer,
		selfLabel:  selfLabel,
		stats:      stats,
		stop:       stop,
	}
}

func (w *SendWorker) Run(ctx context.Context) error {
	for {
		line, err := w.editor.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, chaterrors.ErrInterrupted) || errors.Is(err, chaterrors.ErrScreenClosed) || ctx.Err() != nil {
				w.log.Info("Input closed, ending session", "reason", err)
				w.stop()
				return nil
			}
			return err
		}

		msg := domain.NewMessage(w.selfLabel, line)
		if err = w.transport.Send(w.peer, []byte(msg.Content)); err != nil {
			w.stats.IncrSendFailures()
			w.log.Debug("Message not sent", "id", msg.ID, "error", err)
		} else {
			w.stats.IncrSent(len(msg.Content))
			w.log.Debug("Message sent", "id", msg.ID, "to", w.peer.String(), "bytes", len(msg.Content))
		}
		w.transcript.Append(msg.Sender, msg.Content)
		w.input.Clear()
	}
}
