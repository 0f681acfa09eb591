package workers

import (
	"chat-term/contract"
	"chat-term/domain"
	"chat-term/observability"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// ReceiveWorker displays every datagram as "[ip:port] text".
// It has no backpressure: bursts queue in the kernel socket buffer.
type ReceiveWorker struct {
	log        *slog.Logger
	transport  contract.Transport
	transcript contract.Transcript
	moderator  contract.Moderator
	stats      *observability.SessionStats
}

// NewReceiveWorker accepts a nil moderator, received text is then shown as is.
func NewReceiveWorker(
	log *slog.Logger,
	transport contract.Transport,
	transcript contract.Transcript,
	moderator contract.Moderator,
	stats *observability.SessionStats,
) *ReceiveWorker {
	return &ReceiveWorker{
		log:        log,
		transport:  transport,
		transcript: transcript,
		moderator:  moderator,
		stats:      stats,
	}
}

// Run returns nil once the socket is closed or ctx is cancelled.
// Any other receive error is returned so the supervisor restarts the worker.
func (w *ReceiveWorker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		payload, from, err := w.transport.Receive()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				w.log.Debug("Socket closed, stopping receive loop")
				return nil
			}
			w.stats.IncrReceiveErrors()
			return fmt.Errorf("receive failed: %w", err)
		}

		msg := domain.NewMessage(domain.SenderLabel(from), w.censor(string(payload)))
		w.transcript.Append(msg.Sender, msg.Content)
		w.stats.IncrReceived(len(payload))
		w.log.Debug("Message received", "id", msg.ID, "from", msg.Sender, "bytes", len(payload))
	}
}

func (w *ReceiveWorker) censor(content string) string {
	if w.moderator == nil {
		return content
	}
	censored, words := w.moderator.Censor(content)
	if len(words) > 0 {
		w.stats.IncrCensored()
		w.log.Debug("Message censored", "words", words)
	}
	return censored
}
