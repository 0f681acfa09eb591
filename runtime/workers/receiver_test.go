package workers

import (
	"chat-term/mocks"
	"chat-term/observability"
	"context"
	"errors"
	"log/slog"
	"net"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var origin = &net.UDPAddr{IP: net.ParseIP("203.0.113.5"), Port: 4000}

func TestReceiveWorker_AppendsLabelledLine(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transcript := mocks.NewMockTranscript(ctrl)
	stats := observability.NewSessionStats()

	gomock.InOrder(
		transport.EXPECT().Receive().Return([]byte("hello"), origin, nil),
		transcript.EXPECT().Append("203.0.113.5:4000", "hello"),
		// Then the loop ends when the socket is closed
		transport.EXPECT().Receive().Return(nil, nil, net.ErrClosed),
	)

	worker := NewReceiveWorker(log, transport, transcript, nil, stats)

	req.NoError(worker.Run(context.Background()))
	req.Equal(uint64(1), stats.MessagesReceived.Load())
	req.Equal(uint64(5), stats.BytesReceived.Load())
}

func TestReceiveWorker_CensorsBody(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transcript := mocks.NewMockTranscript(ctrl)
	moderator := mocks.NewMockModerator(ctrl)
	stats := observability.NewSessionStats()

	gomock.InOrder(
		transport.EXPECT().Receive().Return([]byte("a badger"), origin, nil),
		moderator.EXPECT().Censor("a badger").Return("a ******", []string{"badger"}),
		transcript.EXPECT().Append("203.0.113.5:4000", "a ******"),
		transport.EXPECT().Receive().Return(nil, nil, net.ErrClosed),
	)

	worker := NewReceiveWorker(log, transport, transcript, moderator, stats)

	req.NoError(worker.Run(context.Background()))
	req.Equal(uint64(1), stats.Censored.Load())
}

func TestReceiveWorker_ReturnsUnexpectedErrors(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transcript := mocks.NewMockTranscript(ctrl)
	stats := observability.NewSessionStats()
	failure := errors.New("connection refused")

	transport.EXPECT().Receive().Return(nil, nil, failure)

	worker := NewReceiveWorker(log, transport, transcript, nil, stats)

	// Then the supervisor gets the error and will restart the worker
	req.ErrorIs(worker.Run(context.Background()), failure)
	req.Equal(uint64(1), stats.ReceiveErrors.Load())
}

func TestReceiveWorker_StopsWhenContextCancelled(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockTransport(ctrl)
	transcript := mocks.NewMockTranscript(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	worker := NewReceiveWorker(log, transport, transcript, nil, observability.NewSessionStats())

	require.NoError(t, worker.Run(ctx))
}
