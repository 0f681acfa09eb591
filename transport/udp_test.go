package transport

import (
	"chat-term/errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func loopback(t *testing.T, tr *UDPTransport) *net.UDPAddr {
	t.Helper()
	peer, err := ResolvePeer("127.0.0.1", tr.LocalAddr().Port)
	require.NoError(t, err)
	return peer
}

func receiveWithTimeout(t *testing.T, tr *UDPTransport) ([]byte, *net.UDPAddr) {
	t.Helper()
	type result struct {
		payload []byte
		from    *net.UDPAddr
		err     error
	}
	done := make(chan result, 1)
	go func() {
		payload, from, err := tr.Receive()
		done <- result{payload, from, err}
	}()
	select {
	case res := <-done:
		require.NoError(t, res.err)
		return res.payload, res.from
	case <-time.After(2 * time.Second):
		require.Fail(t, "no datagram received in time")
		return nil, nil
	}
}

func TestUDPTransport_SendAndReceive(t *testing.T) {
	req := require.New(t)

	receiver, err := Open(0, 2000)
	req.NoError(err)
	defer receiver.Close()

	sender, err := Open(0, 2000)
	req.NoError(err)
	defer sender.Close()

	// When a datagram is sent to the receiver
	req.NoError(sender.Send(loopback(t, receiver), []byte("hello")))

	// Then the payload and the origin port come back
	payload, from := receiveWithTimeout(t, receiver)
	req.Equal("hello", string(payload))
	req.Equal(sender.LocalAddr().Port, from.Port)
}

func TestUDPTransport_EmptyDatagram(t *testing.T) {
	req := require.New(t)

	tr, err := Open(0, 2000)
	req.NoError(err)
	defer tr.Close()

	req.NoError(tr.Send(loopback(t, tr), []byte{}))

	payload, _ := receiveWithTimeout(t, tr)
	req.Empty(payload)
}

func TestUDPTransport_TruncatesOversizedDatagram(t *testing.T) {
	req := require.New(t)

	receiver, err := Open(0, 4)
	req.NoError(err)
	defer receiver.Close()

	sender, err := Open(0, 2000)
	req.NoError(err)
	defer sender.Close()

	req.NoError(sender.Send(loopback(t, receiver), []byte("truncated")))

	payload, _ := receiveWithTimeout(t, receiver)
	req.Equal("trun", string(payload))
}

func TestOpen_BindFailure(t *testing.T) {
	req := require.New(t)

	first, err := Open(0, 2000)
	req.NoError(err)
	defer first.Close()

	// Given the port is already taken
	_, err = Open(first.LocalAddr().Port, 2000)

	req.ErrorIs(err, errors.ErrBindFailure)
}

func TestUDPTransport_ReceiveAfterClose(t *testing.T) {
	req := require.New(t)

	tr, err := Open(0, 2000)
	req.NoError(err)

	done := make(chan error, 1)
	go func() {
		_, _, err := tr.Receive()
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	req.NoError(tr.Close())

	select {
	case err := <-done:
		req.ErrorIs(err, net.ErrClosed)
	case <-time.After(2 * time.Second):
		req.Fail("Receive was not unblocked by Close")
	}
}

func TestResolvePeer_Invalid(t *testing.T) {
	_, err := ResolvePeer("bad host name", 2000)

	require.ErrorIs(t, err, errors.ErrInvalidPeerConfig)
}
