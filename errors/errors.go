package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Transport
	ErrBindFailure = fmt.Errorf("could not bind local port")
	ErrSendFailure = fmt.Errorf("datagram not sent")

	// Line editor, signalled with a bell and never shown as text
	ErrInputOverflow     = fmt.Errorf("message size limit reached")
	ErrInvalidCursorMove = fmt.Errorf("cursor cannot move past the draft")
	ErrUnknownKey        = fmt.Errorf("unsupported key")

	ErrInterrupted       = fmt.Errorf("session interrupted by user")
	ErrScreenClosed      = fmt.Errorf("screen closed")
	ErrTerminalTooSmall  = fmt.Errorf("terminal too small")
	ErrInvalidCharacter  = fmt.Errorf("expected a single character")
	ErrInvalidPeerConfig = fmt.Errorf("invalid peer address")
)
