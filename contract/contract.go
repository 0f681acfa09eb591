//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// It is only used to label supervision logs.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Transport sends datagrams to a peer and receives them from anyone.
type Transport interface {
	Send(peer *net.UDPAddr, payload []byte) error
	Receive() ([]byte, *net.UDPAddr, error)
	Close() error
}

// Transcript is the only writable side of the history pane.
// Append must be safe for concurrent callers and render each line atomically.
type Transcript interface {
	Append(label, body string)
}

// LineReader blocks until the user confirms a line.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

type InputPane interface {
	Clear()
}

// Moderator masks forbidden words and reports which ones were found.
type Moderator interface {
	Censor(text string) (string, []string)
}
