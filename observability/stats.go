package observability

import (
	"fmt"
	"io"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// SessionStats counts what happened during one chat session.
// All counters are updated atomically by the send and receive workers.
type SessionStats struct {
	StartedAt time.Time

	MessagesSent     atomic.Uint64
	MessagesReceived atomic.Uint64
	BytesSent        atomic.Uint64
	BytesReceived    atomic.Uint64
	SendFailures     atomic.Uint64
	ReceiveErrors    atomic.Uint64
	Bells            atomic.Uint64
	Censored         atomic.Uint64
}

func NewSessionStats() *SessionStats {
	return &SessionStats{StartedAt: time.Now()}
}

func (s *SessionStats) IncrSent(bytes int) {
	s.MessagesSent.Add(1)
	s.BytesSent.Add(uint64(bytes))
}

func (s *SessionStats) IncrReceived(bytes int) {
	s.MessagesReceived.Add(1)
	s.BytesReceived.Add(uint64(bytes))
}

func (s *SessionStats) IncrSendFailures() { s.SendFailures.Add(1) }

func (s *SessionStats) IncrReceiveErrors() { s.ReceiveErrors.Add(1) }

func (s *SessionStats) IncrBells() { s.Bells.Add(1) }

func (s *SessionStats) IncrCensored() { s.Censored.Add(1) }

// Report prints the summary table, once the terminal is back to normal.
func (s *SessionStats) Report(w io.Writer) {
	elapsed := time.Since(s.StartedAt).Round(time.Second)
	fmt.Fprintln(w, color.Green.Sprint("Session summary"))

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.AppendBulk([][]string{
		{"Duration", elapsed.String()},
		{"Messages sent", format(s.MessagesSent.Load())},
		{"Messages received", format(s.MessagesReceived.Load())},
		{"Bytes sent", format(s.BytesSent.Load())},
		{"Bytes received", format(s.BytesReceived.Load())},
		{"Send failures", format(s.SendFailures.Load())},
		{"Receive errors", format(s.ReceiveErrors.Load())},
		{"Bells", format(s.Bells.Load())},
		{"Censored messages", format(s.Censored.Load())},
	})
	table.Render()
}

func format(n uint64) string {
	return strconv.FormatUint(n, 10)
}
