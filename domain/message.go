// Package domain contains core concepts of the chat.
// This file defines Message and how a transcript line is rendered.
// Messages are never stored: the transcript pane keeps only the rendered text.
package domain

import (
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
)

// Message represents one chat line, sent or received.
type Message struct {
	ID        uuid.UUID // correlates log entries, never sent on the wire
	Sender    string
	Content   string
	CreatedAt time.Time
}

func NewMessage(sender, content string) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// Line renders the message the way the transcript shows it.
func (m Message) Line() string {
	return FormatLine(m.Sender, m.Content)
}

// FormatLine renders "[label] body". An empty body keeps the trailing space.
func FormatLine(label, body string) string {
	return fmt.Sprintf("[%s] %s", label, body)
}

// SenderLabel formats the origin of a datagram as "<ip>:<port>".
// IPv4-mapped IPv6 addresses are printed in their IPv4 form.
func SenderLabel(addr *net.UDPAddr) string {
	if addr == nil {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", addr.IP.String(), addr.Port)
}
