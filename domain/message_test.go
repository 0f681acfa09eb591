package domain

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessage_Line(t *testing.T) {
	req := require.New(t)

	msg := NewMessage("You", "hoi")

	req.Equal("[You] hoi", msg.Line())
	req.NotEmpty(msg.ID.String())
	req.False(msg.CreatedAt.IsZero())
}

func TestFormatLine_EmptyBody(t *testing.T) {
	require.Equal(t, "[You] ", FormatLine("You", ""))
}

func TestSenderLabel(t *testing.T) {
	tests := []struct {
		name     string
		addr     *net.UDPAddr
		expected string
	}{
		{
			name:     "IPv4",
			addr:     &net.UDPAddr{IP: net.ParseIP("203.0.113.5"), Port: 4000},
			expected: "203.0.113.5:4000",
		},
		{
			name:     "IPv4 mapped in IPv6",
			addr:     &net.UDPAddr{IP: net.IPv4(10, 0, 0, 7).To16(), Port: 2000},
			expected: "10.0.0.7:2000",
		},
		{
			name:     "IPv6",
			addr:     &net.UDPAddr{IP: net.ParseIP("2001:db8::1"), Port: 2000},
			expected: "2001:db8::1:2000",
		},
		{
			name:     "Missing address",
			addr:     nil,
			expected: "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SenderLabel(tt.addr))
		})
	}
}

func TestSenderLabel_ReceivedScenario(t *testing.T) {
	from := &net.UDPAddr{IP: net.ParseIP("203.0.113.5"), Port: 4000}

	require.Equal(t, "[203.0.113.5:4000] hello", FormatLine(SenderLabel(from), "hello"))
}
