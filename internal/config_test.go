package internal

import (
	"chat-term/errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PEER_HOST", "192.168.1.21")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("192.168.1.21", config.PeerHost)
	req.Equal(2000, config.LocalPort)
	req.Equal(2000, config.PeerPort)
	req.Equal(2000, config.MaxMessageSize)
	req.Equal("You", config.SelfLabel)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.True(config.PrintSummary)
}

func TestLoadConfig_MissingPeer(t *testing.T) {
	if _, ok := os.LookupEnv("PEER_HOST"); ok {
		t.Skip("PEER_HOST set in the environment")
	}

	_, err := LoadConfig()

	require.Error(t, err)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("PEER_HOST", "localhost")
	t.Setenv("PEER_PORT", "70000")

	_, err := LoadConfig()

	require.ErrorContains(t, err, "PeerPort")
}

func TestLoadConfig_InvalidCensorCharacter(t *testing.T) {
	t.Setenv("PEER_HOST", "localhost")
	t.Setenv("CENSOR_CHARACTER", "**")

	_, err := LoadConfig()

	require.ErrorIs(t, err, errors.ErrInvalidCharacter)
}

func TestConfig_SessionLogger(t *testing.T) {
	req := require.New(t)

	// Given no log file, records are dropped
	log, closer, err := Config{LogLevel: "INFO"}.SessionLogger()
	req.NoError(err)
	log.Info("dropped")
	req.NoError(closer.Close())

	// Given a log file, records at or above the level are written
	path := filepath.Join(t.TempDir(), "chat.log")
	log, closer, err = Config{LogLevel: "WARN", LogFile: path}.SessionLogger()
	req.NoError(err)
	log.Info("hidden")
	log.Warn("datagram lost", "peer", "203.0.113.5:4000")
	req.NoError(closer.Close())

	content, err := os.ReadFile(path)
	req.NoError(err)
	req.Contains(string(content), "datagram lost")
	req.NotContains(string(content), "hidden")
}
