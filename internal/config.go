package internal

import (
	"chat-term/errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LocalPort       int           `env:"LOCAL_PORT,default=2000" validate:"min=1,max=65535"`
	PeerHost        string        `env:"PEER_HOST,required=true" validate:"required,hostname_rfc1123|ip"`
	PeerPort        int           `env:"PEER_PORT,default=2000" validate:"min=1,max=65535"`
	MaxMessageSize  int           `env:"MAX_MESSAGE_SIZE,default=2000" validate:"min=1,max=65507"`
	SelfLabel       string        `env:"SELF_LABEL,default=You" validate:"required"`
	LogLevel        string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFile         string        `env:"LOG_FILE"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	CensoredWords   string        `env:"CENSORED_WORDS"`
	CensorCharacter string        `env:"CENSOR_CHARACTER,default=*"`
	PrintSummary    bool          `env:"PRINT_SUMMARY,default=true"`
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, err := config.CensorRune(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) CensorRune() (rune, error) {
	r := []rune(c.CensorCharacter)
	if len(r) != 1 {
		return 0, fmt.Errorf("%w: CENSOR_CHARACTER got %q", errors.ErrInvalidCharacter, c.CensorCharacter)
	}
	return r[0], nil
}

// SessionLogger returns the logger used while the screen owns the terminal.
// Writing to stdout or stderr would corrupt the display, so records go to
// LOG_FILE or are dropped.
func (c Config) SessionLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	file, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
