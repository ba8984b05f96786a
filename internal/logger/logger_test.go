package logger

import (
	"path/filepath"
	"testing"

	"github.com/aleister1102/secaudit/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{input: "debug", want: zerolog.DebugLevel},
		{input: "INFO", want: zerolog.InfoLevel},
		{input: "warn", want: zerolog.WarnLevel},
		{input: "error", want: zerolog.ErrorLevel},
		{input: "bogus", want: zerolog.InfoLevel},
		{input: "", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatConsole, ParseFormat("console"))
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatConsole, ParseFormat("unknown"))
}

func TestLogFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "console", FormatConsole.String())
	assert.Equal(t, "text", FormatText.String())
}

func TestLoggerBuilder_Build(t *testing.T) {
	t.Run("defaults build", func(t *testing.T) {
		logger, err := NewLoggerBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("level override wins", func(t *testing.T) {
		logger, err := NewLoggerBuilder().
			WithConfig(config.NewDefaultLogConfig()).
			WithLevel(zerolog.DebugLevel).
			Build()
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
	})

	t.Run("file logging", func(t *testing.T) {
		cfg := config.NewDefaultLogConfig()
		cfg.LogFile = filepath.Join(t.TempDir(), "audit.log")

		logger, err := New(cfg)
		require.NoError(t, err)
		logger.Info().Msg("probe")
	})
}

func TestNew_FromAppConfig(t *testing.T) {
	cfg := config.NewDefaultLogConfig()
	cfg.LogLevel = "warn"

	logger, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}
