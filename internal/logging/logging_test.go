package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelDebug,
		Format: "json",
		Output: &buf,
	}

	logger := NewLogger(config)
	require.NotNil(t, logger)

	logger.Info("test message", "key", "value")
	output := buf.String()

	assert.Contains(t, output, `"msg":"test message"`)
	assert.Contains(t, output, `"key":"value"`)
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: "text", Output: &buf})

	logger.InfoContext(context.Background(), "test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "INFO")
}

func TestNewLogger_NilOutputFallsBackToStderr(t *testing.T) {
	logger := NewLogger(Config{Level: LevelError})
	require.NotNil(t, logger)
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelWarn, config.Level)
	assert.Equal(t, "text", config.Format)
	assert.NotNil(t, config.Output)
}

func TestNewLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		level       LogLevel
		shouldLog   []string
		shouldntLog []string
	}{
		{
			name:        "debug_level",
			level:       LevelDebug,
			shouldLog:   []string{"debug", "info", "warn", "error"},
			shouldntLog: []string{},
		},
		{
			name:        "warn_level",
			level:       LevelWarn,
			shouldLog:   []string{"warn", "error"},
			shouldntLog: []string{"debug", "info"},
		},
		{
			name:        "error_level",
			level:       LevelError,
			shouldLog:   []string{"error"},
			shouldntLog: []string{"debug", "info", "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Level: tt.level, Format: "text", Output: &buf})

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			output := buf.String()
			for _, level := range tt.shouldLog {
				assert.Contains(t, output, level+" message")
			}
			for _, level := range tt.shouldntLog {
				assert.NotContains(t, output, level+" message")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{" info ", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelWarn},
		{"verbose", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelDebug.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LevelInfo.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LevelWarn.SlogLevel())
	assert.Equal(t, slog.LevelError, LevelError.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogLevel("bogus").SlogLevel())
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelError))
}

func TestWithOperationAndPath(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: "text", Output: &buf})

	WithPath(WithOperation(logger, "read"), "demo.txt").Info("opened")

	output := buf.String()
	assert.True(t, strings.Contains(output, "operation=read"), output)
	assert.True(t, strings.Contains(output, "path=demo.txt"), output)
}
