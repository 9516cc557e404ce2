package logger_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/clinic-api/pkg/logger"
)

func newBufferLogger(level logger.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     &buf,
	})
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	level, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, level)

	_, err = logger.ParseLevel("chatty")
	assert.Error(t, err)
}

func TestLoggerSuppressesBelowConfiguredLevel(t *testing.T) {
	l, buf := newBufferLogger(logger.InfoLevel)

	l.Debug("noise")
	l.Info("signal")

	out := buf.String()
	assert.NotContains(t, out, "noise")
	assert.Contains(t, out, "signal")
}

func TestWithFieldsCarriesFields(t *testing.T) {
	l, buf := newBufferLogger(logger.InfoLevel)

	l.WithFields(map[string]interface{}{"component": "scheduler"}).Info("started")

	out := buf.String()
	assert.Contains(t, out, "component")
	assert.Contains(t, out, "scheduler")
}
