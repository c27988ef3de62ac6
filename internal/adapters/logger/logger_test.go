package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/smelt/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, slog.LevelInfo)

	l.Info("extracting declarations")
	l.Warn("2 warnings reported")
	l.Error(zerr.New("extractor crashed"))

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "extracting declarations")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "2 warnings reported")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "extractor crashed")
}

func TestSetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.NewWithWriter(&first, slog.LevelInfo)

	l.Info("before")
	l.SetOutput(&second)
	l.Info("after")

	assert.Contains(t, first.String(), "before")
	assert.NotContains(t, first.String(), "after")
	assert.Contains(t, second.String(), "after")
}
