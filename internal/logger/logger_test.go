package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("globals")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// TestNewClientLogger_WritesToFile verifies that a client logger appends JSON
// entries to the configured file instead of the terminal.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")

	l := NewClientLogger("client", path)
	l.Info().Msg("written to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "client", entry["role"])
	assert.Equal(t, "written to file", entry["message"])
}

func TestNewClientLogger_FallsBackWhenPathIsUnusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "client.log")

	l := NewClientLogger("client", path)
	require.NotNil(t, l)
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

func TestForComponent_AddsComponentField(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("ui")
	parent.Logger = parent.Output(&buf)

	parent.ForComponent("sorting").Debug().Msg("sorted")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sorting", entry["component"])
	assert.Equal(t, "ui", entry["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger previously attached with WithContext.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}
