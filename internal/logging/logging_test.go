package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextIncludesComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "text", "info", false).WithComponent("poller")
	l.Info("tick")
	assert.Contains(t, buf.String(), "component=poller")
	assert.Contains(t, buf.String(), "msg=tick")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "json", "info", false)
	l.LogRequestError("/logs/", errors.New("connection refused"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "/logs/", rec["endpoint"])
	assert.Equal(t, "connection refused", rec["error"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "text", "warn", false)
	l.Info("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	l = New(&buf, "text", "warn", true)
	l.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFile_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "valuemon.log")
	l, closer, err := NewFile(path, "text", "info", false)
	require.NoError(t, err)
	l.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
