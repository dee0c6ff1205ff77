package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "JSON")
	log.Info("hidden")
	log.Warn("shown", "user", "u1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "u1", rec["user"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "", "text").Debug("quiet")
	assert.Empty(t, buf.String(), "info is the default level")

	New(&buf, "debug", "text").Debug("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "smartstep.log")
	log, closeFn, err := NewFile(path, "info", "text")
	require.NoError(t, err)
	log.Info("started")
	require.NoError(t, closeFn())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "msg=started")
}
