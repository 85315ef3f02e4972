package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_JSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(Config{Format: FormatJSON, Output: &buf})
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("schema.written", "path", ".temp/a.schema.json")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "schema.written", rec["msg"])
	assert.Equal(t, ".temp/a.schema.json", rec["path"])
	assert.Same(t, l, L())
}

func TestSetup_DebugText(t *testing.T) {
	var buf bytes.Buffer
	l, err := Setup(Config{Debug: true, Output: &buf})
	require.NoError(t, err)
	l.Debug("rules.loaded", "models", 3)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "models=3")
}

func TestSetup_UnknownFormat(t *testing.T) {
	_, err := Setup(Config{Format: "xml"})
	assert.Error(t, err)
}
