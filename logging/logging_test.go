package logging

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONWithRunID(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "debug", Writer: &buf, RunID: "run-1"})
	require.NoError(t, err)

	log.Debug().Str("kind", "jet").Msg("spawned")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "run-1", rec["run_id"])
	assert.Equal(t, "jet", rec["kind"])
	assert.Equal(t, "spawned", rec["message"])
	assert.Equal(t, "debug", rec["level"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_GeneratesRunID(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Writer: &buf})
	require.NoError(t, err)
	log.Info().Msg("x")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	id, _ := rec["run_id"].(string)
	assert.Len(t, id, 36)
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestOpenFile(t *testing.T) {
	f, err := OpenFile(filepath.Join(t.TempDir(), "nacht.log"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = OpenFile(filepath.Join(t.TempDir(), "missing", "nacht.log"))
	require.Error(t, err)
}
