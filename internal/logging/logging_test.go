package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/logging"
)

func TestNewWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, &config.Config{LogFormat: "json", LogLevel: "warn"})

	log.Info().Msg("dropped")
	log.Warn().Str("job", "a.col").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "a.col", entry["job"])
	assert.Equal(t, "idastar", entry["solver"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, &config.Config{LogFormat: "console", LogLevel: "debug"})

	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "{")
}
