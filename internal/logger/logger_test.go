package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("production", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("thumbnail_id", "abc").Msg("generated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "generated", entry["message"])
	assert.Equal(t, "abc", entry["thumbnail_id"])
	assert.Equal(t, "thumbnail-backend", entry["service"])
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_DevelopmentIsVerbose(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter("development", &buf)

	log.Debug().Msg("visible")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "visible")
}
