package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bi-inventario/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}).Named("upload")

	log.Info().Str("file", "a.csv").Msg("archivo cargado")
	log.Debug().Msg("no se escribe")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "upload", entry["component"])
	assert.Equal(t, "a.csv", entry["file"])
	assert.Equal(t, "archivo cargado", entry["message"])
}

func TestNew_NivelDesconocidoEsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verbose", Output: &buf})
	log.Debug().Msg("x")
	assert.Empty(t, buf.String())
	log.Warn().Msg("y")
	assert.NotEmpty(t, buf.String())
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
