package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("ruidoso"))
}

func TestNew_JSONConServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "info", Service: "tienda-api", Output: &buf})

	l.Component("auth").Info().Msg("hola")
	l.Debug().Msg("no se escribe")

	out := buf.String()
	assert.Contains(t, out, `"service":"tienda-api"`)
	assert.Contains(t, out, `"component":"auth"`)
	assert.Contains(t, out, `"message":"hola"`)
	assert.NotContains(t, out, "no se escribe")
}
