package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCreateLoggerEncoder_Unknown(t *testing.T) {
	_, err := createLoggerEncoder("xml", newZapEncoderConfig())
	assert.EqualError(t, err, "unknown encoder: xml")
}

func TestCreateLogger(t *testing.T) {
	buf := &bytes.Buffer{}

	log, err := createLogger("json", int(zapcore.WarnLevel), zapcore.AddSync(buf))
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("file is open in another process", zap.Int("pid", 42))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"message":"file is open in another process"`)
	assert.Contains(t, buf.String(), `"pid":42`)
	assert.NotContains(t, buf.String(), `"caller"`)
}
