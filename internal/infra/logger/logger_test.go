package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("prod", &buf)
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("split previewed", "deduction", 5.0)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "split previewed", rec["msg"])
	assert.Equal(t, "canna-erp", rec["service"])
	assert.Equal(t, "prod", rec["env"])

	buf.Reset()
	NewWithWriter("dev", &buf).Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
