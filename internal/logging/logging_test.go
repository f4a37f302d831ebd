package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")
	log.Debug("hidden")
	log.Info("order created", "order_id", 12)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "order created", entry["msg"])
	assert.Equal(t, "backoffice", entry["service"])
	assert.EqualValues(t, 12, entry["order_id"])
}

func TestNew_TextDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "DEBUG", "text")
	log.Debug("claiming table", "table_id", 4)
	assert.Contains(t, buf.String(), "claiming table")
	assert.Contains(t, buf.String(), "table_id=4")
}
