package hcloghandler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/handler/hcloghandler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHclogHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	h := hcloghandler.NewHandler(hclog.New(&hclog.LoggerOptions{
		Name:   "app",
		Level:  hclog.Info,
		Output: buf,
	}))

	h.Log(&logging.LogData{Path: "snow", Level: logging.INFO, ID: "9", Message: func() string { return "loaded" }})
	h.Log(&logging.LogData{Path: "snow", Level: logging.DEBUG, Message: func() string { return "filtered" }})
	h.Log(&logging.LogData{Path: "shop", Level: logging.FATAL, Message: func() string { return "fatal" }})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Contains(t, lines[0], "[INFO]")
	assert.Contains(t, lines[0], "app.snow: loaded")
	assert.Contains(t, lines[0], "id=9")
	assert.Contains(t, lines[1], "[ERROR]")
	assert.Contains(t, lines[1], "app.shop: fatal")
	assert.NotContains(t, buf.String(), "filtered")
}
