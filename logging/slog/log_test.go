package slog_test

import (
	"testing"

	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFollowsGlobalHandler(t *testing.T) {
	previous := slog.GetGlobalHandler()
	defer slog.BindGlobalHandler(previous)

	logger := slog.GetLogger("snow")
	assert.Equal(t, "snow", logger.Name())

	var first, second []*logging.LogData
	slog.BindGlobalHandler(logging.LogHandlerFunc(func(data *logging.LogData) { first = append(first, data) }))
	logger.Infof("one")

	slog.BindGlobalHandler(logging.LogHandlerFunc(func(data *logging.LogData) { second = append(second, data) }))
	logger.Errorf("two")

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, "snow", first[0].Path)
	assert.Equal(t, "one", first[0].Message())
	assert.Equal(t, logging.ERROR, second[0].Level)
}

func TestGlobalFunctions(t *testing.T) {
	previous := slog.GetGlobalHandler()
	defer slog.BindGlobalHandler(previous)

	var got []*logging.LogData
	slog.BindGlobalHandler(logging.LogHandlerFunc(func(data *logging.LogData) { got = append(got, data) }))

	slog.Debugf("d %d", 1)
	slog.Warnf("w")

	require.Len(t, got, 2)
	assert.Equal(t, "Global", got[0].Path)
	assert.Equal(t, "d 1", got[0].Message())
	assert.Equal(t, logging.WARN, got[1].Level)
}

func TestGetLoggerWith(t *testing.T) {
	previous := slog.GetGlobalHandler()
	defer slog.BindGlobalHandler(previous)

	var got *logging.LogData
	slog.BindGlobalHandler(logging.LogHandlerFunc(func(data *logging.LogData) { got = data }))

	slog.GetLoggerWith("shop", func(data *logging.LogData) { data.ID = "7" }).Infof("x")
	require.NotNil(t, got)
	assert.Equal(t, "7", got.ID)
}
