// Package zaphandler 将日志记录转发到 zap logger
package zaphandler

import (
	"strconv"

	"github.com/mogud/snowlog/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (ss *Handler) Log(data *logging.LogData) {
	level, ok := convertLevel(data.Level)
	if !ok || !ss.logger.Core().Enabled(level) {
		return
	}

	logger := ss.logger
	if len(data.Path) > 0 {
		logger = logger.Named(data.Path)
	}

	ce := logger.Check(level, data.Message())
	if ce == nil {
		return
	}
	ce.Time = data.Time

	fields := make([]zap.Field, 0, 2)
	if len(data.ID) > 0 {
		fields = append(fields, zap.String("id", data.ID))
	}
	if len(data.File) > 0 {
		fields = append(fields, zap.String("source", data.File+":"+strconv.Itoa(data.Line)))
	}
	ce.Write(fields...)
}

func convertLevel(level logging.Level) (zapcore.Level, bool) {
	switch level {
	case logging.TRACE, logging.DEBUG:
		return zapcore.DebugLevel, true
	case logging.INFO:
		return zapcore.InfoLevel, true
	case logging.WARN:
		return zapcore.WarnLevel, true
	case logging.ERROR, logging.FATAL:
		return zapcore.ErrorLevel, true
	default:
		return zapcore.DebugLevel, false
	}
}
