// Package hcloghandler 将日志记录转发到 go-hclog logger
package hcloghandler

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mogud/snowlog/logging"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Handler struct {
	logger hclog.Logger
}

func NewHandler(logger hclog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (ss *Handler) Log(data *logging.LogData) {
	level, ok := convertLevel(data.Level)
	if !ok || ss.logger.GetLevel() > level {
		return
	}

	logger := ss.logger
	if len(data.Path) > 0 {
		logger = logger.Named(data.Path)
	}

	args := make([]any, 0, 4)
	if len(data.ID) > 0 {
		args = append(args, "id", data.ID)
	}
	if len(data.File) > 0 {
		args = append(args, "file", data.File, "line", data.Line)
	}
	logger.Log(level, data.Message(), args...)
}

func convertLevel(level logging.Level) (hclog.Level, bool) {
	switch level {
	case logging.TRACE:
		return hclog.Trace, true
	case logging.DEBUG:
		return hclog.Debug, true
	case logging.INFO:
		return hclog.Info, true
	case logging.WARN:
		return hclog.Warn, true
	case logging.ERROR, logging.FATAL:
		return hclog.Error, true
	default:
		return hclog.NoLevel, false
	}
}
