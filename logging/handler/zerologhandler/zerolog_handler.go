// Package zerologhandler 将日志记录转发到 zerolog logger
package zerologhandler

import (
	"github.com/mogud/snowlog/logging"
	"github.com/rs/zerolog"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Handler struct {
	logger zerolog.Logger
}

func NewHandler(logger zerolog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (ss *Handler) Log(data *logging.LogData) {
	level, ok := convertLevel(data.Level)
	if !ok {
		return
	}

	// WithLevel 不会因 Fatal 等级退出进程
	event := ss.logger.WithLevel(level)
	if event == nil {
		return
	}

	event = event.Str("logger", data.Path)
	if len(data.ID) > 0 {
		event = event.Str("id", data.ID)
	}
	if len(data.File) > 0 {
		event = event.Str("file", data.File).Int("line", data.Line)
	}
	event.Msg(data.Message())
}

func convertLevel(level logging.Level) (zerolog.Level, bool) {
	switch level {
	case logging.TRACE:
		return zerolog.TraceLevel, true
	case logging.DEBUG:
		return zerolog.DebugLevel, true
	case logging.INFO:
		return zerolog.InfoLevel, true
	case logging.WARN:
		return zerolog.WarnLevel, true
	case logging.ERROR:
		return zerolog.ErrorLevel, true
	case logging.FATAL:
		return zerolog.FatalLevel, true
	default:
		return zerolog.NoLevel, false
	}
}
