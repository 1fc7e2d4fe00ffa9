// Package logrushandler 将日志记录转发到 logrus entry
package logrushandler

import (
	"github.com/mogud/snowlog/logging"
	"github.com/sirupsen/logrus"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Handler struct {
	entry *logrus.Entry
}

func NewHandler(entry *logrus.Entry) *Handler {
	return &Handler{entry: entry}
}

func (ss *Handler) Log(data *logging.LogData) {
	level, ok := convertLevel(data.Level)
	if !ok || !ss.entry.Logger.IsLevelEnabled(level) {
		return
	}

	fields := logrus.Fields{"logger": data.Path}
	if len(data.ID) > 0 {
		fields["id"] = data.ID
	}
	if len(data.File) > 0 {
		fields["file"] = data.File
		fields["line"] = data.Line
	}
	ss.entry.WithFields(fields).WithTime(data.Time).Log(level, data.Message())
}

func convertLevel(level logging.Level) (logrus.Level, bool) {
	switch level {
	case logging.TRACE:
		return logrus.TraceLevel, true
	case logging.DEBUG:
		return logrus.DebugLevel, true
	case logging.INFO:
		return logrus.InfoLevel, true
	case logging.WARN:
		return logrus.WarnLevel, true
	case logging.ERROR, logging.FATAL:
		return logrus.ErrorLevel, true
	default:
		return logrus.DebugLevel, false
	}
}
