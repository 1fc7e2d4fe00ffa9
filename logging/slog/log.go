// Package slog 是全局日志入口：按通道名获取 logger，所有 logger 共享同一个全局 handler。
package slog

import (
	"sync"

	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/handler"
)

const globalName = "Global"

var (
	lock          sync.RWMutex
	globalHandler logging.ILogHandler = handler.NewCompoundHandler()
	globalLogger  logging.ILogger
)

// BindGlobalHandler 替换全局 handler，之后获取与已获取的 logger 都会输出到新 handler
func BindGlobalHandler(h logging.ILogHandler) {
	lock.Lock()
	defer lock.Unlock()
	globalHandler = h
}

func BindGlobalLogger(l logging.ILogger) {
	lock.Lock()
	defer lock.Unlock()
	globalLogger = l
}

func GetGlobalHandler() logging.ILogHandler {
	lock.RLock()
	defer lock.RUnlock()
	return globalHandler
}

// GetLogger 返回名为 name 的 logger
func GetLogger(name string) logging.ILogger {
	return logging.NewDefaultLogger(name, forwarder{}, nil)
}

// GetLoggerWith 返回名为 name 的 logger，logDataBuilder 可修改每条日志的数据
func GetLoggerWith(name string, logDataBuilder func(data *logging.LogData)) logging.ILogger {
	return logging.NewDefaultLogger(name, forwarder{}, logDataBuilder)
}

type forwarder struct{}

func (forwarder) Log(data *logging.LogData) {
	GetGlobalHandler().Log(data)
}

func getLogger() logging.ILogger {
	lock.RLock()
	l := globalLogger
	lock.RUnlock()

	if l != nil {
		return l
	}
	return GetLogger(globalName)
}

func Tracef(format string, args ...any) {
	getLogger().Tracef(format, args...)
}

func Debugf(format string, args ...any) {
	getLogger().Debugf(format, args...)
}

func Infof(format string, args ...any) {
	getLogger().Infof(format, args...)
}

func Warnf(format string, args ...any) {
	getLogger().Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	getLogger().Errorf(format, args...)
}

func Fatalf(format string, args ...any) {
	getLogger().Fatalf(format, args...)
}
