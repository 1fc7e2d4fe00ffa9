package logging

import (
	"github.com/mogud/snowlog/naming"
)

type ILoggerInjector interface {
	loggerInjectorTag()
}

var _ ILoggerInjector = (*Logger[int])(nil)

// Logger 用于在 Construct 方法中注入 logger
//
//	通道名为 T 的类型名，例如 *logging.Logger[OrderService] 得到 "OrderService"
type Logger[T any] struct {
	handler ILogHandler
}

// NewLogger 返回绑定到 handler 的注入器
func NewLogger[T any](handler ILogHandler) *Logger[T] {
	return &Logger[T]{handler: handler}
}

// Get 返回以 T 的类型名为通道名的 logger，T 没有类型名时 panic
func (ss *Logger[T]) Get(logDataBuilder func(data *LogData)) ILogger {
	name, err := naming.Resolve(naming.TypeOf[T]())
	if err != nil {
		panic(err)
	}
	return NewDefaultLogger(name, ss.handler, logDataBuilder)
}

func (ss *Logger[T]) loggerInjectorTag() {
}
