package loginject

import (
	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/slog"
)

// ContainerChannel 容器诊断日志使用的通道名
const ContainerChannel = "snow"

var _ injection.ILogger = (*ContainerLogger)(nil)

// ContainerLogger 以 injection.ILogger 的形式把容器日志写入 logging 门面
type ContainerLogger struct {
	logger logging.ILogger
}

func NewContainerLogger() *ContainerLogger {
	return &ContainerLogger{logger: slog.GetLogger(ContainerChannel)}
}

// NewContainerLoggerWith 使用指定的 logger 代替全局通道，便于测试
func NewContainerLoggerWith(logger logging.ILogger) *ContainerLogger {
	return &ContainerLogger{logger: logger}
}

// Log 按等级转发，NONE 作为 debug 输出
func (ss *ContainerLogger) Log(level injection.Level, message string) {
	switch level {
	case injection.INFO:
		ss.logger.Infof("%s", message)
	case injection.ERROR:
		ss.logger.Errorf("%s", message)
	default:
		ss.logger.Debugf("%s", message)
	}
}

// UseContainerLogger 用 ContainerLogger 替换 builder 当前的容器日志
func UseContainerLogger(builder host.IBuilder) {
	builder.SetLogger(NewContainerLogger())
}
