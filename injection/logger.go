package injection

import (
	"fmt"
	"os"
	"strings"
)

// Level 容器诊断日志等级
type Level int

const (
	DEBUG Level = iota
	INFO
	ERROR
	NONE
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case ERROR:
		return "ERROR"
	case NONE:
		return "NONE"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "ERROR":
		return ERROR, nil
	case "NONE":
		return NONE, nil
	default:
		return NONE, fmt.Errorf("unknown container log level %q", s)
	}
}

// ILogger 容器输出自身生命期信息的日志接口
type ILogger interface {
	Log(level Level, message string)
}

var _ ILogger = EmptyLogger{}

// EmptyLogger 容器默认日志，丢弃所有消息
type EmptyLogger struct{}

func (EmptyLogger) Log(Level, string) {}

var _ ILogger = (*PrintLogger)(nil)

// PrintLogger 输出不低于 Threshold 的消息到标准输出
type PrintLogger struct {
	Threshold Level
}

func NewPrintLogger(threshold Level) *PrintLogger {
	return &PrintLogger{Threshold: threshold}
}

func (ss *PrintLogger) Log(level Level, message string) {
	if level == NONE || level < ss.Threshold {
		return
	}
	_, _ = fmt.Fprintf(os.Stdout, "[%s] [snow] %s\n", level, message)
}
