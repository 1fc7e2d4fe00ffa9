package logging

import (
	"fmt"
	"time"
)

type LogData struct {
	Time    time.Time
	Path    string // 日志通道名，过滤器按此前缀匹配
	Name    string // 显示名
	ID      string
	File    string
	Line    int
	Level   Level
	Custom  []any
	Message func() string
}

// Clone 返回浅拷贝
func (ss *LogData) Clone() *LogData {
	d := *ss
	return &d
}

type ILogHandler interface {
	Log(data *LogData)
}

func NewSimpleLogHandler() ILogHandler {
	return simpleLogHandler{}
}

type simpleLogHandler struct {
}

func (s simpleLogHandler) Log(data *LogData) {
	fmt.Println(DefaultLogFormatter(data))
}

var _ ILogHandler = LogHandlerFunc(nil)

// LogHandlerFunc 将函数适配为 ILogHandler
type LogHandlerFunc func(data *LogData)

func (f LogHandlerFunc) Log(data *LogData) {
	f(data)
}
