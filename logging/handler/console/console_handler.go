package console

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/option"
	"github.com/tidwall/btree"
)

var _ logging.ILogHandler = (*Handler)(nil)

type Option struct {
	Formatter     string                   `snow:"Formatter"`
	FileLineLevel logging.Level            `snow:"FileLineLevel"`
	FileLineSkip  int                      `snow:"FileLineSkip"`
	ErrorLevel    logging.Level            `snow:"ErrorLevel"`
	Filter        map[string]logging.Level `snow:"Filter"`
	DefaultLevel  logging.Level            `snow:"DefaultLevel"`
}

type Handler struct {
	lock      sync.Mutex
	option    *Option
	filter    btree.Set[string]
	formatter func(logData *logging.LogData) string

	stdout io.Writer
	stderr io.Writer
}

func NewHandler() *Handler {
	handler := &Handler{
		option: &Option{
			Formatter:     "Color",
			FileLineLevel: logging.FATAL + 1,
			FileLineSkip:  5,
			ErrorLevel:    logging.ERROR,
			Filter:        make(map[string]logging.Level),
			DefaultLevel:  logging.INFO,
		},
		formatter: logging.ColorLogFormatter,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
	return handler
}

// NewWriterHandler 输出到指定 writer，用于测试或重定向
func NewWriterHandler(opt *Option, formatter func(logData *logging.LogData) string, stdout, stderr io.Writer) *Handler {
	handler := NewHandler()
	handler.stdout, handler.stderr = stdout, stderr
	if formatter != nil {
		handler.formatter = formatter
	}
	if opt != nil {
		handler.option = opt
	}
	handler.CheckOption()
	return handler
}

func (ss *Handler) Construct(opt *option.Option[*Option], repo *logging.LogFormatterContainer) {
	apply := func() {
		newOption := opt.Get()

		ss.lock.Lock()
		defer ss.lock.Unlock()

		ss.option = newOption
		if repo != nil {
			if formatter := repo.GetFormatter(newOption.Formatter); formatter != nil {
				ss.formatter = formatter
			}
		}
		ss.checkOption()
	}

	apply()
	opt.OnChanged(apply)
}

func (ss *Handler) CheckOption() {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.checkOption()
}

func (ss *Handler) checkOption() {
	if ss.option.Filter == nil {
		ss.option.Filter = make(map[string]logging.Level)
	}

	ss.filter = btree.Set[string]{}
	for key := range ss.option.Filter {
		ss.filter.Insert(key)
	}

	if ss.option.DefaultLevel == logging.NONE {
		ss.option.DefaultLevel = logging.INFO
	}
	if ss.option.ErrorLevel == logging.NONE {
		ss.option.ErrorLevel = logging.ERROR
	}
	if ss.option.FileLineLevel == logging.NONE {
		ss.option.FileLineLevel = logging.FATAL + 1
	}
}

// levelOf 返回 path 的过滤等级，最长的匹配前缀优先
func (ss *Handler) levelOf(path string) logging.Level {
	level := ss.option.DefaultLevel
	ss.filter.Descend(path, func(key string) bool {
		if strings.HasPrefix(path, key) {
			level = ss.option.Filter[key]
			return false
		}
		return true
	})
	return level
}

func (ss *Handler) Log(logData *logging.LogData) {
	if logData.Level == logging.NONE {
		return
	}

	ss.lock.Lock()
	defer ss.lock.Unlock()

	if logData.Level < ss.levelOf(logData.Path) {
		return
	}

	if len(logData.File) == 0 && logData.Level >= ss.option.FileLineLevel {
		if _, fn, ln, ok := runtime.Caller(ss.option.FileLineSkip); ok {
			logData = logData.Clone()
			logData.File = fn
			logData.Line = ln
		}
	}

	message := ss.formatter(logData)

	if logData.Level < ss.option.ErrorLevel {
		_, _ = fmt.Fprintln(ss.stdout, message)
	} else {
		_, _ = fmt.Fprintln(ss.stderr, message)
	}
}
