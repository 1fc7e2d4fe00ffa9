package logging

import (
	"fmt"
	"strconv"
	"strings"
)

type Level int

const (
	NONE Level = iota
	TRACE
	DEBUG
	INFO
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	if l >= TRACE && l <= FATAL {
		return strings.TrimSpace(l2info[l].str)
	}
	if l == NONE {
		return "NONE"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "":
		return NONE, nil
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return NONE, fmt.Errorf("unknown log level %q", s)
	}
}

// UnmarshalText 支持 "Debug" 形式的名称或数字
func (l *Level) UnmarshalText(text []byte) error {
	if n, err := strconv.Atoi(string(text)); err == nil {
		*l = Level(n)
		return nil
	}

	level, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
