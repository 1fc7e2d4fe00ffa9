package naming

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrUnnamedType         = errors.New("type has no simple name")
	ErrUnresolvableHint    = errors.New("cannot inherit logger name from hint")
	ErrUnsupportedPlatform = errors.New("callback name hints are not supported on this platform")
)

// UnnamedTypeError TypeHint 对应的类型没有可用的名称（匿名结构体、函数类型等）
type UnnamedTypeError struct {
	Type reflect.Type
}

func (e *UnnamedTypeError) Error() string {
	return fmt.Sprintf("supplied type %v doesn't have a name and cannot be used to get the logger name", e.Type)
}

func (e *UnnamedTypeError) Is(target error) bool {
	return target == ErrUnnamedType
}

// UnresolvableHintError 参数既不是字符串、类型，也不是无参函数
type UnresolvableHintError struct {
	TypeName string
}

func (e *UnresolvableHintError) Error() string {
	return fmt.Sprintf("cannot inherit logger name from '%s' parameter", e.TypeName)
}

func (e *UnresolvableHintError) Is(target error) bool {
	return target == ErrUnresolvableHint
}

type UnsupportedHintError struct {
	Hint NameHint
}

func (e *UnsupportedHintError) Error() string {
	return fmt.Sprintf("cannot inherit logger name from %T: callback name hints are not supported on this platform", e.Hint)
}

func (e *UnsupportedHintError) Is(target error) bool {
	return target == ErrUnsupportedPlatform
}
