package naming

import (
	"fmt"
	"reflect"
)

// NameHint 用于推导 logger 名称，仅有 ExplicitName、TypeHint 与 CallbackHint 三种实现
type NameHint interface {
	nameHint()
}

var (
	_ NameHint = ExplicitName("")
	_ NameHint = TypeHint{}
	_ NameHint = CallbackHint{}
)

type ExplicitName string

func (ExplicitName) nameHint() {}

type TypeHint struct {
	Type reflect.Type
}

func (TypeHint) nameHint() {}

// CallbackHint 持有一个无参函数，仅用于获取其声明位置，不会被调用
type CallbackHint struct {
	Func any
}

func (CallbackHint) nameHint() {}

func TypeOf[T any]() TypeHint {
	return TypeHint{Type: reflect.TypeOf((*T)(nil)).Elem()}
}

func ForType(ty reflect.Type) TypeHint {
	return TypeHint{Type: ty}
}

func ForValue(v any) TypeHint {
	return TypeHint{Type: reflect.TypeOf(v)}
}

func Callback(fn func()) CallbackHint {
	return CallbackHint{Func: fn}
}

// HintOf 将任意参数转换为 NameHint：string、reflect.Type、NameHint 直接转换，
// 无参函数视为 CallbackHint，其余类型返回 UnresolvableHintError
func HintOf(v any) (NameHint, error) {
	switch h := v.(type) {
	case NameHint:
		return h, nil
	case string:
		return ExplicitName(h), nil
	case reflect.Type:
		return TypeHint{Type: h}, nil
	case func():
		return CallbackHint{Func: h}, nil
	case nil:
		return nil, &UnresolvableHintError{TypeName: "<nil>"}
	}

	if IsCallback(v) {
		return CallbackHint{Func: v}, nil
	}
	return nil, &UnresolvableHintError{TypeName: fmt.Sprintf("%T", v)}
}

// IsCallback 报告 v 是否为非空的无参函数
func IsCallback(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return false
	}
	return rv.Type().NumIn() == 0
}
