package injection

import "fmt"

// Parameters 解析 Routine 时传给 ParamFactory 的参数表
type Parameters struct {
	values []any
}

func NewParameters(values ...any) *Parameters {
	return &Parameters{values: values}
}

func (ss *Parameters) Len() int {
	if ss == nil {
		return 0
	}
	return len(ss.values)
}

// Get 返回第 i 个参数，越界时返回错误
func (ss *Parameters) Get(i int) (any, error) {
	if i < 0 || i >= ss.Len() {
		return nil, fmt.Errorf("parameter index %d out of range, %d parameters supplied", i, ss.Len())
	}
	return ss.values[i], nil
}

func (ss *Parameters) Values() []any {
	if ss == nil {
		return nil
	}
	return append([]any(nil), ss.values...)
}

// GetParameter 按类型取第 i 个参数
func GetParameter[T any](params *Parameters, i int) (T, error) {
	var zero T
	v, err := params.Get(i)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("parameter %d is %T, expected %T", i, v, zero)
	}
	return tv, nil
}
