package option

import "reflect"

type IOptionInjector interface {
	optionInjectorTag()
}

var _ IOptionInjector = (*Option[int])(nil)

// Option 用于在 Construct 方法中注入配置，T 通常为结构体指针
type Option[T any] struct {
	repo *Repository
}

// Get 返回默认 key 下的配置
func (ss *Option[T]) Get() T {
	return ss.GetKeyed("")
}

func (ss *Option[T]) GetKeyed(key string) T {
	return ss.repo.Get(key, reflect.TypeOf((*T)(nil)).Elem()).(T)
}

// OnChanged 在配置重新加载后调用 listener
func (ss *Option[T]) OnChanged(listener func()) {
	ss.repo.OnChanged(listener)
}

func (ss *Option[T]) optionInjectorTag() {
}
