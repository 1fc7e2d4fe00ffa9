package loginject

import (
	"fmt"
	"reflect"

	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/naming"
)

// InjectLogger 返回以组件类型名命名的 logger，组件的 provider 在首次 Get 时才读取
func InjectLogger(c injection.IComponent, mode injection.LazyMode) *injection.Lazy[logging.ILogger] {
	return injectComponent(c, mode, naming.ForValue(c))
}

// InjectNamedLogger 返回名为 name 的 logger
func InjectNamedLogger(c injection.IComponent, name string, mode injection.LazyMode) *injection.Lazy[logging.ILogger] {
	return injectComponent(c, mode, naming.ExplicitName(name))
}

// InjectLoggerFunc 返回以 fn 声明位置命名的 logger，fn 不会被调用
//
//	func (s *OrderService) Start() {
//		lazy := loginject.InjectLoggerFunc(p, injection.DefaultLazyMode, func() {}) // "github.com/acme/shop.OrderService"
//	}
func InjectLoggerFunc(p injection.IRoutineProvider, mode injection.LazyMode, fn func()) *injection.Lazy[logging.ILogger] {
	return inject(p, mode, naming.Callback(fn))
}

func InjectLoggerByName(p injection.IRoutineProvider, name string, mode injection.LazyMode) *injection.Lazy[logging.ILogger] {
	return inject(p, mode, naming.ExplicitName(name))
}

func InjectLoggerByType(p injection.IRoutineProvider, ty reflect.Type, mode injection.LazyMode) *injection.Lazy[logging.ILogger] {
	return inject(p, mode, naming.ForType(ty))
}

func InjectLoggerOf[T any](p injection.IRoutineProvider, mode injection.LazyMode) *injection.Lazy[logging.ILogger] {
	return inject(p, mode, naming.TypeOf[T]())
}

func inject(p injection.IRoutineProvider, mode injection.LazyMode, hint naming.NameHint) *injection.Lazy[logging.ILogger] {
	return injection.Inject[logging.ILogger](p, mode, hint)
}

func injectComponent(c injection.IComponent, mode injection.LazyMode, hint naming.NameHint) *injection.Lazy[logging.ILogger] {
	return injection.NewLazy(mode, func() (logging.ILogger, error) {
		if isNilComponent(c) {
			return nil, fmt.Errorf("inject %v: component is nil", reflect.TypeOf((*logging.ILogger)(nil)).Elem())
		}
		return inject(c.GetRoutineProvider(), injection.LazyNone, hint).Get()
	})
}

func isNilComponent(c injection.IComponent) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
