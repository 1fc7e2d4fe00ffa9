package injection

import (
	"errors"
	"reflect"
)

var DefaultKey = struct{}{}

// ErrNoDefinition 表示容器中没有注册请求的类型
var ErrNoDefinition = errors.New("no definition found")

type IRoutineCollection interface {
	AddDescriptor(descriptor *RoutineDescriptor)
	GetDescriptors() []*RoutineDescriptor
	GetDescriptor(ty reflect.Type) *RoutineDescriptor
	GetKeyedDescriptor(key any, ty reflect.Type) *RoutineDescriptor
}

type IRoutineScope interface {
	GetScopedRoutine(ty reflect.Type) any
	GetKeyedScopedRoutine(key any, ty reflect.Type) any
	SetScopedRoutine(ty reflect.Type, value any)
	SetKeyedScopedRoutine(key any, ty reflect.Type, value any)
	GetRoot() IRoutineScope
	GetProvider() IRoutineProvider
}

type IRoutineProvider interface {
	GetRoutine(ty reflect.Type) any
	GetKeyedRoutine(key any, ty reflect.Type) any

	// ResolveRoutine 以参数 params 解析 Routine，未注册时返回 ErrNoDefinition
	ResolveRoutine(key any, ty reflect.Type, params *Parameters) (any, error)

	CreateScope() IRoutineScope
	GetRootScope() IRoutineScope

	// GetLogger 返回容器自身的诊断日志
	GetLogger() ILogger
	SetLogger(logger ILogger)
}

func GetRoutine[T any](provider IRoutineProvider) T {
	ty := reflect.TypeOf((*T)(nil)).Elem()
	return provider.GetRoutine(ty).(T)
}

func GetKeyedRoutine[T any](provider IRoutineProvider, key any) T {
	ty := reflect.TypeOf((*T)(nil)).Elem()
	return provider.GetKeyedRoutine(key, ty).(T)
}

// TryGetRoutine 与 GetRoutine 相同，但在未注册时返回 false 而非 panic
func TryGetRoutine[T any](provider IRoutineProvider) (T, bool) {
	ty := reflect.TypeOf((*T)(nil)).Elem()
	v, ok := provider.GetRoutine(ty).(T)
	return v, ok
}

type RoutineDescriptor struct {
	Lifetime RoutineLifetime               // Routine 生命期
	InitLock int32                         // 初始化锁
	Key      any                           // 按 Key 注册
	TyKey    reflect.Type                  // 注册的接口类型 Key
	TyImpl   reflect.Type                  // 注册的实现类型
	Factory  func(scope IRoutineScope) any // 工厂方法，用于在 scope 中创建实例，方法必须返回新实例

	// ParamFactory 带参数的工厂方法，非空时每次解析都会调用（等同 Transient），忽略 Factory
	ParamFactory func(scope IRoutineScope, params *Parameters) (any, error)
}

type RoutineLifetime uint8

const (
	Singleton RoutineLifetime = iota
	Scoped
	Transient
)

func (l RoutineLifetime) String() string {
	switch l {
	case Singleton:
		return "Singleton"
	case Scoped:
		return "Scoped"
	case Transient:
		return "Transient"
	default:
		return "Unknown"
	}
}
