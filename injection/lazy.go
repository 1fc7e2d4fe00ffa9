package injection

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	assert "github.com/arl/assertgo"
)

// LazyMode 决定 Lazy 首次求值时的并发策略
type LazyMode uint8

const (
	// LazySynchronized 仅一个协程执行求值，其余协程阻塞等待结果
	LazySynchronized LazyMode = iota
	// LazyPublication 允许多个协程同时求值，最先发布的结果生效
	LazyPublication
	// LazyNone 不做任何同步，调用方保证单协程访问
	LazyNone
)

// DefaultLazyMode 注入 API 未指定模式时使用
const DefaultLazyMode = LazySynchronized

func (m LazyMode) String() string {
	switch m {
	case LazySynchronized:
		return "Synchronized"
	case LazyPublication:
		return "Publication"
	case LazyNone:
		return "None"
	default:
		return fmt.Sprintf("LazyMode(%d)", uint8(m))
	}
}

const (
	lazyUnresolved int32 = iota
	lazyResolving
	lazyResolved
)

// ErrNilInitializer 由未提供求值函数的 Lazy 返回
var ErrNilInitializer = errors.New("lazy initializer is nil")

type lazyResult[T any] struct {
	value T
	err   error
}

// Lazy 延迟求值并缓存结果（包括错误），求值只会成功发布一次
type Lazy[T any] struct {
	mode LazyMode
	init func() (T, error)

	lock      sync.Mutex
	state     atomic.Int32
	published atomic.Pointer[lazyResult[T]]
	result    *lazyResult[T]
}

func NewLazy[T any](mode LazyMode, init func() (T, error)) *Lazy[T] {
	return &Lazy[T]{
		mode: mode,
		init: init,
	}
}

// NewLazyValue 返回一个已求值的 Lazy
func NewLazyValue[T any](value T) *Lazy[T] {
	l := &Lazy[T]{mode: LazyNone}
	l.result = &lazyResult[T]{value: value}
	l.published.Store(l.result)
	l.state.Store(lazyResolved)
	return l
}

func (ss *Lazy[T]) Mode() LazyMode {
	return ss.mode
}

func (ss *Lazy[T]) IsResolved() bool {
	return ss.state.Load() == lazyResolved
}

// Get 返回求值结果，首次调用时执行求值；求值失败的错误同样被缓存
func (ss *Lazy[T]) Get() (T, error) {
	var r *lazyResult[T]
	switch ss.mode {
	case LazySynchronized:
		r = ss.getSynchronized()
	case LazyPublication:
		r = ss.getPublication()
	default:
		r = ss.getUnsafe()
	}
	return r.value, r.err
}

// MustGet 求值失败时 panic
func (ss *Lazy[T]) MustGet() T {
	v, err := ss.Get()
	if err != nil {
		panic(err)
	}
	return v
}

func (ss *Lazy[T]) getSynchronized() *lazyResult[T] {
	if ss.state.Load() == lazyResolved {
		return ss.published.Load()
	}

	ss.lock.Lock()
	defer ss.lock.Unlock()

	if ss.state.Load() == lazyResolved {
		return ss.published.Load()
	}
	assert.True(ss.published.Load() == nil, "lazy value published before resolving")

	// 求值 panic 时回到未求值状态，下次 Get 重新求值
	resolved := false
	ss.state.Store(lazyResolving)
	defer func() {
		if !resolved {
			ss.state.Store(lazyUnresolved)
		}
	}()

	r := ss.compute()
	ss.published.Store(r)
	ss.state.Store(lazyResolved)
	ss.init = nil
	resolved = true
	return r
}

func (ss *Lazy[T]) getPublication() *lazyResult[T] {
	if r := ss.published.Load(); r != nil {
		return r
	}

	ss.state.CompareAndSwap(lazyUnresolved, lazyResolving)
	r := ss.compute()
	if ss.published.CompareAndSwap(nil, r) {
		ss.state.Store(lazyResolved)
		return r
	}
	return ss.published.Load()
}

func (ss *Lazy[T]) getUnsafe() *lazyResult[T] {
	if ss.result != nil {
		return ss.result
	}

	ss.state.Store(lazyResolving)
	r := ss.compute()
	ss.result = r
	ss.published.Store(r)
	ss.state.Store(lazyResolved)
	ss.init = nil
	return ss.result
}

func (ss *Lazy[T]) compute() *lazyResult[T] {
	if ss.init == nil {
		return &lazyResult[T]{err: ErrNilInitializer}
	}

	v, err := ss.init()
	return &lazyResult[T]{value: v, err: err}
}

// Inject 返回一个在首次访问时通过 provider 解析 T 的 Lazy
func Inject[T any](provider IRoutineProvider, mode LazyMode, params ...any) *Lazy[T] {
	return InjectKeyed[T](provider, DefaultKey, mode, params...)
}

func InjectKeyed[T any](provider IRoutineProvider, key any, mode LazyMode, params ...any) *Lazy[T] {
	ty := reflect.TypeOf((*T)(nil)).Elem()
	return NewLazy(mode, func() (T, error) {
		var zero T
		if provider == nil {
			return zero, fmt.Errorf("inject %v: component is not attached to a routine provider", ty)
		}

		instance, err := provider.ResolveRoutine(key, ty, NewParameters(params...))
		if err != nil {
			return zero, fmt.Errorf("inject %v: %w", ty, err)
		}

		v, ok := instance.(T)
		if !ok {
			return zero, fmt.Errorf("inject %v: factory returned %T", ty, instance)
		}
		return v, nil
	})
}
