package internal

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/injection"
)

var _ injection.IRoutineProvider = (*RoutineProvider)(nil)

type loggerHolder struct {
	logger injection.ILogger
}

type RoutineProvider struct {
	descriptors injection.IRoutineCollection
	root        *RoutineProvider

	scope *RoutineScope

	// 仅根 provider 使用
	logger atomic.Pointer[loggerHolder]
}

func NewProvider(descriptors injection.IRoutineCollection, root *RoutineProvider) *RoutineProvider {
	provider := &RoutineProvider{
		descriptors: descriptors,
		root:        root,
	}
	provider.scope = NewRoutineScope(provider)
	return provider
}

func (ss *RoutineProvider) GetLogger() injection.ILogger {
	if holder := ss.getRootProvider().logger.Load(); holder != nil {
		return holder.logger
	}
	return injection.EmptyLogger{}
}

// SetLogger 设置容器诊断日志，nil 恢复为 EmptyLogger
func (ss *RoutineProvider) SetLogger(logger injection.ILogger) {
	if logger == nil {
		logger = injection.EmptyLogger{}
	}
	ss.getRootProvider().logger.Store(&loggerHolder{logger: logger})
}

func (ss *RoutineProvider) logf(level injection.Level, format string, args ...any) {
	logger := ss.GetLogger()
	if _, empty := logger.(injection.EmptyLogger); empty {
		return
	}
	logger.Log(level, fmt.Sprintf(format, args...))
}

func (ss *RoutineProvider) GetRoutine(ty reflect.Type) any {
	return ss.GetKeyedRoutine(injection.DefaultKey, ty)
}

func (ss *RoutineProvider) GetKeyedRoutine(key any, ty reflect.Type) any {
	instance, err := ss.ResolveRoutine(key, ty, nil)
	if err != nil {
		return nil
	}
	return instance
}

func (ss *RoutineProvider) ResolveRoutine(key any, ty reflect.Type, params *injection.Parameters) (any, error) {
	if key == nil {
		key = injection.DefaultKey
	}

	descriptor := ss.descriptors.GetKeyedDescriptor(key, ty)
	if descriptor == nil {
		ss.logf(injection.ERROR, "no definition found for type %v", ty)
		return nil, fmt.Errorf("%w for type %v", injection.ErrNoDefinition, ty)
	}

	if descriptor.ParamFactory != nil {
		instance, err := descriptor.ParamFactory(ss.scope, params)
		if err != nil {
			ss.logf(injection.ERROR, "instance creation failed for type %v: %v", ty, err)
			return nil, err
		}
		return instance, nil
	}

	if descriptor.Lifetime == injection.Transient {
		return descriptor.Factory(ss.scope), nil
	}

	var scope *RoutineScope
	if descriptor.Lifetime == injection.Singleton {
		scope = ss.getRootProvider().scope
	} else {
		scope = ss.scope
	}

	for {
		instance := scope.GetKeyedScopedRoutine(key, ty)
		if instance != nil {
			return instance, nil
		}

		if !atomic.CompareAndSwapInt32(&descriptor.InitLock, 0, 1) {
			continue
		}

		instance = scope.GetKeyedScopedRoutine(key, ty)
		if instance != nil {
			atomic.StoreInt32(&descriptor.InitLock, 0)
			return instance, nil
		}

		ss.logf(injection.DEBUG, "| create instance for %v", ty)
		instance = descriptor.Factory(scope)

		host.Inject(scope, instance)

		scope.SetKeyedScopedRoutine(key, ty, instance)
		atomic.StoreInt32(&descriptor.InitLock, 0)
		return instance, nil
	}
}

func (ss *RoutineProvider) CreateScope() injection.IRoutineScope {
	provider := NewProvider(ss.descriptors, ss.getRootProvider())
	return provider.scope
}

func (ss *RoutineProvider) GetRootScope() injection.IRoutineScope {
	return ss.getRootProvider().scope
}

func (ss *RoutineProvider) getRootProvider() *RoutineProvider {
	if ss.root != nil {
		return ss.root
	}

	return ss
}
