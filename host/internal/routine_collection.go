package internal

import (
	"reflect"
	"sync"

	"github.com/mogud/snowlog/injection"
)

var _ injection.IRoutineCollection = (*RoutineCollection)(nil)

type RoutineCollection struct {
	lock sync.RWMutex

	// key : type : descriptor
	descriptors map[any]map[reflect.Type]*injection.RoutineDescriptor
	count       int
}

func NewRoutineCollection() *RoutineCollection {
	return &RoutineCollection{
		descriptors: make(map[any]map[reflect.Type]*injection.RoutineDescriptor),
	}
}

// AddDescriptor 注册 descriptor，相同 key 与类型的注册会覆盖之前的
func (ss *RoutineCollection) AddDescriptor(descriptor *injection.RoutineDescriptor) {
	if descriptor.Key == nil {
		descriptor.Key = injection.DefaultKey
	}

	ss.lock.Lock()
	defer ss.lock.Unlock()

	descriptors, ok := ss.descriptors[descriptor.Key]
	if !ok {
		descriptors = make(map[reflect.Type]*injection.RoutineDescriptor)
		ss.descriptors[descriptor.Key] = descriptors
	}

	if _, exists := descriptors[descriptor.TyKey]; !exists {
		ss.count++
	}
	descriptors[descriptor.TyKey] = descriptor
}

func (ss *RoutineCollection) GetDescriptors() []*injection.RoutineDescriptor {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	descriptors := make([]*injection.RoutineDescriptor, 0, ss.count)
	for _, byType := range ss.descriptors {
		for _, descriptor := range byType {
			descriptors = append(descriptors, descriptor)
		}
	}
	return descriptors
}

func (ss *RoutineCollection) Len() int {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.count
}

func (ss *RoutineCollection) GetDescriptor(ty reflect.Type) *injection.RoutineDescriptor {
	return ss.GetKeyedDescriptor(injection.DefaultKey, ty)
}

func (ss *RoutineCollection) GetKeyedDescriptor(key any, ty reflect.Type) *injection.RoutineDescriptor {
	ss.lock.RLock()
	defer ss.lock.RUnlock()

	return ss.descriptors[key][ty]
}
