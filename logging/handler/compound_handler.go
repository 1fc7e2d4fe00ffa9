package handler

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/mogud/snowlog/logging"
)

var _ logging.ILogHandler = (*CompoundHandler)(nil)

// CompoundHandler 将日志分发给所有子 handler
type CompoundHandler struct {
	lock  sync.RWMutex
	proxy []logging.ILogHandler
}

func NewCompoundHandler(handlers ...logging.ILogHandler) *CompoundHandler {
	return &CompoundHandler{
		proxy: append([]logging.ILogHandler(nil), handlers...),
	}
}

func (ss *CompoundHandler) Log(data *logging.LogData) {
	ss.lock.RLock()
	handlers := ss.proxy
	ss.lock.RUnlock()

	for _, handler := range handlers {
		handler.Log(data)
	}
}

func (ss *CompoundHandler) AddHandler(handler logging.ILogHandler) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	handlers := make([]logging.ILogHandler, 0, len(ss.proxy)+1)
	handlers = append(handlers, ss.proxy...)
	ss.proxy = append(handlers, handler)
}

func (ss *CompoundHandler) Len() int {
	ss.lock.RLock()
	defer ss.lock.RUnlock()
	return len(ss.proxy)
}

// WrapToContainer 构造 *logging.Logger[T] 实例并绑定到当前 handler，ty 为 *logging.Logger[T] 的类型
func (ss *CompoundHandler) WrapToContainer(ty reflect.Type) any {
	instanceValue := reflect.New(ty.Elem())
	handlerField := instanceValue.Elem().Field(0)

	field := reflect.NewAt(handlerField.Type(), unsafe.Pointer(handlerField.UnsafeAddr())).Elem()
	field.Set(reflect.ValueOf(ss))
	return instanceValue.Interface()
}
