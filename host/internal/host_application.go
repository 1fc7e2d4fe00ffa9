package internal

import (
	"sync"

	"github.com/mogud/snowlog/host"
)

var _ host.IHostApplication = (*HostApplication)(nil)

type HostApplication struct {
	lock              sync.Mutex
	stopOnce          sync.Once
	startedListeners  []func()
	stoppedListeners  []func()
	stoppingListeners []func()
}

func NewHostApplication() *HostApplication {
	return &HostApplication{}
}

func (ss *HostApplication) OnStarted(listener func()) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.startedListeners = append(ss.startedListeners, listener)
}

func (ss *HostApplication) OnStopped(listener func()) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.stoppedListeners = append(ss.stoppedListeners, listener)
}

func (ss *HostApplication) OnStopping(listener func()) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.stoppingListeners = append(ss.stoppingListeners, listener)
}

func (ss *HostApplication) EmitRoutineStartedSuccess() {
	for _, listener := range ss.snapshot(&ss.startedListeners) {
		listener()
	}
}

func (ss *HostApplication) EmitRoutineStartedFailed() {
	ss.StopApplication()
}

func (ss *HostApplication) EmitRoutineStopped() {
	for _, listener := range ss.snapshot(&ss.stoppedListeners) {
		listener()
	}
}

// StopApplication 通知所有 stopping 监听者，重复调用无效
func (ss *HostApplication) StopApplication() {
	ss.stopOnce.Do(func() {
		for _, listener := range ss.snapshot(&ss.stoppingListeners) {
			listener()
		}
	})
}

func (ss *HostApplication) snapshot(listeners *[]func()) []func() {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return append([]func(){}, *listeners...)
}
