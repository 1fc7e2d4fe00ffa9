package internal

import (
	"github.com/mogud/snowlog/host"
)

var _ host.IHostedRoutineContainer = (*HostedRoutineContainer)(nil)
var _ host.IHostedLifecycleRoutineContainer = (*HostedLifecycleRoutineContainer)(nil)

type HostedRoutineContainer struct {
	routines []host.IHostedRoutine
	factory  []func() host.IHostedRoutine
}

func (ss *HostedRoutineContainer) AddHostedRoutine(factory func() host.IHostedRoutine) {
	ss.factory = append(ss.factory, factory)
}

func (ss *HostedRoutineContainer) BuildHostedRoutines() {
	for _, f := range ss.factory {
		ss.routines = append(ss.routines, f())
	}
}

func (ss *HostedRoutineContainer) GetHostedRoutines() []host.IHostedRoutine {
	return ss.routines
}

type HostedLifecycleRoutineContainer struct {
	routines []host.IHostedLifecycleRoutine
	factory  []func() host.IHostedLifecycleRoutine
}

func (ss *HostedLifecycleRoutineContainer) AddHostedLifecycleRoutine(factory func() host.IHostedLifecycleRoutine) {
	ss.factory = append(ss.factory, factory)
}

func (ss *HostedLifecycleRoutineContainer) BuildHostedLifecycleRoutines() {
	for _, f := range ss.factory {
		ss.routines = append(ss.routines, f())
	}
}

func (ss *HostedLifecycleRoutineContainer) GetHostedLifecycleRoutines() []host.IHostedLifecycleRoutine {
	return ss.routines
}
