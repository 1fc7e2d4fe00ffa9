package internal

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/option"
	"github.com/mogud/snowlog/syncext"
	"github.com/mogud/snowlog/task"
)

var _ host.IHost = (*Host)(nil)

type HostOption struct {
	StartWaitTimeoutSeconds int `snow:"StartWaitTimeoutSeconds"`
	StopWaitTimeoutSeconds  int `snow:"StopWaitTimeoutSeconds"`
}

type Host struct {
	option                  *HostOption
	logger                  logging.ILogger
	provider                injection.IRoutineProvider
	app                     *HostApplication
	hostedRoutines          []host.IHostedRoutine
	hostedLifecycleRoutines []host.IHostedLifecycleRoutine
	built                   bool
}

func NewHost(provider injection.IRoutineProvider) *Host {
	return &Host{provider: provider, option: &HostOption{}}
}

func (ss *Host) Construct(option *option.Option[*HostOption], logger *logging.Logger[Host]) {
	if opt := option.Get(); opt != nil {
		ss.option = opt
	}
	if ss.option.StartWaitTimeoutSeconds == 0 {
		ss.option.StartWaitTimeoutSeconds = 5
	}
	if ss.option.StopWaitTimeoutSeconds == 0 {
		ss.option.StopWaitTimeoutSeconds = 8
	}

	ss.logger = logger.Get(func(data *logging.LogData) {
		data.ID = fmt.Sprintf("%X", unsafe.Pointer(ss))
	})
}

func (ss *Host) GetRoutineProvider() injection.IRoutineProvider {
	return ss.provider
}

func (ss *Host) build() {
	if ss.built {
		return
	}
	ss.built = true

	ss.app = injection.GetRoutine[host.IHostApplication](ss.provider).(*HostApplication)

	container := injection.GetRoutine[host.IHostedRoutineContainer](ss.provider)
	container.BuildHostedRoutines()
	ss.hostedRoutines = container.GetHostedRoutines()

	lifecycleContainer := injection.GetRoutine[host.IHostedLifecycleRoutineContainer](ss.provider)
	lifecycleContainer.BuildHostedLifecycleRoutines()
	ss.hostedLifecycleRoutines = lifecycleContainer.GetHostedLifecycleRoutines()
}

func (ss *Host) Start(ctx context.Context, wg *syncext.TimeoutWaitGroup) {
	wg.Add(1)
	defer wg.Done()

	ss.build()
	timeout := time.Duration(ss.option.StartWaitTimeoutSeconds) * time.Second

	ss.runLifecycle("BeforeStart", timeout, func(r host.IHostedLifecycleRoutine, wg *syncext.TimeoutWaitGroup) {
		r.BeforeStart(ctx, wg)
	})
	if ctx.Err() != nil {
		ss.app.EmitRoutineStartedFailed()
		return
	}

	ss.runAll("Start", timeout, func(r host.IHostedRoutine, wg *syncext.TimeoutWaitGroup) {
		r.Start(ctx, wg)
	})
	if ctx.Err() != nil {
		ss.app.EmitRoutineStartedFailed()
		return
	}

	ss.runLifecycle("AfterStart", timeout, func(r host.IHostedLifecycleRoutine, wg *syncext.TimeoutWaitGroup) {
		r.AfterStart(ctx, wg)
	})

	ss.provider.GetLogger().Log(injection.INFO, "host started")
	ss.app.EmitRoutineStartedSuccess()
}

func (ss *Host) Stop(ctx context.Context, wg *syncext.TimeoutWaitGroup) {
	wg.Add(1)
	defer wg.Done()

	ss.build()
	timeout := time.Duration(ss.option.StopWaitTimeoutSeconds) * time.Second

	ss.runLifecycle("BeforeStop", timeout, func(r host.IHostedLifecycleRoutine, wg *syncext.TimeoutWaitGroup) {
		r.BeforeStop(ctx, wg)
	})
	ss.runAll("Stop", timeout, func(r host.IHostedRoutine, wg *syncext.TimeoutWaitGroup) {
		r.Stop(ctx, wg)
	})
	ss.runLifecycle("AfterStop", timeout, func(r host.IHostedLifecycleRoutine, wg *syncext.TimeoutWaitGroup) {
		r.AfterStop(ctx, wg)
	})

	ss.provider.GetLogger().Log(injection.INFO, "host stopped")
	ss.app.EmitRoutineStopped()
}

func (ss *Host) runLifecycle(phase string, timeout time.Duration, f func(r host.IHostedLifecycleRoutine, wg *syncext.TimeoutWaitGroup)) {
	if len(ss.hostedLifecycleRoutines) == 0 {
		return
	}

	routineWg := syncext.NewTimeoutWaitGroup()
	routineWg.Add(len(ss.hostedLifecycleRoutines))
	for _, routine := range ss.hostedLifecycleRoutines {
		routine := routine
		task.Execute(func() {
			defer routineWg.Done()
			f(routine, routineWg)
		})
	}
	if !routineWg.WaitTimeout(timeout) {
		ss.logger.Warnf("'%s' wait timeout in hosted lifecycle routines", phase)
	}
}

// runAll 在 lifecycle routine 与普通 routine 上并发执行同一阶段
func (ss *Host) runAll(phase string, timeout time.Duration, f func(r host.IHostedRoutine, wg *syncext.TimeoutWaitGroup)) {
	total := len(ss.hostedLifecycleRoutines) + len(ss.hostedRoutines)
	if total == 0 {
		return
	}

	routineWg := syncext.NewTimeoutWaitGroup()
	routineWg.Add(total)
	for _, routine := range ss.hostedLifecycleRoutines {
		routine := routine
		task.Execute(func() {
			defer routineWg.Done()
			f(routine, routineWg)
		})
	}
	for _, routine := range ss.hostedRoutines {
		routine := routine
		task.Execute(func() {
			defer routineWg.Done()
			f(routine, routineWg)
		})
	}
	if !routineWg.WaitTimeout(timeout) {
		ss.logger.Warnf("'%s' wait timeout in hosted routines", phase)
	}
}
