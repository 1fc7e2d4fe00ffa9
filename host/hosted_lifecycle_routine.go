package host

import (
	"context"

	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/syncext"
)

type IHostedLifecycleRoutine interface {
	IHostedRoutine

	BeforeStart(ctx context.Context, wg *syncext.TimeoutWaitGroup)
	AfterStart(ctx context.Context, wg *syncext.TimeoutWaitGroup)
	BeforeStop(ctx context.Context, wg *syncext.TimeoutWaitGroup)
	AfterStop(ctx context.Context, wg *syncext.TimeoutWaitGroup)
}

type IHostedLifecycleRoutineContainer interface {
	AddHostedLifecycleRoutine(factory func() IHostedLifecycleRoutine)
	BuildHostedLifecycleRoutines()
	GetHostedLifecycleRoutines() []IHostedLifecycleRoutine
}

func AddHostedLifecycleRoutine[U IHostedLifecycleRoutine](builder IBuilder) {
	provider := builder.GetRoutineProvider()
	container := GetRoutine[IHostedLifecycleRoutineContainer](provider)

	AddSingleton[U](builder)
	container.AddHostedLifecycleRoutine(func() IHostedLifecycleRoutine {
		return injection.GetRoutine[U](provider)
	})
}
