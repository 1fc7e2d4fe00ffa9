package host

import (
	"context"

	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/syncext"
)

type IHostedRoutine interface {
	Start(ctx context.Context, wg *syncext.TimeoutWaitGroup)
	Stop(ctx context.Context, wg *syncext.TimeoutWaitGroup)
}

type IHostedRoutineContainer interface {
	AddHostedRoutine(factory func() IHostedRoutine)
	BuildHostedRoutines()
	GetHostedRoutines() []IHostedRoutine
}

func AddHostedRoutine[U IHostedRoutine](builder IBuilder) {
	provider := builder.GetRoutineProvider()
	container := GetRoutine[IHostedRoutineContainer](provider)

	AddSingleton[U](builder)
	container.AddHostedRoutine(func() IHostedRoutine {
		return injection.GetRoutine[U](provider)
	})
}
