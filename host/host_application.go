package host

import (
	"context"

	"github.com/mogud/snowlog/syncext"
)

type IHostApplication interface {
	OnStarted(listener func())
	OnStopped(listener func())
	OnStopping(listener func())

	StopApplication()
}

// Run 启动 host 并阻塞到应用停止
func Run(h IHost) {
	RunContext(context.Background(), h)
}

// RunContext 与 Run 相同，ctx 结束时也会停止应用
func RunContext(ctx context.Context, h IHost) {
	app := GetRoutine[IHostApplication](h.GetRoutineProvider())
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.OnStopping(cancel)

	wg := syncext.NewTimeoutWaitGroup()
	h.Start(ctx, wg)
	wg.Wait()

	<-ctx.Done()

	wg = syncext.NewTimeoutWaitGroup()
	h.Stop(context.Background(), wg)
	wg.Wait()
}
