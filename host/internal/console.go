package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"unsafe"

	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/syncext"
)

var _ host.IHostedRoutine = (*ConsoleLifetimeRoutine)(nil)

// ConsoleLifetimeRoutine 收到 SIGINT/SIGTERM 时停止应用
type ConsoleLifetimeRoutine struct {
	logger      logging.ILogger
	cancel      func()
	wg          sync.WaitGroup
	application host.IHostApplication
}

func (ss *ConsoleLifetimeRoutine) Construct(application host.IHostApplication, logger *logging.Logger[ConsoleLifetimeRoutine]) {
	ss.application = application
	ss.logger = logger.Get(func(data *logging.LogData) {
		data.Name = "ConsoleLifetime"
		data.ID = fmt.Sprintf("%X", unsafe.Pointer(ss))
	})
}

func (ss *ConsoleLifetimeRoutine) Start(_ context.Context, wg *syncext.TimeoutWaitGroup) {
	var ctx context.Context
	ctx, ss.cancel = context.WithCancel(context.Background())
	ss.wg.Add(1)
	wg.Add(1)
	go func() {
		defer ss.wg.Done()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigs)
		wg.Done()

		select {
		case sig := <-sigs:
			ss.logger.Infof("shutdown application by signal %v", sig)
			ss.application.StopApplication()
		case <-ctx.Done():
		}
	}()
}

func (ss *ConsoleLifetimeRoutine) Stop(_ context.Context, wg *syncext.TimeoutWaitGroup) {
	wg.Add(1)
	defer wg.Done()

	if ss.cancel != nil {
		ss.cancel()
	}
	ss.wg.Wait()
}
