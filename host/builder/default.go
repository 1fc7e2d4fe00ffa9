package builder

import (
	"fmt"
	"time"

	"github.com/mogud/snowlog/configuration"
	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/host/internal"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/handler"
	"github.com/mogud/snowlog/logging/handler/console"
	"github.com/mogud/snowlog/logging/slog"
	"github.com/mogud/snowlog/option"
)

var _ host.IBuilder = (*DefaultBuilder)(nil)

type DefaultBuilder struct {
	descriptors *internal.RoutineCollection
	provider    *internal.RoutineProvider
	config      *configuration.Manager
}

func NewDefaultBuilder() *DefaultBuilder {
	builder := &DefaultBuilder{
		descriptors: internal.NewRoutineCollection(),
		config:      configuration.NewManager(),
	}
	builder.provider = internal.NewProvider(builder.descriptors, nil)

	host.AddSingletonFactory[*configuration.Manager](builder, func(scope injection.IRoutineScope) *configuration.Manager {
		return builder.config
	})
	host.AddSingletonFactory[*option.Repository](builder, func(scope injection.IRoutineScope) *option.Repository {
		return option.NewOptionRepository(builder.config)
	})

	host.AddSingletonFactory[*logging.LogFormatterContainer](builder, func(scope injection.IRoutineScope) *logging.LogFormatterContainer {
		f := logging.NewLogFormatterRepository()
		f.AddFormatter("Default", logging.DefaultLogFormatter)
		f.AddFormatter("Color", logging.ColorLogFormatter)
		return f
	})

	host.AddOption[*console.Option](builder, "Log:Console")
	host.AddSingletonFactory[*console.Handler](builder, func(scope injection.IRoutineScope) *console.Handler {
		return console.NewHandler()
	})
	host.AddSingletonFactory[*handler.CompoundHandler](builder, func(scope injection.IRoutineScope) *handler.CompoundHandler {
		ch := injection.GetRoutine[*console.Handler](builder.provider)

		compoundHandler := handler.NewCompoundHandler(ch)
		slog.BindGlobalHandler(compoundHandler)

		return compoundHandler
	})

	host.AddVariantSingleton[host.IHostedRoutineContainer, *internal.HostedRoutineContainer](builder)
	host.AddVariantSingleton[host.IHostedLifecycleRoutineContainer, *internal.HostedLifecycleRoutineContainer](builder)

	return builder
}

func (ss *DefaultBuilder) GetRoutineProvider() injection.IRoutineProvider {
	return ss.provider
}

func (ss *DefaultBuilder) GetRoutineCollection() injection.IRoutineCollection {
	return ss.descriptors
}

func (ss *DefaultBuilder) GetConfigurationManager() *configuration.Manager {
	return ss.config
}

func (ss *DefaultBuilder) SetLogger(logger injection.ILogger) {
	ss.provider.SetLogger(logger)
}

func (ss *DefaultBuilder) GetLogger() injection.ILogger {
	return ss.provider.GetLogger()
}

// Build 注册 host 相关 routine 并返回 IHost，完成后向容器日志输出已加载的定义数量
func (ss *DefaultBuilder) Build() host.IHost {
	start := time.Now()

	host.AddOption[*internal.HostOption](ss, "Host")

	host.AddSingletonFactory[host.IHost](ss, func(scope injection.IRoutineScope) host.IHost {
		return internal.NewHost(ss.provider)
	})
	host.AddSingletonFactory[host.IHostApplication](ss, func(scope injection.IRoutineScope) host.IHostApplication {
		return internal.NewHostApplication()
	})
	host.AddHostedRoutine[*internal.ConsoleLifetimeRoutine](ss)

	h := host.GetRoutine[host.IHost](ss.provider)

	ss.provider.GetLogger().Log(injection.INFO,
		fmt.Sprintf("loaded %d definitions in %v", ss.descriptors.Len(), time.Since(start)))
	return h
}
