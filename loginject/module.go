package loginject

import (
	"fmt"

	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/logging/slog"
	"github.com/mogud/snowlog/naming"
)

// AddLoggerFactory 注册 logging.ILogger 的参数化工厂，第 0 个参数为名称提示
func AddLoggerFactory(builder host.IBuilder) *injection.RoutineDescriptor {
	return AddLoggerFactoryWith(builder, naming.DefaultResolver())
}

// AddLoggerFactoryWith 与 AddLoggerFactory 相同，但使用指定的 resolver
func AddLoggerFactoryWith(builder host.IBuilder, resolver *naming.Resolver) *injection.RoutineDescriptor {
	if resolver == nil {
		resolver = naming.DefaultResolver()
	}

	return host.AddParameterizedFactory[logging.ILogger](builder,
		func(_ injection.IRoutineScope, params *injection.Parameters) (logging.ILogger, error) {
			hint, err := params.Get(0)
			if err != nil {
				return nil, fmt.Errorf("logger factory: %w", err)
			}

			name, err := resolver.ResolveAny(hint)
			if err != nil {
				return nil, err
			}
			return slog.GetLogger(name), nil
		})
}
