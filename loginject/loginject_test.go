package loginject_test

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/host/builder"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/loginject"
	"github.com/mogud/snowlog/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	path    string
	level   logging.Level
	message string
}

type recorder struct {
	lock    sync.Mutex
	records []record
}

func (ss *recorder) Log(data *logging.LogData) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.records = append(ss.records, record{path: data.Path, level: data.Level, message: data.Message()})
}

func (ss *recorder) find(path string, contains string) (record, bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	for _, r := range ss.records {
		if r.path == path && strings.Contains(r.message, contains) {
			return r, true
		}
	}
	return record{}, false
}

type OrderService struct {
	injection.Component

	logger *injection.Lazy[logging.ILogger]
}

func (ss *OrderService) Construct() {
	ss.logger = loginject.InjectLogger(ss, injection.DefaultLazyMode)
}

type Box[T any] struct{}

type EagerService struct {
	injection.Component

	logger logging.ILogger
	err    error
}

func (ss *EagerService) Construct() {
	ss.logger, ss.err = loginject.InjectLogger(ss, injection.DefaultLazyMode).Get()
}

func newHost(t *testing.T) (*builder.DefaultBuilder, *recorder, host.IHost) {
	t.Helper()

	rec := &recorder{}
	b := builder.NewDefaultBuilder()
	loginject.UseContainerLogger(b)
	loginject.AddLoggerFactory(b)
	host.AddLogHandler(b, func() *recorder { return rec })
	host.AddSingleton[*OrderService](b)

	return b, rec, b.Build()
}

func TestContainerLoggerLevels(t *testing.T) {
	rec := &recorder{}
	cl := loginject.NewContainerLoggerWith(logging.NewDefaultLogger(loginject.ContainerChannel, rec, nil))

	cl.Log(injection.DEBUG, "debug message")
	cl.Log(injection.INFO, "info message")
	cl.Log(injection.ERROR, "error message")
	cl.Log(injection.NONE, "none message")
	cl.Log(injection.INFO, "100% done")

	expected := map[string]logging.Level{
		"debug message": logging.DEBUG,
		"info message":  logging.INFO,
		"error message": logging.ERROR,
		"none message":  logging.DEBUG,
		"100% done":     logging.INFO,
	}
	for msg, level := range expected {
		r, ok := rec.find("snow", msg)
		if assert.True(t, ok, msg) {
			assert.Equal(t, level, r.level, msg)
			assert.Equal(t, msg, r.message)
		}
	}
}

func TestUseContainerLogger(t *testing.T) {
	b := builder.NewDefaultBuilder()
	_, isEmpty := b.GetLogger().(injection.EmptyLogger)
	assert.True(t, isEmpty)

	loginject.UseContainerLogger(b)
	assert.IsType(t, &loginject.ContainerLogger{}, b.GetLogger())
}

func TestBuildLogsToContainerChannel(t *testing.T) {
	_, rec, _ := newHost(t)

	r, ok := rec.find("snow", "definitions in")
	require.True(t, ok)
	assert.Equal(t, logging.INFO, r.level)
	assert.True(t, strings.HasPrefix(r.message, "loaded "))
}

func TestMissingDefinitionLogsError(t *testing.T) {
	b, rec, _ := newHost(t)

	type unregistered struct{}
	_, err := b.GetRoutineProvider().ResolveRoutine(nil, reflect.TypeOf(unregistered{}), nil)
	assert.ErrorIs(t, err, injection.ErrNoDefinition)

	r, ok := rec.find("snow", "no definition found for type")
	require.True(t, ok)
	assert.Equal(t, logging.ERROR, r.level)
}

func TestInjectLoggerForComponent(t *testing.T) {
	_, _, h := newHost(t)

	svc := injection.GetRoutine[*OrderService](h.GetRoutineProvider())
	require.NotNil(t, svc.logger)
	assert.False(t, svc.logger.IsResolved())

	logger, err := svc.logger.Get()
	require.NoError(t, err)
	assert.Equal(t, "OrderService", logger.Name())
	assert.True(t, svc.logger.IsResolved())

	again, err := svc.logger.Get()
	require.NoError(t, err)
	assert.Same(t, logger, again)
}

func TestInjectLoggerInsideConstruct(t *testing.T) {
	b := builder.NewDefaultBuilder()
	loginject.AddLoggerFactory(b)
	host.AddLogHandler(b, func() *recorder { return &recorder{} })
	host.AddSingleton[*EagerService](b)
	h := b.Build()

	svc := injection.GetRoutine[*EagerService](h.GetRoutineProvider())
	require.NoError(t, svc.err)
	require.NotNil(t, svc.logger)
	assert.Equal(t, "EagerService", svc.logger.Name())
}

func TestInjectLoggerNilComponent(t *testing.T) {
	_, err := loginject.InjectLogger(nil, injection.DefaultLazyMode).Get()
	assert.ErrorContains(t, err, "component is nil")

	var svc *OrderService
	_, err = loginject.InjectLogger(svc, injection.LazyNone).Get()
	assert.ErrorContains(t, err, "component is nil")

	_, err = loginject.InjectNamedLogger(svc, "payments", injection.LazyPublication).Get()
	assert.ErrorContains(t, err, "component is nil")
}

func TestInjectNamedLogger(t *testing.T) {
	_, _, h := newHost(t)
	svc := injection.GetRoutine[*OrderService](h.GetRoutineProvider())

	logger := loginject.InjectNamedLogger(svc, "payments", injection.LazyPublication).MustGet()
	assert.Equal(t, "payments", logger.Name())

	logger = loginject.InjectNamedLogger(svc, "", injection.LazyNone).MustGet()
	assert.Equal(t, "", logger.Name())
}

func TestProviderEntryPoints(t *testing.T) {
	_, rec, h := newHost(t)
	p := h.GetRoutineProvider()

	byName := loginject.InjectLoggerByName(p, "audit", injection.DefaultLazyMode).MustGet()
	assert.Equal(t, "audit", byName.Name())

	byType := loginject.InjectLoggerByType(p, reflect.TypeOf(&OrderService{}), injection.DefaultLazyMode).MustGet()
	assert.Equal(t, "OrderService", byType.Name())

	generic := loginject.InjectLoggerOf[Box[int]](p, injection.DefaultLazyMode).MustGet()
	assert.Equal(t, "Box", generic.Name())

	byFunc := loginject.InjectLoggerFunc(p, injection.DefaultLazyMode, func() {
		t.Fatal("callback must not be invoked")
	}).MustGet()
	assert.Equal(t, "github.com/mogud/snowlog/loginject_test", byFunc.Name())

	byName.Infof("order %d accepted", 7)
	r, ok := rec.find("audit", "order 7 accepted")
	require.True(t, ok)
	assert.Equal(t, logging.INFO, r.level)
}

func TestInjectLoggerErrors(t *testing.T) {
	_, _, h := newHost(t)
	p := h.GetRoutineProvider()

	anonymous := reflect.TypeOf(struct{ A int }{})
	_, err := loginject.InjectLoggerByType(p, anonymous, injection.DefaultLazyMode).Get()
	assert.ErrorIs(t, err, naming.ErrUnnamedType)

	_, err = injection.Inject[logging.ILogger](p, injection.DefaultLazyMode, 42).Get()
	assert.ErrorIs(t, err, naming.ErrUnresolvableHint)
	assert.Contains(t, err.Error(), "int")

	_, err = injection.Inject[logging.ILogger](p, injection.DefaultLazyMode).Get()
	assert.Error(t, err)

	detached := &OrderService{}
	_, err = loginject.InjectLogger(detached, injection.DefaultLazyMode).Get()
	assert.Error(t, err)
}

func TestInjectWithoutFactory(t *testing.T) {
	b := builder.NewDefaultBuilder()
	h := b.Build()

	_, err := loginject.InjectLoggerByName(h.GetRoutineProvider(), "x", injection.DefaultLazyMode).Get()
	assert.ErrorIs(t, err, injection.ErrNoDefinition)
}

func TestStaticResolver(t *testing.T) {
	b := builder.NewDefaultBuilder()
	loginject.AddLoggerFactoryWith(b, naming.NewResolver(naming.NewStaticInspector()))
	h := b.Build()
	p := h.GetRoutineProvider()

	_, err := loginject.InjectLoggerFunc(p, injection.DefaultLazyMode, func() {}).Get()
	assert.ErrorIs(t, err, naming.ErrUnsupportedPlatform)

	named, err := loginject.InjectLoggerByName(p, "still-works", injection.DefaultLazyMode).Get()
	require.NoError(t, err)
	assert.Equal(t, "still-works", named.Name())
}
