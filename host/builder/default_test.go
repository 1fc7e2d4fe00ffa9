package builder_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mogud/snowlog/configuration/sources"
	"github.com/mogud/snowlog/host"
	"github.com/mogud/snowlog/host/builder"
	"github.com/mogud/snowlog/injection"
	"github.com/mogud/snowlog/logging"
	"github.com/mogud/snowlog/option"
	"github.com/mogud/snowlog/syncext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type containerLog struct {
	lock     sync.Mutex
	messages []string
}

func (ss *containerLog) Log(level injection.Level, message string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.messages = append(ss.messages, fmt.Sprintf("%v %s", level, message))
}

func (ss *containerLog) has(prefix string) bool {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	for _, m := range ss.messages {
		if strings.HasPrefix(m, prefix) {
			return true
		}
	}
	return false
}

type greeterOption struct {
	Greeting string `snow:"Greeting"`
}

type Repository struct {
	id int
}

type Greeter struct {
	option   *greeterOption
	logger   logging.ILogger
	repo     *Repository
	provider injection.IRoutineProvider
}

func (ss *Greeter) Construct(
	opt *option.Option[*greeterOption],
	logger *logging.Logger[Greeter],
	repo *Repository,
	provider injection.IRoutineProvider,
) {
	ss.option = opt.Get()
	ss.logger = logger.Get(nil)
	ss.repo = repo
	ss.provider = provider
}

var repoCounter atomic.Int32

func newBuilder(t *testing.T) (*builder.DefaultBuilder, *containerLog) {
	t.Helper()

	b := builder.NewDefaultBuilder()
	log := &containerLog{}
	b.SetLogger(log)

	require.NoError(t, host.AddConfigurationSource(b, &sources.MemoryConfigurationSource{InitData: map[string]string{
		"Greeter:Greeting": "hello",
	}}))
	host.AddOption[*greeterOption](b, "Greeter")
	host.AddTransientFactory[*Repository](b, func(scope injection.IRoutineScope) *Repository {
		return &Repository{id: int(repoCounter.Add(1))}
	})
	host.AddSingleton[*Greeter](b)
	return b, log
}

func TestSingletonConstruct(t *testing.T) {
	b, log := newBuilder(t)
	h := b.Build()

	g := injection.GetRoutine[*Greeter](h.GetRoutineProvider())
	assert.Same(t, g, injection.GetRoutine[*Greeter](h.GetRoutineProvider()))

	assert.Equal(t, "hello", g.option.Greeting)
	assert.Equal(t, "Greeter", g.logger.Name())
	require.NotNil(t, g.repo)
	assert.Same(t, b.GetRoutineProvider(), g.provider)

	assert.True(t, log.has("INFO loaded "))
	assert.True(t, log.has("DEBUG | create instance for *builder_test.Greeter"))
}

func TestTransientAndScoped(t *testing.T) {
	b, _ := newBuilder(t)
	host.AddScopedFactory[*greeterOption](b, func(scope injection.IRoutineScope) *greeterOption {
		return &greeterOption{}
	})
	h := b.Build()
	p := h.GetRoutineProvider()

	r1 := injection.GetRoutine[*Repository](p)
	r2 := injection.GetRoutine[*Repository](p)
	assert.NotEqual(t, r1.id, r2.id)

	s1 := p.CreateScope().GetProvider()
	s2 := p.CreateScope().GetProvider()
	o1 := injection.GetRoutine[*greeterOption](s1)
	assert.Same(t, o1, injection.GetRoutine[*greeterOption](s1))
	assert.NotSame(t, o1, injection.GetRoutine[*greeterOption](s2))

	assert.Same(t, injection.GetRoutine[*Greeter](s1), injection.GetRoutine[*Greeter](s2))
	assert.Same(t, p.GetRootScope(), s1.GetRootScope())
}

func TestKeyedRoutine(t *testing.T) {
	b, _ := newBuilder(t)
	host.AddKeyedSingletonFactory[*greeterOption](b, "loud", func(scope injection.IRoutineScope) *greeterOption {
		return &greeterOption{Greeting: "HELLO"}
	})
	h := b.Build()

	assert.Equal(t, "HELLO", injection.GetKeyedRoutine[*greeterOption](h.GetRoutineProvider(), "loud").Greeting)
}

func TestMissingDefinition(t *testing.T) {
	b, log := newBuilder(t)
	h := b.Build()
	p := h.GetRoutineProvider()

	_, ok := injection.TryGetRoutine[*strings.Builder](p)
	assert.False(t, ok)

	_, err := p.ResolveRoutine(nil, reflect.TypeOf(&strings.Builder{}), nil)
	assert.ErrorIs(t, err, injection.ErrNoDefinition)
	assert.True(t, log.has("ERROR no definition found for type *strings.Builder"))
}

func TestParameterizedFactory(t *testing.T) {
	b, log := newBuilder(t)
	errEmpty := errors.New("empty greeting")
	host.AddParameterizedFactory[*greeterOption](b, func(_ injection.IRoutineScope, params *injection.Parameters) (*greeterOption, error) {
		greeting, err := injection.GetParameter[string](params, 0)
		if err != nil {
			return nil, err
		}
		if greeting == "" {
			return nil, errEmpty
		}
		return &greeterOption{Greeting: greeting}, nil
	})
	h := b.Build()
	p := h.GetRoutineProvider()

	opt, err := injection.Inject[*greeterOption](p, injection.DefaultLazyMode, "hi").Get()
	require.NoError(t, err)
	assert.Equal(t, "hi", opt.Greeting)

	_, err = injection.Inject[*greeterOption](p, injection.DefaultLazyMode, "").Get()
	assert.ErrorIs(t, err, errEmpty)
	assert.True(t, log.has("ERROR instance creation failed"))

	_, err = injection.Inject[*greeterOption](p, injection.DefaultLazyMode, 1).Get()
	assert.Error(t, err)
}

func TestSetLoggerNil(t *testing.T) {
	b := builder.NewDefaultBuilder()
	b.SetLogger(nil)
	assert.Equal(t, injection.EmptyLogger{}, b.GetLogger())
}

type worker struct {
	started atomic.Bool
	stopped atomic.Bool
}

func (ss *worker) Start(_ context.Context, _ *syncext.TimeoutWaitGroup) {
	ss.started.Store(true)
}

func (ss *worker) Stop(_ context.Context, _ *syncext.TimeoutWaitGroup) {
	ss.stopped.Store(true)
}

type phases struct {
	lock  sync.Mutex
	names []string
}

func (ss *phases) add(name string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.names = append(ss.names, name)
}

func (ss *phases) BeforeStart(context.Context, *syncext.TimeoutWaitGroup) { ss.add("BeforeStart") }
func (ss *phases) Start(context.Context, *syncext.TimeoutWaitGroup)       { ss.add("Start") }
func (ss *phases) AfterStart(context.Context, *syncext.TimeoutWaitGroup)  { ss.add("AfterStart") }
func (ss *phases) BeforeStop(context.Context, *syncext.TimeoutWaitGroup)  { ss.add("BeforeStop") }
func (ss *phases) Stop(context.Context, *syncext.TimeoutWaitGroup)        { ss.add("Stop") }
func (ss *phases) AfterStop(context.Context, *syncext.TimeoutWaitGroup)   { ss.add("AfterStop") }

func TestRunLifecycle(t *testing.T) {
	b, log := newBuilder(t)
	host.AddHostedRoutine[*worker](b)
	host.AddHostedLifecycleRoutine[*phases](b)
	h := b.Build()
	p := h.GetRoutineProvider()

	app := host.GetRoutine[host.IHostApplication](p)
	var started, stopped atomic.Bool
	app.OnStarted(func() {
		started.Store(true)
		app.StopApplication()
	})
	app.OnStopped(func() { stopped.Store(true) })

	done := make(chan struct{})
	go func() {
		defer close(done)
		host.Run(h)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("host did not stop")
	}

	w := injection.GetRoutine[*worker](p)
	assert.True(t, w.started.Load())
	assert.True(t, w.stopped.Load())
	assert.True(t, started.Load())
	assert.True(t, stopped.Load())

	ph := injection.GetRoutine[*phases](p)
	assert.Equal(t, []string{"BeforeStart", "Start", "AfterStart", "BeforeStop", "Stop", "AfterStop"}, ph.names)

	assert.True(t, log.has("INFO host started"))
	assert.True(t, log.has("INFO host stopped"))
}

func TestRunContextCancel(t *testing.T) {
	b, _ := newBuilder(t)
	host.AddHostedRoutine[*worker](b)
	h := b.Build()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		host.RunContext(ctx, h)
	}()

	w := injection.GetRoutine[*worker](h.GetRoutineProvider())
	require.Eventually(t, w.started.Load, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("host did not stop")
	}
	assert.True(t, w.stopped.Load())
}
