package option

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/mogud/snowlog/configuration"
	"github.com/mogud/snowlog/logging/slog"
)

type Repository struct {
	lock   sync.Mutex
	config configuration.IConfiguration
	// key : type : option path
	binding map[string]map[reflect.Type]string
	// key : type : option value
	values map[string]map[reflect.Type]any
}

func NewOptionRepository(config configuration.IConfiguration) *Repository {
	return &Repository{
		config:  config,
		binding: make(map[string]map[reflect.Type]string),
		values:  make(map[string]map[reflect.Type]any),
	}
}

func (ss *Repository) GetConfiguration() configuration.IConfiguration {
	return ss.config
}

func (ss *Repository) BindByPath(key string, ty reflect.Type, path string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	kv, ok := ss.binding[key]
	if !ok {
		kv = make(map[reflect.Type]string)
		ss.binding[key] = kv
	}
	kv[ty] = path
}

func (ss *Repository) BindByValue(key string, ty reflect.Type, value any) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	kv, ok := ss.values[key]
	if !ok {
		kv = make(map[reflect.Type]any)
		ss.values[key] = kv
	}
	kv[ty] = value
}

// Get 返回 key 与类型 ty 对应的配置：优先返回绑定的值，其次从绑定路径读取配置，都没有时返回零值
func (ss *Repository) Get(key string, ty reflect.Type) any {
	ss.lock.Lock()
	value, hasValue := ss.values[key][ty]
	path, hasPath := ss.binding[key][ty]
	ss.lock.Unlock()

	if hasValue {
		return value
	}

	var out reflect.Value
	if ty.Kind() == reflect.Pointer {
		out = reflect.New(ty.Elem())
	} else {
		out = reflect.New(ty)
	}

	if hasPath && ss.config != nil {
		if err := configuration.Fill(ss.config, path, out.Interface()); err != nil {
			slog.Errorf("bind option %v to path %q: %v", ty, path, err)
		}
	}

	if ty.Kind() == reflect.Pointer {
		return out.Interface()
	}
	return out.Elem().Interface()
}

func (ss *Repository) OnChanged(listener func()) {
	if ss.config == nil {
		return
	}
	ss.config.GetReloadNotifier().RegisterNotifyCallback(listener)
}

// GetOption 构造一个 *Option[T] 实例，ty 为 *Option[T] 的类型
func (ss *Repository) GetOption(ty reflect.Type) any {
	instanceValue := reflect.New(ty.Elem())
	repoField := instanceValue.Elem().Field(0)
	field := reflect.NewAt(repoField.Type(), unsafe.Pointer(repoField.UnsafeAddr())).Elem()
	field.Set(reflect.ValueOf(ss))
	return instanceValue.Interface()
}

func BindOptionPath[T any](repo *Repository, path string) {
	BindKeyedOptionPath[T](repo, "", path)
}

func BindKeyedOptionPath[T any](repo *Repository, key string, path string) {
	repo.BindByPath(key, reflect.TypeOf((*T)(nil)).Elem(), path)
}

func BindOptionValue[T any](repo *Repository, value T) {
	BindKeyedOptionValue[T](repo, "", value)
}

func BindKeyedOptionValue[T any](repo *Repository, key string, value T) {
	repo.BindByValue(key, reflect.TypeOf((*T)(nil)).Elem(), value)
}

// NewOption 直接构造 *Option[T]，用于不经过容器注入的场景
func NewOption[T any](repo *Repository) *Option[T] {
	return &Option[T]{repo: repo}
}
