package configuration

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var _ IConfiguration = (*Manager)(nil)

// Manager 按添加顺序组合多个配置源，后添加的源优先
type Manager struct {
	lock      sync.Mutex
	sources   []IConfigurationSource
	providers []IConfigurationProvider
	notifier  *Notifier
}

func NewManager() *Manager {
	return &Manager{
		notifier: NewNotifier(),
	}
}

func (ss *Manager) Get(key string) string {
	v, _ := ss.TryGet(key)
	return v
}

func (ss *Manager) TryGet(key string) (value string, ok bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	for i := len(ss.providers) - 1; i >= 0; i-- {
		if value, ok = ss.providers[i].TryGet(key); ok {
			return value, true
		}
	}
	return
}

func (ss *Manager) Set(key string, value string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	for _, provider := range ss.providers {
		provider.Set(key, value)
	}
}

func (ss *Manager) GetChildKeys(parentPath string) []string {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	keySet := make(map[string]string)
	for _, provider := range ss.providers {
		for _, key := range provider.GetChildKeys(parentPath) {
			// 大小写不同的同名子键以最先注册的配置源为准
			upperKey := strings.ToUpper(key)
			if _, ok := keySet[upperKey]; !ok {
				keySet[upperKey] = key
			}
		}
	}

	keys := make([]string, 0, len(keySet))
	for _, key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (ss *Manager) GetReloadNotifier() *Notifier {
	return ss.notifier
}

// Reload 重新加载所有配置源并通知监听者
func (ss *Manager) Reload() error {
	defer ss.notifier.Notify()

	ss.lock.Lock()
	providers := append([]IConfigurationProvider(nil), ss.providers...)
	ss.lock.Unlock()

	var errs []error
	for _, provider := range providers {
		if err := provider.Load(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (ss *Manager) GetSources() []IConfigurationSource {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	return append([]IConfigurationSource(nil), ss.sources...)
}

// AddSource 构建并加载配置源，加载失败时不会加入
func (ss *Manager) AddSource(source IConfigurationSource) error {
	newProvider := source.BuildConfigurationProvider()
	if err := newProvider.Load(); err != nil {
		return err
	}

	defer ss.notifier.Notify()

	ss.lock.Lock()
	defer ss.lock.Unlock()

	ss.sources = append(ss.sources, source)
	ss.providers = append(ss.providers, newProvider)

	newProvider.GetReloadNotifier().RegisterNotifyCallback(ss.notifier.Notify)
	return nil
}
