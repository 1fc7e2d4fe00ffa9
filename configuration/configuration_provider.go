package configuration

import (
	"sort"
	"strings"
	"sync"
)

var _ IConfigurationProvider = (*Provider)(nil)

type entry struct {
	key   string
	value string
	seq   int
}

// Provider 扁平配置，层级以 ':' 分隔；查找不区分大小写，子键保留最先写入的大小写
type Provider struct {
	lock     sync.Mutex
	data     map[string]entry
	seq      int
	notifier *Notifier
}

func NewProvider() *Provider {
	return &Provider{
		data:     make(map[string]entry),
		notifier: NewNotifier(),
	}
}

func (ss *Provider) TryGet(key string) (value string, ok bool) {
	ss.lock.Lock()
	defer ss.lock.Unlock()
	e, ok := ss.data[strings.ToUpper(key)]
	return e.value, ok
}

func (ss *Provider) Set(key string, value string) {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	upperKey := strings.ToUpper(key)
	if e, ok := ss.data[upperKey]; ok {
		e.value = value
		ss.data[upperKey] = e
		return
	}
	ss.seq++
	ss.data[upperKey] = entry{key: key, value: value, seq: ss.seq}
}

func (ss *Provider) GetReloadNotifier() *Notifier {
	return ss.notifier
}

// Replace 替换全部数据，键按字典序视为写入顺序
func (ss *Provider) Replace(data map[string]string) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	newData := make(map[string]entry, len(data))
	for i, k := range keys {
		upperKey := strings.ToUpper(k)
		if _, ok := newData[upperKey]; ok {
			continue
		}
		newData[upperKey] = entry{key: k, value: data[k], seq: i + 1}
	}

	ss.lock.Lock()
	defer ss.lock.Unlock()
	ss.data = newData
	ss.seq = len(keys)
}

func (ss *Provider) Load() error {
	return nil
}

func (ss *Provider) OnReload() {
	ss.notifier.Notify()
}

func (ss *Provider) GetChildKeys(parentPath string) []string {
	ss.lock.Lock()
	defer ss.lock.Unlock()

	upperParent := strings.ToUpper(parentPath)
	keySet := make(map[string]entry)
	for upperKey, e := range ss.data {
		var segment string
		switch {
		case len(upperParent) == 0:
			segment = keySegment(e.key, 0)
		case len(upperKey) > len(upperParent) && strings.HasPrefix(upperKey, upperParent) && upperKey[len(upperParent)] == ':':
			segment = keySegment(e.key, len(upperParent)+1)
		default:
			continue
		}
		upperSegment := strings.ToUpper(segment)
		if first, ok := keySet[upperSegment]; ok && first.seq < e.seq {
			continue
		}
		keySet[upperSegment] = entry{key: segment, seq: e.seq}
	}

	childKeys := make([]string, 0, len(keySet))
	for _, e := range keySet {
		childKeys = append(childKeys, e.key)
	}
	sort.Strings(childKeys)
	return childKeys
}
