package configuration

type IConfigurationSource interface {
	BuildConfigurationProvider() IConfigurationProvider
}

type IConfigurationProvider interface {
	TryGet(key string) (value string, ok bool)
	Set(key string, value string)
	GetReloadNotifier() *Notifier
	Load() error
	GetChildKeys(parentPath string) []string
}

type IConfiguration interface {
	Get(key string) string
	TryGet(key string) (value string, ok bool)
	Set(key string, value string)
	GetChildKeys(parentPath string) []string
	GetReloadNotifier() *Notifier
}
