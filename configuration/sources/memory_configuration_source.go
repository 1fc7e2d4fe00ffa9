package sources

import (
	"github.com/mogud/snowlog/configuration"
)

var _ configuration.IConfigurationSource = (*MemoryConfigurationSource)(nil)

// MemoryConfigurationSource 直接提供扁平键值，例如 "Log:Console:DefaultLevel" => "Debug"
type MemoryConfigurationSource struct {
	InitData map[string]string
}

func (ss *MemoryConfigurationSource) BuildConfigurationProvider() configuration.IConfigurationProvider {
	provider := configuration.NewProvider()
	provider.Replace(ss.InitData)
	return provider
}
