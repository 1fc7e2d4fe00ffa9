package sources

import (
	"github.com/mogud/snowlog/configuration"
	"github.com/pelletier/go-toml/v2"
)

var _ configuration.IConfigurationSource = (*TomlConfigurationSource)(nil)

type TomlConfigurationSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

func (ss *TomlConfigurationSource) BuildConfigurationProvider() configuration.IConfigurationProvider {
	return NewFileConfigurationProvider(&FileConfigurationSource{
		Path:           ss.Path,
		Optional:       ss.Optional,
		ReloadOnChange: ss.ReloadOnChange,
	}, ParseToml)
}

func ParseToml(data []byte) (map[string]any, error) {
	var values map[string]any
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
