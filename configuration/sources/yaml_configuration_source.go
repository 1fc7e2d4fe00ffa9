package sources

import (
	"github.com/mogud/snowlog/configuration"
	"gopkg.in/yaml.v3"
)

var _ configuration.IConfigurationSource = (*YamlConfigurationSource)(nil)

type YamlConfigurationSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

func (ss *YamlConfigurationSource) BuildConfigurationProvider() configuration.IConfigurationProvider {
	return NewFileConfigurationProvider(&FileConfigurationSource{
		Path:           ss.Path,
		Optional:       ss.Optional,
		ReloadOnChange: ss.ReloadOnChange,
	}, ParseYaml)
}

func ParseYaml(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}
