package sources

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/mogud/snowlog/configuration"
	stripjsoncomments "github.com/trapcodeio/go-strip-json-comments"
)

var _ configuration.IConfigurationSource = (*JsonConfigurationSource)(nil)

// JsonConfigurationSource 支持注释的 JSON 配置文件
type JsonConfigurationSource struct {
	Path           string
	Optional       bool
	ReloadOnChange bool
}

func (ss *JsonConfigurationSource) BuildConfigurationProvider() configuration.IConfigurationProvider {
	return NewFileConfigurationProvider(&FileConfigurationSource{
		Path:           ss.Path,
		Optional:       ss.Optional,
		ReloadOnChange: ss.ReloadOnChange,
	}, ParseJson)
}

func ParseJson(data []byte) (map[string]any, error) {
	jsonWithoutComments := stripjsoncomments.Strip(string(data))

	var values map[string]any
	if err := jsoniter.UnmarshalFromString(jsonWithoutComments, &values); err != nil {
		return nil, err
	}
	return values, nil
}
