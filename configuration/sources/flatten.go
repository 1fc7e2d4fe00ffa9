package sources

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mogud/snowlog/configuration"
)

// Flatten 将嵌套的 map/slice 展开为 "A:B:0" 形式的扁平键值
func Flatten(head string, values map[string]any) (map[string]string, error) {
	out := make(map[string]string)
	for key, value := range values {
		if err := fillMap(out, configuration.PathCombine(head, key), value); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func fillMap(m map[string]string, key string, value any) error {
	switch v := value.(type) {
	case nil:
		m[key] = ""
	case string:
		m[key] = v
	case map[string]any:
		for k, v := range v {
			if err := fillMap(m, configuration.PathCombine(key, k), v); err != nil {
				return err
			}
		}
	case map[any]any:
		for k, v := range v {
			if err := fillMap(m, configuration.PathCombine(key, fmt.Sprint(k)), v); err != nil {
				return err
			}
		}
	case []any:
		for i, v := range v {
			if err := fillMap(m, configuration.PathCombine(key, strconv.Itoa(i)), v); err != nil {
				return err
			}
		}
	case float64:
		n := int64(v)
		if v == float64(n) {
			m[key] = strconv.FormatInt(n, 10)
			return nil
		}
		m[key] = strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		m[key] = strconv.Itoa(v)
	case int64:
		m[key] = strconv.FormatInt(v, 10)
	case uint64:
		m[key] = strconv.FormatUint(v, 10)
	case bool:
		m[key] = strconv.FormatBool(v)
	case time.Time:
		m[key] = v.Format(time.RFC3339)
	default:
		return fmt.Errorf("invalid type: %T => %v", v, v)
	}
	return nil
}
