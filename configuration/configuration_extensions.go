package configuration

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

func GetBool(config IConfiguration, key string) bool {
	v, _ := TryGetBool(config, key)
	return v
}

func TryGetBool(config IConfiguration, key string) (bool, bool) {
	v, ok := config.TryGet(key)
	if !ok {
		return false, false
	}
	return strings.ToUpper(v) == "TRUE", true
}

func GetInt64(config IConfiguration, key string) int64 {
	nv, _ := TryGetInt64(config, key)
	return nv
}

func TryGetInt64(config IConfiguration, key string) (int64, bool) {
	v, ok := config.TryGet(key)
	if !ok {
		return 0, false
	}
	nv, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return nv, true
}

func TryGetUint64(config IConfiguration, key string) (uint64, bool) {
	v, ok := config.TryGet(key)
	if !ok {
		return 0, false
	}
	nv, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return nv, true
}

func TryGetFloat64(config IConfiguration, key string) (float64, bool) {
	v, ok := config.TryGet(key)
	if !ok {
		return 0, false
	}
	nv, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return nv, true
}

// Get 将 path 对应的配置节填充为 T
func Get[T any](config IConfiguration, path string) (T, error) {
	var out T
	err := Fill(config, path, &out)
	return out, err
}

// Fill 将 path 对应的配置节填充到 out 指向的值，结构体字段名可用 `snow:"..."` 指定
func Fill(config IConfiguration, path string, out any) error {
	val := reflect.ValueOf(out)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return fmt.Errorf("fill configuration %q: out must be a non-nil pointer, got %T", path, out)
	}
	return fillValue(val.Elem(), config, path)
}

// TextUnmarshaler 实现此接口的类型直接由字符串值解析，例如日志等级
type TextUnmarshaler interface {
	UnmarshalText(text []byte) error
}

var textUnmarshalerType = reflect.TypeOf((*TextUnmarshaler)(nil)).Elem()

func fillValue(val reflect.Value, config IConfiguration, key string) error {
	ty := val.Type()
	if val.CanAddr() && reflect.PointerTo(ty).Implements(textUnmarshalerType) {
		if v, ok := config.TryGet(key); ok {
			if err := val.Addr().Interface().(TextUnmarshaler).UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("configuration %q: %w", key, err)
			}
		}
		return nil
	}

	switch ty.Kind() {
	case reflect.String:
		if v, ok := config.TryGet(key); ok {
			val.SetString(v)
		}
	case reflect.Bool:
		if v, ok := TryGetBool(config, key); ok {
			val.SetBool(v)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if ty == reflect.TypeOf(time.Duration(0)) {
			if v, ok := config.TryGet(key); ok {
				d, err := time.ParseDuration(v)
				if err != nil {
					return fmt.Errorf("configuration %q: %w", key, err)
				}
				val.SetInt(int64(d))
			}
			return nil
		}
		if v, ok := TryGetInt64(config, key); ok {
			val.SetInt(v)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v, ok := TryGetUint64(config, key); ok {
			val.SetUint(v)
		}
	case reflect.Float32, reflect.Float64:
		if v, ok := TryGetFloat64(config, key); ok {
			val.SetFloat(v)
		}
	case reflect.Map:
		return fillMap(ty, val, config, key)
	case reflect.Pointer:
		pv := reflect.New(ty.Elem())
		if err := fillValue(pv.Elem(), config, key); err != nil {
			return err
		}
		val.Set(pv)
	case reflect.Slice:
		children := config.GetChildKeys(key)
		slice := reflect.MakeSlice(ty, 0, len(children))
		for i := 0; i < len(children); i++ {
			sv := reflect.New(ty.Elem()).Elem()
			if err := fillValue(sv, config, PathCombine(key, strconv.Itoa(i))); err != nil {
				return err
			}
			slice = reflect.Append(slice, sv)
		}
		val.Set(slice)
	case reflect.Struct:
		return fillStruct(ty, val, config, key)
	default:
		return fmt.Errorf("configuration %q: unsupported type %v", key, ty)
	}
	return nil
}

func fillMap(ty reflect.Type, val reflect.Value, config IConfiguration, key string) error {
	if ty.Key().Kind() != reflect.String {
		return fmt.Errorf("configuration %q: unsupported map key type %v", key, ty.Key())
	}

	children := config.GetChildKeys(key)
	if len(children) == 0 && !val.IsNil() {
		return nil
	}

	m := reflect.MakeMapWithSize(ty, len(children))
	for _, child := range children {
		k := reflect.New(ty.Key()).Elem()
		k.SetString(child)

		v := reflect.New(ty.Elem()).Elem()
		if err := fillValue(v, config, PathCombine(key, child)); err != nil {
			return err
		}

		m.SetMapIndex(k, v)
	}
	val.Set(m)
	return nil
}

func fillStruct(ty reflect.Type, val reflect.Value, config IConfiguration, key string) error {
	if ty == reflect.TypeOf(time.Time{}) {
		if v, ok := config.TryGet(key); ok {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return fmt.Errorf("configuration %q: %w", key, err)
			}
			val.Set(reflect.ValueOf(t))
		}
		return nil
	}

	for i := 0; i < ty.NumField(); i++ {
		ft := ty.Field(i)
		if !ft.IsExported() {
			continue
		}

		fName := ft.Tag.Get("snow")
		if fName == "-" {
			continue
		}
		if fName == "" {
			fName = ft.Name
		}
		if err := fillValue(val.Field(i), config, PathCombine(key, fName)); err != nil {
			return err
		}
	}
	return nil
}
