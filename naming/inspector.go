package naming

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Inspector 提供与平台相关的反射能力
type Inspector interface {
	// SimpleName 返回类型的非限定名称，没有名称时返回 false
	SimpleName(ty reflect.Type) (string, bool)
	// DeclaringContextName 返回无参函数声明位置的限定名称，平台不支持时返回 ErrUnsupportedPlatform
	DeclaringContextName(fn any) (string, error)
}

var _ Inspector = RuntimeInspector{}

// RuntimeInspector 通过 runtime.FuncForPC 读取闭包符号
type RuntimeInspector struct{}

func (RuntimeInspector) SimpleName(ty reflect.Type) (string, bool) {
	return simpleName(ty)
}

func (RuntimeInspector) DeclaringContextName(fn any) (string, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() || rv.Type().NumIn() != 0 {
		return "", &UnresolvableHintError{TypeName: fmt.Sprintf("%T", fn)}
	}

	f := runtime.FuncForPC(rv.Pointer())
	if f == nil {
		return "", &UnresolvableHintError{TypeName: fmt.Sprintf("%T", fn)}
	}
	return TruncateSymbol(f.Name()), nil
}

var _ Inspector = StaticInspector{}

// StaticInspector 用于没有闭包符号信息的平台
type StaticInspector struct{}

func NewStaticInspector() StaticInspector {
	return StaticInspector{}
}

func (StaticInspector) SimpleName(ty reflect.Type) (string, bool) {
	return simpleName(ty)
}

func (StaticInspector) DeclaringContextName(fn any) (string, error) {
	return "", &UnsupportedHintError{Hint: CallbackHint{Func: fn}}
}

// DefaultInspector 返回当前平台的 Inspector
func DefaultInspector() Inspector {
	return defaultInspector()
}

func simpleName(ty reflect.Type) (string, bool) {
	if ty == nil {
		return "", false
	}
	for ty.Kind() == reflect.Pointer {
		ty = ty.Elem()
	}

	name := ty.Name()
	if idx := strings.IndexByte(name, '['); idx >= 0 {
		name = name[:idx]
	}
	return name, len(name) > 0
}

var packageLevelMarkers = []string{".glob.", ".init."}

// TruncateSymbol 将函数符号截断为其声明所在的类型或包，保留完整包路径：
//
//	github.com/acme/shop.(*OrderService).Start.func1 => github.com/acme/shop.OrderService
//	github.com/acme/shop.NewServer.func2.1           => github.com/acme/shop
//	github.com/acme/shop.glob..func1                 => github.com/acme/shop
//	github.com/acme/shop.(*OrderService).Start-fm    => github.com/acme/shop.OrderService
//	gopkg.in/yaml%2ev3.(*Decoder).Decode.func1       => gopkg.in/yaml.v3.Decoder
func TruncateSymbol(symbol string) string {
	symbol = strings.TrimSuffix(symbol, "-fm")

	pkg, rest := splitPackage(symbol)
	if len(rest) == 0 {
		return unescapeSymbol(symbol)
	}

	dotted := "." + rest
	for _, marker := range packageLevelMarkers {
		if strings.Contains(dotted, marker) {
			return unescapeSymbol(pkg)
		}
	}

	rest = stripTypeArguments(rest)
	closure := false
	if idx := closureIndex(rest); idx >= 0 {
		rest = rest[:idx]
		closure = true
	}
	rest = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(rest)

	parts := strings.Split(rest, ".")
	switch {
	case len(parts) >= 2:
		// 方法 => 接收者类型
		return unescapeSymbol(pkg + "." + parts[0])
	case closure:
		// 包级函数内的闭包 => 包
		return unescapeSymbol(pkg)
	default:
		return unescapeSymbol(pkg + "." + rest)
	}
}

// splitPackage 以最后一个 '/' 之后的第一个 '.' 拆分包路径与其余部分
func splitPackage(symbol string) (string, string) {
	start := strings.LastIndexByte(symbol, '/') + 1
	idx := strings.IndexByte(symbol[start:], '.')
	if idx < 0 {
		return symbol, ""
	}
	return symbol[:start+idx], symbol[start+idx+1:]
}

// closureIndex 返回第一个 ".funcN" 的位置
func closureIndex(name string) int {
	const sep = ".func"
	for from := 0; ; {
		idx := strings.Index(name[from:], sep)
		if idx < 0 {
			return -1
		}
		idx += from
		next := idx + len(sep)
		if next < len(name) && name[next] >= '0' && name[next] <= '9' {
			return idx
		}
		from = next
	}
}

func unescapeSymbol(name string) string {
	return strings.ReplaceAll(name, "%2e", ".")
}

func stripTypeArguments(name string) string {
	if strings.IndexByte(name, '[') < 0 {
		return name
	}

	sb := strings.Builder{}
	depth := 0
	for _, r := range name {
		switch {
		case r == '[':
			depth++
		case r == ']':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
