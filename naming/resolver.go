package naming

import "fmt"

// Resolver 将 NameHint 解析为 logger 名称
type Resolver struct {
	inspector Inspector
}

func NewResolver(inspector Inspector) *Resolver {
	if inspector == nil {
		inspector = DefaultInspector()
	}
	return &Resolver{inspector: inspector}
}

var defaultResolver = NewResolver(nil)

func DefaultResolver() *Resolver {
	return defaultResolver
}

// Resolve 使用默认 Resolver 解析
func Resolve(hint NameHint) (string, error) {
	return defaultResolver.Resolve(hint)
}

// ResolveAny 先通过 HintOf 转换参数再解析
func ResolveAny(v any) (string, error) {
	return defaultResolver.ResolveAny(v)
}

func (ss *Resolver) Resolve(hint NameHint) (string, error) {
	switch h := hint.(type) {
	case ExplicitName:
		return string(h), nil
	case TypeHint:
		name, ok := ss.inspector.SimpleName(h.Type)
		if !ok {
			return "", &UnnamedTypeError{Type: h.Type}
		}
		return name, nil
	case CallbackHint:
		return ss.inspector.DeclaringContextName(h.Func)
	case nil:
		return "", &UnresolvableHintError{TypeName: "<nil>"}
	default:
		return "", &UnresolvableHintError{TypeName: fmt.Sprintf("%T", hint)}
	}
}

func (ss *Resolver) ResolveAny(v any) (string, error) {
	hint, err := HintOf(v)
	if err != nil {
		return "", err
	}
	return ss.Resolve(hint)
}
