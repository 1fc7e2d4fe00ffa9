//go:build tinygo

package naming

// TinyGo does not keep closure symbols, runtime.FuncForPC cannot name them.
func defaultInspector() Inspector {
	return StaticInspector{}
}
