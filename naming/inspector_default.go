//go:build !tinygo

package naming

func defaultInspector() Inspector {
	return RuntimeInspector{}
}
