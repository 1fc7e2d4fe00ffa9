package configuration

import (
	"strings"
)

const KeyDelimiter = ":"

func PathCombine(list ...string) string {
	parts := make([]string, 0, len(list))
	for _, p := range list {
		if len(p) > 0 {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, KeyDelimiter)
}

func keySegment(key string, prefixLength int) string {
	if prefixLength >= len(key) {
		return ""
	}
	idx := strings.IndexByte(key[prefixLength:], ':')
	if idx == -1 {
		return key[prefixLength:]
	}

	return key[prefixLength : prefixLength+idx]
}
