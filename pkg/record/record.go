// Package record reads fields out of fluent-bit records.
package record

import (
	"fmt"
	"sort"
	"strings"
)

// Field returns the value stored under key as a string. Keys and values
// arrive from msgpack as either strings or byte slices.
func Field(rec map[interface{}]interface{}, key string) (string, bool) {
	for k, v := range rec {
		if str(k) != key {
			continue
		}
		if v == nil {
			return "", false
		}
		return str(v), true
	}
	return "", false
}

func str(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

// Flatten renders rec as space separated key=value pairs ordered by key.
func Flatten(rec map[interface{}]interface{}) string {
	keys := make([]string, 0, len(rec))
	values := make(map[string]string, len(rec))
	for k, v := range rec {
		key := str(k)
		keys = append(keys, key)
		values[key] = str(v)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + values[k]
	}
	return strings.Join(parts, " ")
}
