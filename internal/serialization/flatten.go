package serialization

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// sep joins nested keys in CSV column names. Dots keep snake_case field
// names like terms_served unambiguous when rows are rebuilt.
const sep = "."

// flatten collapses a nested map into single-level dot-joined keys.
// Lists of objects become indexed columns (equipment.0.name); scalar
// lists are comma-joined into one cell.
func flatten(data map[string]any, parent string) map[string]any {
	out := make(map[string]any)

	for key, value := range data {
		full := key
		if parent != "" {
			full = parent + sep + key
		}

		switch v := value.(type) {
		case map[string]any:
			for k, nested := range flatten(v, full) {
				out[k] = nested
			}
		case []any:
			if len(v) > 0 && isMap(v[0]) {
				for i, item := range v {
					indexed := full + sep + strconv.Itoa(i)
					if m, ok := item.(map[string]any); ok {
						for k, nested := range flatten(m, indexed) {
							out[k] = nested
						}
					} else {
						out[indexed] = item
					}
				}
			} else {
				parts := make([]string, len(v))
				for i, item := range v {
					parts[i] = fmt.Sprintf("%v", item)
				}
				out[full] = strings.Join(parts, ", ")
			}
		default:
			out[full] = value
		}
	}

	return out
}

// unflatten rebuilds the nested structure a flatten produced. Numeric
// path segments become list indices.
func unflatten(flat map[string]string) map[string]any {
	result := make(map[string]any)

	// Deterministic order keeps list growth predictable
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		assign(result, strings.Split(key, sep), flat[key])
	}

	return result
}

func assign(target map[string]any, parts []string, value string) {
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		last := i == len(parts)-1

		nextIsIndex := !last && isIndex(parts[i+1])
		if nextIsIndex {
			idx, _ := strconv.Atoi(parts[i+1])

			list, _ := target[part].([]any)
			for len(list) <= idx {
				list = append(list, map[string]any{})
			}
			target[part] = list

			// Scalar element in an indexed list
			if i+1 == len(parts)-1 {
				list[idx] = value
				return
			}

			next, ok := list[idx].(map[string]any)
			if !ok {
				next = map[string]any{}
				list[idx] = next
			}
			target = next
			i++ // consume the index segment
			continue
		}

		if last {
			target[part] = value
			return
		}

		next, ok := target[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			target[part] = next
		}
		target = next
	}
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
