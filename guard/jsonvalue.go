package guard

// maxDepth bounds the recursive shape check so cyclic or absurdly nested
// values cannot blow the stack.
const maxDepth = 64

// IsValidJSONValue reports whether v has the shape of a decoded JSON
// value: nil, bool, string, a numeric value, []any, or map[string]any
// whose elements are themselves valid. Anything else, or nesting deeper
// than maxDepth, fails the check.
func IsValidJSONValue(v any) bool {
	return validJSONValue(v, 0)
}

func validJSONValue(v any, depth int) bool {
	if depth > maxDepth {
		return false
	}

	switch val := v.(type) {
	case nil:
		return true
	case bool, string:
		return true
	case []any:
		for _, elem := range val {
			if !validJSONValue(elem, depth+1) {
				return false
			}
		}
		return true
	case map[string]any:
		for _, elem := range val {
			if !validJSONValue(elem, depth+1) {
				return false
			}
		}
		return true
	default:
		return IsNumber(v)
	}
}
