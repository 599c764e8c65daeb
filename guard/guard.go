package guard

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether v is any Go numeric value.
func IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether v is an integral numeric value. Floats count
// when they carry a whole value, matching how numbers arrive after a trip
// through generic JSON decoding.
func IsInteger(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float32:
		return n == float32(int64(n))
	case float64:
		return n == float64(int64(n))
	default:
		return false
	}
}

// IsObject reports whether v is a keyed collection: a map with string keys
// as produced by generic JSON decoding.
func IsObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}
