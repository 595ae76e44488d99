package directions

// objectField returns m[key] when it is a JSON object.
func objectField(m map[string]any, key string) (map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	obj, ok := m[key].(map[string]any)
	return obj, ok && obj != nil
}

// stringField returns m[key] when it is a non-empty string.
func stringField(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	s, ok := m[key].(string)
	return s, ok && s != ""
}

// firstString resolves a field that may appear under several names,
// taking the first non-empty string in key order, else fallback.
func firstString(m map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := stringField(m, k); ok {
			return s
		}
	}
	return fallback
}

// objectList returns the elements of m[key] when it is a JSON array.
// Elements that are not objects become empty objects.
func objectList(m map[string]any, key string) ([]map[string]any, bool) {
	if m == nil {
		return nil, false
	}
	var arr []any
	switch v := m[key].(type) {
	case []any:
		arr = v
	case []map[string]any:
		return v, true
	default:
		return nil, false
	}
	out := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		obj, _ := el.(map[string]any)
		if obj == nil {
			obj = map[string]any{}
		}
		out = append(out, obj)
	}
	return out, true
}
