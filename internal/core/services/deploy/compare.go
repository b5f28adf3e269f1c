package deploy

import "sort"

// Equal reports whether the remote command set matches the local one. Both
// sets are sorted by name first, options included, so ordering never
// matters. The comparison is directional: every field of a local payload must
// be present and equal on the remote one, while fields only the remote side
// carries are ignored.
func Equal(local, remote []Payload) bool {
	a, b := sortedPayloads(local), sortedPayloads(remote)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !subsetEqual(map[string]any(a[i]), map[string]any(b[i])) {
			return false
		}
	}
	return true
}

// sortedPayloads returns sorted copies, the input is left untouched.
func sortedPayloads(payloads []Payload) []Payload {
	out := make([]Payload, 0, len(payloads))
	for _, p := range payloads {
		if p != nil {
			out = append(out, Payload(sortedCopy(p)))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

func sortedCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}

	nested, ok := m[keyOptions].([]any)
	if !ok {
		return out
	}
	options := make([]any, len(nested))
	for i, o := range nested {
		if child, ok := o.(map[string]any); ok {
			options[i] = sortedCopy(child)
		} else {
			options[i] = o
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return optionName(options[i]) < optionName(options[j])
	})
	out[keyOptions] = options
	return out
}

func optionName(v any) string {
	m, _ := v.(map[string]any)
	name, _ := m[keyName].(string)
	return name
}

func subsetEqual(a, b any) bool {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return false
		}
		for k, v := range av {
			other, exists := bv[k]
			if !exists || !subsetEqual(v, other) {
				return false
			}
		}
		return true
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !subsetEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case nil:
		return b == nil
	default:
		switch b.(type) {
		case map[string]any, []any:
			return false
		}
		return a == b
	}
}
