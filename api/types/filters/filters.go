// Package filters encodes the filter arguments accepted by the Docker API's
// list endpoints (containers, images, volumes).
//
// On the wire a filter set is a JSON object mapping each filter key to the
// set of values it matches, for example:
//
//	{"label": {"env=prod": true, "owner": true}}
package filters

import "encoding/json"

// Args holds a set of filter arguments. Use NewArgs to construct one; the
// zero value is not usable.
type Args struct {
	fields map[string]map[string]bool
}

// KeyValuePair is a single filter argument.
type KeyValuePair struct {
	Key   string
	Value string
}

// Arg creates a KeyValuePair for use with NewArgs.
func Arg(key, value string) KeyValuePair {
	return KeyValuePair{Key: key, Value: value}
}

// NewArgs returns an Args populated with the given filters.
func NewArgs(initial ...KeyValuePair) Args {
	args := Args{fields: map[string]map[string]bool{}}
	for _, arg := range initial {
		args.Add(arg.Key, arg.Value)
	}
	return args
}

// Add appends value to the set of values filtered under key.
func (a Args) Add(key, value string) {
	if a.fields[key] == nil {
		a.fields[key] = map[string]bool{}
	}
	a.fields[key][value] = true
}

// Get returns the values filtered under key, in no particular order.
func (a Args) Get(key string) []string {
	values := a.fields[key]
	if values == nil {
		return nil
	}
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	return out
}

// Contains reports whether any values are filtered under key.
func (a Args) Contains(key string) bool {
	return len(a.fields[key]) > 0
}

// Len returns the number of keys carrying at least one value.
func (a Args) Len() int {
	return len(a.fields)
}

// MarshalJSON produces the engine's key-to-value-set wire shape.
func (a Args) MarshalJSON() ([]byte, error) {
	if len(a.fields) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(a.fields)
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON.
func (a *Args) UnmarshalJSON(raw []byte) error {
	return json.Unmarshal(raw, &a.fields)
}

// ToJSON encodes a for a filters query parameter. An empty Args encodes to
// the empty string so callers can omit the parameter entirely.
func ToJSON(a Args) (string, error) {
	if a.Len() == 0 {
		return "", nil
	}
	buf, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
