package cloudevent

import (
	"iter"
	"maps"
	"slices"
)

// Extension is a single extension attribute.
type Extension struct {
	Key   string
	Value any
}

// Extensions is an immutable, insertion-ordered set of extension attributes.
//
// The zero value is empty and ready to use.
type Extensions struct {
	keys   []string
	values map[string]any
}

var emptyExtensions = Extensions{}

// NewExtensions creates an [Extensions] from key/value pairs in order.
//
// A repeated key keeps its first position and takes the last value.
func NewExtensions(pairs ...Extension) (Extensions, error) {
	if len(pairs) == 0 {
		return emptyExtensions, nil
	}
	ext := Extensions{
		keys:   make([]string, 0, len(pairs)),
		values: make(map[string]any, len(pairs)),
	}
	for _, pair := range pairs {
		if pair.Key == "" {
			return emptyExtensions, invalidArgument(AttrExtensions, "extension key must not be empty")
		}
		if _, ok := ext.values[pair.Key]; !ok {
			ext.keys = append(ext.keys, pair.Key)
		}
		ext.values[pair.Key] = pair.Value
	}
	return ext, nil
}

// ExtensionsFromMap snapshots m into an [Extensions], ordered by key.
//
// m must not be modified concurrently with this call.
func ExtensionsFromMap(m map[string]any) (Extensions, error) {
	pairs := make([]Extension, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, Extension{Key: key, Value: m[key]})
	}
	return NewExtensions(pairs...)
}

// Len returns the number of extension attributes.
func (e Extensions) Len() int { return len(e.keys) }

// Get returns the value of an extension attribute.
func (e Extensions) Get(key string) (any, bool) {
	value, ok := e.values[key]
	return value, ok
}

// Keys returns a copy of the extension attribute names, in order.
func (e Extensions) Keys() []string { return append([]string{}, e.keys...) }

// All iterates over extension attributes in order.
func (e Extensions) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, key := range e.keys {
			if !yield(key, e.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the extension attributes.
func (e Extensions) Map() map[string]any {
	if e.values == nil {
		return map[string]any{}
	}
	return maps.Clone(e.values)
}

func (e Extensions) with(pairs []Extension) (Extensions, error) {
	return NewExtensions(append(collect(e), pairs...)...)
}

func collect(ext Extensions) []Extension {
	pairs := make([]Extension, 0, ext.Len())
	for key, value := range ext.All() {
		pairs = append(pairs, Extension{Key: key, Value: value})
	}
	return pairs
}
