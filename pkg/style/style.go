// Package style implements the key/value style records merged down a text
// tree.
//
// A [Style] is opaque to this module: keys and values are whatever the host
// framework uses for text styling ("color", "fontSize", ...). The only
// operation that matters is merging, which is last-write-wins per key: the
// child value replaces the parent value for any key the child sets, and every
// other parent key is inherited unchanged.
//
//	base := style.Style{"color": "black", "fontSize": 14}
//	merged := style.Merge(base, style.Style{"color": "red"})
//	// merged == {"color": "red", "fontSize": 14}
package style

import (
	"maps"
	"reflect"
	"slices"
)

// Style is a mergeable key/value styling record. A nil Style is empty.
//
// Styles are treated as immutable once handed to this package; Merge never
// mutates its inputs and may return one of them unchanged.
type Style map[string]any

// Merge combines parent and child with child values taking precedence.
//
// When child is empty, parent is returned as-is (and vice versa), so merging
// an empty override preserves identity as well as equality.
func Merge(parent, child Style) Style {
	if len(child) == 0 {
		return parent
	}
	if len(parent) == 0 {
		return child
	}
	merged := make(Style, len(parent)+len(child))
	maps.Copy(merged, parent)
	maps.Copy(merged, child)
	return merged
}

// Flatten merges styles left to right, like a style array where later entries
// win. Nil entries are skipped.
func Flatten(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = Merge(out, s)
	}
	return out
}

// Equal reports whether a and b hold the same keys with deeply equal values.
// Nil and empty styles are equal.
func Equal(a, b Style) bool {
	if len(a) != len(b) {
		return false
	}
	if Same(a, b) {
		return true
	}
	return maps.EqualFunc(a, b, func(x, y any) bool {
		return reflect.DeepEqual(x, y)
	})
}

// Same reports whether a and b are the same map (or both empty).
func Same(a, b Style) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return reflect.ValueOf(a).UnsafePointer() == reflect.ValueOf(b).UnsafePointer()
}

// With returns a copy of s with key set to value.
func (s Style) With(key string, value any) Style {
	out := make(Style, len(s)+1)
	maps.Copy(out, s)
	out[key] = value
	return out
}

// Keys returns the style keys in sorted order.
func (s Style) Keys() []string {
	return slices.Sorted(maps.Keys(s))
}
