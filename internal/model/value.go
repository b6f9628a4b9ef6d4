/*
Copyright © 2025 Provar Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueKind discriminates the shapes a parameter value can take
type ValueKind int

const (
	// StringKind is a plain string value
	StringKind ValueKind = iota

	// NumberKind is a numeric value
	NumberKind

	// MapKind is a nested map of string keys to string values
	MapKind
)

// String returns the kind name as it appears in configuration schemas
func (k ValueKind) String() string {
	switch k {
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case MapKind:
		return "map"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is a tagged union holding one parameter value: a string, a number,
// or a nested map of strings. Exactly one branch is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	str    string
	num    float64
	nested map[string]string
}

// StringValue creates a string-kinded value
func StringValue(s string) Value {
	return Value{Kind: StringKind, str: s}
}

// NumberValue creates a number-kinded value
func NumberValue(n float64) Value {
	return Value{Kind: NumberKind, num: n}
}

// MapValue creates a map-kinded value, copying the supplied map so the
// value cannot be mutated through the original reference
func MapValue(m map[string]string) Value {
	nested := make(map[string]string, len(m))
	for k, v := range m {
		nested[k] = v
	}
	return Value{Kind: MapKind, nested: nested}
}

// StringVal returns the string branch of the value
func (v Value) StringVal() string {
	return v.str
}

// NumberVal returns the numeric branch of the value
func (v Value) NumberVal() float64 {
	return v.num
}

// MapVal returns a copy of the nested map branch of the value
func (v Value) MapVal() map[string]string {
	if v.nested == nil {
		return nil
	}
	m := make(map[string]string, len(v.nested))
	for k, val := range v.nested {
		m[k] = val
	}
	return m
}

// Render returns the display form of the value for terminal output
func (v Value) Render() string {
	switch v.Kind {
	case StringKind:
		return v.str
	case NumberKind:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case MapKind:
		keys := make([]string, 0, len(v.nested))
		for k := range v.nested {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = fmt.Sprintf("%s=%s", k, v.nested[k])
		}
		return "{" + strings.Join(pairs, ", ") + "}"
	default:
		return ""
	}
}

// Data returns the value in the form expected by template rendering:
// string, float64, or map[string]string
func (v Value) Data() interface{} {
	switch v.Kind {
	case StringKind:
		return v.str
	case NumberKind:
		return v.num
	case MapKind:
		return v.MapVal()
	default:
		return nil
	}
}

// Equal reports whether two values have the same kind and contents
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case StringKind:
		return v.str == other.str
	case NumberKind:
		return v.num == other.num
	case MapKind:
		if len(v.nested) != len(other.nested) {
			return false
		}
		for k, val := range v.nested {
			if otherVal, ok := other.nested[k]; !ok || otherVal != val {
				return false
			}
		}
		return true
	default:
		return false
	}
}
