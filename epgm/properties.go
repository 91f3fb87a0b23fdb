// SPDX-License-Identifier: MIT
//
// File: properties.go
// Role: Ordered, typed property sets shared by vertices, edges and graph heads.
// Policy:
//   - Only scalar values are admitted: bool, int32, int64, float32, float64, string.
//   - Set validates before mutating; a rejected value leaves the set unchanged.

package epgm

import (
	"fmt"
	"sort"
	"strings"
)

// Property is one key→value entry.
type Property struct {
	Key   string
	Value any
}

// Properties is an insertion-ordered property set.
// The zero value is an empty, usable set.
type Properties struct {
	entries []Property
}

// NewProperties returns an empty property set.
func NewProperties() *Properties { return &Properties{} }

// PropertiesOf builds a set from alternating key, value arguments.
// It panics on an odd argument count, a non-string key or an invalid value,
// and is meant for literals in tests and fixtures.
func PropertiesOf(kv ...any) *Properties {
	if len(kv)%2 != 0 {
		panic("epgm: PropertiesOf needs key/value pairs")
	}
	p := NewProperties()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("epgm: PropertiesOf key %v is not a string", kv[i]))
		}
		if err := p.Set(key, kv[i+1]); err != nil {
			panic(err)
		}
	}
	return p
}

// ValidateValue returns ErrInvalidPropertyType unless v has a supported type.
func ValidateValue(v any) error {
	switch v.(type) {
	case bool, int32, int64, float32, float64, string:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrInvalidPropertyType, v)
	}
}

// Set stores value under key, replacing an existing entry in place.
//
// Errors:
//   - ErrEmptyPropertyKey if key == "".
//   - ErrInvalidPropertyType if value is not a supported scalar.
func (p *Properties) Set(key string, value any) error {
	if key == "" {
		return ErrEmptyPropertyKey
	}
	if err := ValidateValue(value); err != nil {
		return fmt.Errorf("property %q: %w", key, err)
	}
	for i := range p.entries {
		if p.entries[i].Key == key {
			p.entries[i].Value = value
			return nil
		}
	}
	p.entries = append(p.entries, Property{Key: key, Value: value})
	return nil
}

// Get returns the value stored under key.
func (p *Properties) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	for _, e := range p.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Float64 returns the value under key if it is a float64.
func (p *Properties) Float64(key string) (float64, bool) {
	v, ok := p.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// Remove deletes key and reports whether it was present.
func (p *Properties) Remove(key string) bool {
	for i, e := range p.entries {
		if e.Key == key {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (p *Properties) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Keys returns the keys in insertion order.
func (p *Properties) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the entries in insertion order.
func (p *Properties) Entries() []Property {
	if p == nil {
		return nil
	}
	out := make([]Property, len(p.entries))
	copy(out, p.entries)
	return out
}

// Clone returns an independent copy; cloning nil yields an empty set.
func (p *Properties) Clone() *Properties {
	c := NewProperties()
	if p != nil {
		c.entries = append(c.entries, p.entries...)
	}
	return c
}

// Equal compares both sets as unordered maps with type-sensitive values,
// so int32(1) and int64(1) differ.
func (p *Properties) Equal(other *Properties) bool {
	if p.Len() != other.Len() {
		return false
	}
	for _, e := range p.Entries() {
		v, ok := other.Get(e.Key)
		if !ok || v != e.Value {
			return false
		}
	}
	return true
}

// String renders the set with sorted keys, e.g. {a:int64(1),b:string(x)}.
func (p *Properties) String() string {
	entries := p.Entries()
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s:%T(%v)", e.Key, e.Value, e.Value)
	}
	sb.WriteByte('}')
	return sb.String()
}
