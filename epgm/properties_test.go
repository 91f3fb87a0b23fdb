// SPDX-License-Identifier: MIT

package epgm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/epgm"
)

func TestProperties_SupportedTypes(t *testing.T) {
	p := epgm.NewProperties()
	values := map[string]any{
		"bool":    true,
		"int32":   int32(23),
		"int64":   int64(42),
		"float32": float32(13.37),
		"float64": 3.14,
		"string":  "value",
	}
	for k, v := range values {
		require.NoError(t, p.Set(k, v), k)
	}
	require.Equal(t, len(values), p.Len())
	for k, v := range values {
		got, ok := p.Get(k)
		require.True(t, ok, k)
		assert.Equal(t, v, got, k)
	}
}

func TestProperties_RejectsUnsupported(t *testing.T) {
	p := epgm.NewProperties()
	for _, v := range []any{[]string{}, map[string]any{}, 7, nil, struct{}{}} {
		err := p.Set("k", v)
		require.Error(t, err)
		require.True(t, errors.Is(err, epgm.ErrInvalidPropertyType), "%T", v)
	}
	require.Equal(t, 0, p.Len())
	require.True(t, errors.Is(p.Set("", "x"), epgm.ErrEmptyPropertyKey))
}

func TestProperties_OrderAndReplace(t *testing.T) {
	p := epgm.PropertiesOf("b", int64(1), "a", "x")
	require.NoError(t, p.Set("b", int64(2)))
	require.Equal(t, []string{"b", "a"}, p.Keys())

	v, ok := p.Get("b")
	require.True(t, ok)
	require.Equal(t, int64(2), v)

	require.True(t, p.Remove("b"))
	require.False(t, p.Remove("b"))
	require.Equal(t, []string{"a"}, p.Keys())
}

func TestProperties_EqualIgnoresOrderButNotType(t *testing.T) {
	a := epgm.PropertiesOf("x", int64(1), "y", "s")
	b := epgm.PropertiesOf("y", "s", "x", int64(1))
	c := epgm.PropertiesOf("y", "s", "x", int32(1))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, a.String(), b.String())
}

func TestProperties_NilSafeReads(t *testing.T) {
	var p *epgm.Properties
	require.Equal(t, 0, p.Len())
	_, ok := p.Get("k")
	require.False(t, ok)
	require.Nil(t, p.Keys())
	require.Equal(t, 0, p.Clone().Len())
	_, ok = p.Float64("k")
	require.False(t, ok)
}
