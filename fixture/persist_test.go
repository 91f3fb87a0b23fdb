// SPDX-License-Identifier: MIT

package fixture_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/fixture"
	"github.com/katalvlaran/simlath/storage"
	"github.com/katalvlaran/simlath/storage/boltstore"
)

func TestLoader_WriteTo(t *testing.T) {
	l, err := fixture.Parse([]byte(social))
	require.NoError(t, err)

	s, err := boltstore.Open(filepath.Join(t.TempDir(), "fixture.db"), boltstore.WithAutoFlush(false))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, l.WriteTo(s))
	require.Zero(t, s.Pending())

	for _, name := range []string{"g0", "g1"} {
		want, err := l.Graph(name)
		require.NoError(t, err)

		got, err := storage.LoadLogicalGraph(s, want.Head().ID)
		require.NoError(t, err)
		require.True(t, want.EqualsByElementIDs(got), name)
		require.True(t, want.EqualsByElementData(got), name)
		require.Equal(t, want.Head().Label, got.Head().Label)
	}

	all, err := storage.LoadGraph(s)
	require.NoError(t, err)
	require.True(t, l.Database().EqualsByElementIDs(all))

	alice, err := l.Vertex("alice")
	require.NoError(t, err)
	stored, err := s.ReadVertex(alice.ID)
	require.NoError(t, err)
	require.True(t, alice.Graphs.Equal(stored.Graphs))
	require.True(t, alice.Properties.Equal(stored.Properties))
}
