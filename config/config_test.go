// SPDX-License-Identifier: MIT

package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/config"
	"github.com/katalvlaran/simlath/jaccard"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simlath.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	opts, err := cfg.JaccardOptions()
	require.NoError(t, err)
	j, err := jaccard.New(opts...)
	require.NoError(t, err)

	want := jaccard.DefaultOptions()
	got := j.Options()
	assert.Equal(t, want.EdgeLabel, got.EdgeLabel)
	assert.Equal(t, want.Neighborhood, got.Neighborhood)
	assert.Equal(t, want.Denominator, got.Denominator)
	assert.Equal(t, want.GroupSize, got.GroupSize)
	assert.Equal(t, want.Parallelism, got.Parallelism)
	assert.Equal(t, want.OnDegenerate, got.OnDegenerate)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
store:
  path: /tmp/g.db
  auto_flush: false
  cache_size: 0
  open_timeout: 250ms
jaccard:
  edge_label: similar
  neighborhood: in
  denominator: max
  group_size: 8
  parallelism: 2
  on_degenerate: skip
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/g.db", cfg.Store.Path)
	assert.False(t, cfg.Store.AutoFlush)
	assert.Equal(t, 0, cfg.Store.CacheSize)
	assert.Equal(t, 250*time.Millisecond, cfg.Store.OpenTimeout)

	opts, err := cfg.JaccardOptions()
	require.NoError(t, err)
	j, err := jaccard.New(opts...)
	require.NoError(t, err)
	o := j.Options()
	assert.Equal(t, "similar", o.EdgeLabel)
	assert.Equal(t, jaccard.NeighborhoodIn, o.Neighborhood)
	assert.Equal(t, jaccard.DenominatorMax, o.Denominator)
	assert.Equal(t, 8, o.GroupSize)
	assert.Equal(t, 2, o.Parallelism)
	assert.Equal(t, jaccard.DegenerateSkip, o.OnDegenerate)

	l, err := cfg.NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, l.Formatter)

	assert.Len(t, cfg.StoreOptions(), 3)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := writeFile(t, "jaccard:\n  group_size: 3\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Jaccard.GroupSize)
	assert.Equal(t, jaccard.DefaultEdgeLabel, cfg.Jaccard.EdgeLabel)
	assert.True(t, cfg.Store.AutoFlush)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "jaccard:\n  group_size: 3\n")
	t.Setenv("SIMLATH_JACCARD_GROUP_SIZE", "5")
	t.Setenv("SIMLATH_JACCARD_DENOMINATOR", "MAX")
	t.Setenv("SIMLATH_STORE_PATH", "env.db")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Jaccard.GroupSize)
	assert.Equal(t, "MAX", cfg.Jaccard.Denominator)
	assert.Equal(t, "env.db", cfg.Store.Path)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "jaccard: [unclosed"))
	assert.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
		check  func(c *config.Config) error
	}{
		{"neighborhood", func(c *config.Config) { c.Jaccard.Neighborhood = "BOTH" }, jaccardErr},
		{"denominator", func(c *config.Config) { c.Jaccard.Denominator = "MIN" }, jaccardErr},
		{"on_degenerate", func(c *config.Config) { c.Jaccard.OnDegenerate = "ignore" }, jaccardErr},
		{"log level", func(c *config.Config) { c.Log.Level = "loud" }, loggerErr},
		{"log format", func(c *config.Config) { c.Log.Format = "xml" }, loggerErr},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			c := config.Default()
			tc.mutate(c)
			err := tc.check(c)
			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestNumericRangeSurfacesFromOperator(t *testing.T) {
	c := config.Default()
	c.Jaccard.GroupSize = 0
	opts, err := c.JaccardOptions()
	require.NoError(t, err)
	_, err = jaccard.New(opts...)
	assert.ErrorIs(t, err, jaccard.ErrOptionViolation)
}

func jaccardErr(c *config.Config) error {
	_, err := c.JaccardOptions()
	return err
}

func loggerErr(c *config.Config) error {
	_, err := c.NewLogger()
	return err
}
