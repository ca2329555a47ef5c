package skiplist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skiplist.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "max_level: 16\nprobability: 0.25\nseed: 42\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.MaxLevel)
	assert.Equal(t, 0.25, cfg.Probability)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoadConfigDefaultsForMissingFields(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "max_level: 8\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.MaxLevel)
	assert.Equal(t, DefaultConfig().Probability, cfg.Probability)
	assert.Zero(t, cfg.Seed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()
	path := writeConfigFile(t, "max_level: [not a number\n")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	t.Parallel()
	for _, content := range []string{
		"max_level: 0\n",
		"max_level: 65\n",
		"probability: 0\n",
		"probability: 1\n",
	} {
		path := writeConfigFile(t, content)
		_, err := LoadConfig(path)
		assert.Error(t, err, "content %q", content)
	}
}

func TestWithConfig(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.MaxLevel = 12
	cfg.Probability = 0.25

	list, err := New[int, int](WithConfig(cfg), WithProbability(0.75))
	require.NoError(t, err)
	assert.Equal(t, 12, list.cfg.MaxLevel)
	assert.Equal(t, 0.75, list.cfg.Probability, "later options override")
}

func TestWithConfigKeepsInjectedSource(t *testing.T) {
	t.Parallel()
	src := &stubSource{values: []uint64{heightWord(4)}}

	list, err := New[int, int](WithRandomSource(src), WithConfig(DefaultConfig()))
	require.NoError(t, err)
	require.NoError(t, list.Put(1, 1))
	assert.Equal(t, 4, list.level)
}
