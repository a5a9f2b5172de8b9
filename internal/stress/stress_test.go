package stress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajwerner/wbtree"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func smallConfig() *Config {
	cfg := NewConfig()
	cfg.Ops = 2000
	cfg.Readers = 3
	cfg.KeySpace = 300
	cfg.BatchSize = 16
	cfg.VerifyEvery = 100
	cfg.Seed = 42
	return cfg
}

func TestRun(t *testing.T) {
	cfg := smallConfig()
	stats, err := Run(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, cfg.Ops, stats.Inserts+stats.Deletes+stats.Unions+stats.Differences)
	require.Equal(t, cfg.Ops/cfg.VerifyEvery, stats.Checks)
	require.Positive(t, stats.Inserts)
	require.Positive(t, stats.Unions)
	require.LessOrEqual(t, stats.FinalLen, cfg.KeySpace)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, smallConfig(), zaptest.NewLogger(t))
	require.Equal(t, context.Canceled, errors.Cause(err))
}

func TestRunWithoutReaders(t *testing.T) {
	cfg := smallConfig()
	cfg.Readers = 0
	stats, err := Run(context.Background(), cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Zero(t, stats.Snapshots)
}

func TestWriterIsDeterministic(t *testing.T) {
	run := func() []wbtree.Pair[int, int] {
		cfg := smallConfig()
		ref := wbtree.NewRef(wbtree.MakeOrderedMap[int, int]())
		w := newWriter(cfg, ref)
		require.NoError(t, w.run(context.Background(), zaptest.NewLogger(t)))
		return ref.Load().ToAssocList()
	}
	require.Equal(t, run(), run())
}

func TestCheckDetectsDivergence(t *testing.T) {
	cfg := smallConfig()
	ref := wbtree.NewRef(wbtree.MakeOrderedMap[int, int]().Insert(1, 1))
	w := newWriter(cfg, ref)
	require.ErrorContains(t, w.check(), "map has 1 keys, model has 0")
	w.model[1] = 2
	require.ErrorContains(t, w.check(), "key 1 maps to 1, want 2")
	w.model[1] = 1
	require.NoError(t, w.check())
	require.NoError(t, checkSnapshot(ref.Load()))
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Parse(nil))
	require.Equal(t, defaultOps, cfg.Ops)
	require.Equal(t, defaultReaders, cfg.Readers)
	require.Equal(t, defaultKeySpace, cfg.KeySpace)
	require.Equal(t, int64(defaultSeed), cfg.Seed)
	require.Equal(t, defaultLogFormat, cfg.Log.Format)
	require.Equal(t, defaultLogLevel, cfg.Log.Level)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
ops = 50
readers = 0
key-space = 10

[log]
level = "debug"
`), 0o600))

	cfg := NewConfig()
	require.NoError(t, cfg.Parse([]string{"--config", path, "--key-space", "20"}))
	require.Equal(t, 50, cfg.Ops)
	require.Equal(t, 0, cfg.Readers)
	require.Equal(t, 20, cfg.KeySpace)
	require.Equal(t, defaultBatchSize, cfg.BatchSize)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("opz = 1\n"), 0o600))
	require.ErrorContains(t, NewConfig().Parse([]string{"--config", path}), "unknown keys")

	require.ErrorContains(t, NewConfig().Parse([]string{"--ops=-1"}), "ops must not be negative")
	require.ErrorContains(t, NewConfig().Parse([]string{"extra"}), "invalid flag")
	require.Error(t, NewConfig().Parse([]string{"--no-such-flag"}))
}
