package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/require"

	"github.com/vxmppz/taquin/internal/config"
)

func TestDefaults(t *testing.T) {
	d := config.Defaults()
	require.Equal(t, "pdb", d.PDBPrefix)
	require.Equal(t, 512*datasize.MB, d.MaxPDBBytes)
	require.Equal(t, 0, d.WorkerCount)
	require.Equal(t, "info", d.LogLevel)
}

func TestWorkersResolvesZeroToNumCPU(t *testing.T) {
	d := config.Defaults()
	require.Equal(t, runtime.NumCPU(), d.Workers())

	d.WorkerCount = 3
	require.Equal(t, 3, d.Workers())
}

func TestLoadOverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`pdb_prefix = "/var/lib/taquin/pdb"
worker_count = 2
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/taquin/pdb", cfg.PDBPrefix)
	require.Equal(t, 2, cfg.WorkerCount)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
