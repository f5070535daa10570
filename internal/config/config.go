// Package config loads the solver and PDB-generator settings a CLI wrapper
// or embedding service would want to override: the PDB install prefix, a
// memory budget for loaded databases, and the worker count used when
// building the standard N=4 databases in parallel.
package config

import (
	"os"
	"runtime"

	"github.com/c2h5oh/datasize"
	"github.com/pelletier/go-toml/v2"

	"github.com/vxmppz/taquin/internal/puzzleerr"
)

// Config is the solver's tunable surface. The zero value is not the
// default configuration (its PDBPrefix and LogLevel are empty); start from
// Defaults(), as Load does.
type Config struct {
	// PDBPrefix is the directory the standard N=4 pattern databases are
	// read from and written to (spec §6 install paths).
	PDBPrefix string `toml:"pdb_prefix"`

	// MaxPDBBytes is the in-memory footprint the loaded databases are
	// expected to occupy. It is advisory only: the store does not evict,
	// and neither loading nor generation checks it.
	MaxPDBBytes datasize.ByteSize `toml:"max_pdb_bytes"`

	// WorkerCount is a concurrency bound for building the three standard
	// group databases; Workers resolves 0 to runtime.NumCPU().
	// GenerateStandardPatternDatabases takes its worker count as an
	// argument and does not read Config.
	WorkerCount int `toml:"worker_count"`

	// LogLevel is passed straight to obslog.New.
	LogLevel string `toml:"log_level"`
}

// Defaults returns the configuration used when no file is supplied.
func Defaults() Config {
	return Config{
		PDBPrefix:   "pdb",
		MaxPDBBytes: 512 * datasize.MB,
		WorkerCount: 0,
		LogLevel:    "info",
	}
}

// Workers resolves WorkerCount to a concrete goroutine count.
func (c Config) Workers() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	return runtime.NumCPU()
}

// Load reads a TOML config file, overlaying it on Defaults().
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, puzzleerr.WrapIO("reading config "+path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, puzzleerr.WrapIO("parsing config "+path, err)
	}
	return cfg, nil
}
