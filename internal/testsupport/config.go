package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"slipstats/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.ReplayDir = filepath.Join(base, "replays")
	cfgVal.Paths.CacheDir = filepath.Join(base, "cache")
	cfgVal.Paths.LogDir = ""
	cfgVal.Scan.Workers = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	if err := os.MkdirAll(cfgVal.Paths.ReplayDir, 0o755); err != nil {
		t.Fatalf("mkdir replay dir: %v", err)
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithCache toggles the decode cache.
func WithCache(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Scan.CacheEnabled = enabled
	}
}

// WithStubDecoder writes a stand-in for the slp tool that prints the replay
// file's contents, and points the config at it. Replays written with
// WriteReplay are therefore "decoded" to exactly the dump they contain, and
// any file holding invalid JSON fails to decode.
func WithStubDecoder() ConfigOption {
	return func(b *configBuilder) {
		if runtime.GOOS == "windows" {
			b.t.Skip("stub decoder requires a POSIX shell")
		}
		binDir := filepath.Join(b.baseDir, "bin")
		if err := os.MkdirAll(binDir, 0o755); err != nil {
			b.t.Fatalf("mkdir bin dir: %v", err)
		}
		target := filepath.Join(binDir, "slp")
		script := []byte("#!/bin/sh\n# invoked as: slp -f json <file>\ncat \"$3\"\n")
		if err := os.WriteFile(target, script, 0o755); err != nil {
			b.t.Fatalf("write stub decoder: %v", err)
		}
		b.cfg.Decoder.Binary = target
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.ReplayDir)
}
