package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"slipstats/internal/config"
	"slipstats/internal/melee"
	"slipstats/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	replayDir  string
}

var (
	me       = testsupport.Player{Code: "ABC#123", Name: "abc"}
	rival    = testsupport.Player{Code: "XYZ#999", Name: "xyz", Character: melee.Sheik}
	stranger = testsupport.Player{Code: "QRS#555", Name: "qrs", Character: melee.Peach}
)

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	for _, key := range []string{"SLIPSTATS_CODE", "SLIPSTATS_NICKNAME", "SLIPSTATS_REPLAY_DIR"} {
		t.Setenv(key, "")
	}
	base := t.TempDir()
	t.Setenv("HOME", base)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "xdg-cache"))

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithStubDecoder()}, opts...)...)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, replayDir: cfg.Paths.ReplayDir}
}

func (e *cliTestEnv) win(t *testing.T, name string, winner testsupport.Player, loser testsupport.Player) string {
	t.Helper()
	return testsupport.WriteReplay(t, e.replayDir, name, testsupport.Dump(melee.Battlefield, winner, &loser))
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
