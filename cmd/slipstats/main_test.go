package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slipstats/internal/melee"
	"slipstats/internal/testsupport"
)

func seedCharacterCorpus(t *testing.T, env *cliTestEnv) {
	t.Helper()
	fox := me
	fox.Character = melee.Fox
	falco := me
	falco.Character = melee.Falco
	marth := me
	marth.Character = melee.Marth

	env.win(t, "set1/game1.slp", fox, rival)
	env.win(t, "set1/game2.slp", fox, rival)
	env.win(t, "set2/Game3.SLP", fox, rival)
	env.win(t, "set2/game4.slp", falco, rival)
	env.win(t, "game5.slp", marth, rival)
	// A loss and an unrelated match contribute nothing.
	env.win(t, "game6.slp", rival, fox)
	env.win(t, "game7.slp", stranger, rival)
	testsupport.WriteReplay(t, env.replayDir, "notes.txt", []byte("not a replay"))
}

func TestCharactersPlainOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCharacterCorpus(t, env)

	out, _, err := runCLI(t, []string{"characters", "--code", "abc#123"}, env.configPath)
	if err != nil {
		t.Fatalf("characters: %v", err)
	}
	if got, want := out, "Fox: 3\nFalco: 1\nMarth: 1\n"; got != want {
		t.Fatalf("characters output = %q, want %q", got, want)
	}
}

func TestCharactersSortAndJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCharacterCorpus(t, env)

	out, _, err := runCLI(t, []string{"characters", "--code", "ABC#123", "--sort", "alpha-desc", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("characters --json: %v", err)
	}
	var result struct {
		Query      string `json:"query"`
		Ordering   string `json:"ordering"`
		Total      int    `json:"total"`
		Characters []struct {
			Character string `json:"character"`
			Wins      int    `json:"wins"`
		} `json:"characters"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode json output: %v\n%s", err, out)
	}
	if result.Ordering != "alpha-desc" || result.Total != 5 {
		t.Fatalf("unexpected header: %+v", result)
	}
	var names []string
	for _, c := range result.Characters {
		names = append(names, c.Character)
	}
	if got, want := strings.Join(names, ","), "Marth,Fox,Falco"; got != want {
		t.Fatalf("order = %s, want %s", got, want)
	}
}

func TestCharactersRejectsUnknownSort(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"characters", "--code", "ABC#123", "--sort", "random"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown ordering")
	}
}

func TestWinsByCodeAndNickname(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCharacterCorpus(t, env)

	out, _, err := runCLI(t, []string{"wins", "--code", "abc#123"}, env.configPath)
	if err != nil {
		t.Fatalf("wins --code: %v", err)
	}
	requireContains(t, out, "Total wins for code=abc#123: 5 (of 7 matches)")

	out, _, err = runCLI(t, []string{"wins", "--nickname", "ＡＢＣ"}, env.configPath)
	if err != nil {
		t.Fatalf("wins --nickname: %v", err)
	}
	requireContains(t, out, ": 5 (of 7 matches)")

	out, _, err = runCLI(t, []string{"wins", "--nickname", "xyz"}, env.configPath)
	if err != nil {
		t.Fatalf("wins --nickname xyz: %v", err)
	}
	requireContains(t, out, ": 1 (of 7 matches)")

	// A code query never matches against display names.
	out, _, err = runCLI(t, []string{"wins", "--code", "abc"}, env.configPath)
	if err != nil {
		t.Fatalf("wins --code abc: %v", err)
	}
	requireContains(t, out, ": 0 (of 7 matches)")
}

func TestWinsFallsBackToConfiguredIdentity(t *testing.T) {
	env := setupCLITestEnv(t)
	seedCharacterCorpus(t, env)

	if _, _, err := runCLI(t, []string{"wins"}, env.configPath); err == nil {
		t.Fatal("expected error without any identity")
	}

	env.cfg.Identity.Code = "ABC#123"
	env.cfg.Identity.Nickname = "xyz"
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"wins", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("wins: %v", err)
	}
	var result winsResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if result.Wins != 5 || result.Query != "code=ABC#123" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestWinsRejectsBothIdentityFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"wins", "--code", "A#1", "--nickname", "a"}, env.configPath); err == nil {
		t.Fatal("expected error when both --code and --nickname are set")
	}
}

func TestScanReportsCorruptFile(t *testing.T) {
	env := setupCLITestEnv(t)
	env.win(t, "good.slp", me, rival)
	bad := testsupport.WriteReplay(t, env.replayDir, "bad.slp", []byte("\x00\x01garbage"))

	out, _, err := runCLI(t, []string{"scan"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Matches analyzed: 1")
	requireContains(t, out, "Skipped files: 1")
	requireContains(t, out, bad)
}

func TestScanDirectoryArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	other := filepath.Join(testsupport.BaseDir(env.cfg), "elsewhere")
	testsupport.WriteReplay(t, other, "a.slp", testsupport.Dump(melee.YoshisStory, me, &rival))
	testsupport.WriteReplay(t, other, "b.slp", testsupport.Dump(melee.YoshisStory, rival, &me))

	out, _, err := runCLI(t, []string{"scan", other, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	var summary scanSummary
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if summary.Matches != 2 || summary.Skipped != 0 || summary.Root != other {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestScanMissingRoot(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(testsupport.BaseDir(env.cfg), "missing")

	out, _, err := runCLI(t, []string{"scan", missing}, env.configPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	requireContains(t, out, "Matches analyzed: 0")
	requireContains(t, out, missing)
}

func TestInspect(t *testing.T) {
	env := setupCLITestEnv(t)
	fox := me
	fox.Character = melee.Fox
	path := testsupport.WriteReplay(t, env.replayDir, "single.slp", testsupport.Dump(melee.FinalDestination, fox, &rival))

	out, _, err := runCLI(t, []string{"inspect", path}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "Stage: Final Destination")
	requireContains(t, out, "Winner: abc (ABC#123) as Fox")

	out, _, err = runCLI(t, []string{"inspect", path, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("inspect --json: %v", err)
	}
	var result inspectResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode json output: %v", err)
	}
	if !result.Decided || len(result.Participants) != 2 || !result.Participants[0].Winner || result.Participants[1].Port != "P2" {
		t.Fatalf("unexpected inspect result: %+v", result)
	}
}

func TestInspectUndecidedMatch(t *testing.T) {
	env := setupCLITestEnv(t)
	dump := `{"start":{"stage":31,"players":[{"port":"P1","character":2},{"port":"P2","character":20}]},"end":{"method":7,"players":null}}`
	path := testsupport.WriteReplay(t, env.replayDir, "quit.slp", []byte(dump))

	out, _, err := runCLI(t, []string{"inspect", path}, env.configPath)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	requireContains(t, out, "No winner found")
}

func TestCacheLifecycle(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCache(true))
	env.win(t, "keep.slp", me, rival)
	gone := env.win(t, "gone.slp", rival, me)
	testsupport.WriteReplay(t, env.replayDir, "bad.slp", []byte("garbage"))

	if _, _, err := runCLI(t, []string{"scan"}, env.configPath); err != nil {
		t.Fatalf("scan: %v", err)
	}
	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries: 2")

	// Cached results survive the decoder disappearing.
	if err := os.Remove(env.cfg.Decoder.Binary); err != nil {
		t.Fatalf("remove stub decoder: %v", err)
	}
	out, _, err = runCLI(t, []string{"wins", "--code", "ABC#123"}, env.configPath)
	if err != nil {
		t.Fatalf("wins from cache: %v", err)
	}
	requireContains(t, out, ": 1 (of 2 matches)")

	if err := os.Remove(gone); err != nil {
		t.Fatalf("remove replay: %v", err)
	}
	out, _, err = runCLI(t, []string{"cache", "prune"}, env.configPath)
	if err != nil {
		t.Fatalf("cache prune: %v", err)
	}
	requireContains(t, out, "Pruned 1 cache entries")

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Decode cache cleared")

	out, _, err = runCLI(t, []string{"cache", "stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, `"entries": 0`)
}

func TestNoCacheFlagSkipsStore(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithCache(true))
	env.win(t, "a.slp", me, rival)

	if _, _, err := runCLI(t, []string{"--no-cache", "scan"}, env.configPath); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if _, err := os.Stat(env.cfg.CacheDBPath()); !os.IsNotExist(err) {
		t.Fatalf("expected no cache database, stat err = %v", err)
	}
}

func TestConfigInitValidateShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}

	out, _, err = runCLI(t, []string{"--workers", "7", "config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "workers = 7")
	requireContains(t, out, env.replayDir)
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"--log-level", "loud", "scan"}, env.configPath); err == nil {
		t.Fatal("expected validation error for bad log level")
	}
}

func TestConfigValidateFailsWithoutDecoder(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Decoder.Binary = filepath.Join(testsupport.BaseDir(env.cfg), "missing-slp")
	writeTestConfig(t, env.configPath, env.cfg)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected validate to fail without a decoder")
	}
	requireContains(t, out, "[fail] Replay decoder")
}
