package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"slipstats/internal/melee"
)

// Player describes one side of a fixture match.
type Player struct {
	Code      string
	Name      string
	Character melee.Character
}

// Dump renders a two-player match in the slp tool's JSON shape. The winner
// plays on port P1 and the loser on P2. A nil loser produces a solo game.
func Dump(stage melee.Stage, winner Player, loser *Player) []byte {
	type netplay struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	type player struct {
		Port      string   `json:"port"`
		Character int      `json:"character"`
		Netplay   *netplay `json:"netplay,omitempty"`
	}
	type placement struct {
		Port      string `json:"port"`
		Placement int    `json:"placement"`
	}
	toPlayer := func(port string, p Player) player {
		out := player{Port: port, Character: int(p.Character)}
		if p.Code != "" || p.Name != "" {
			out.Netplay = &netplay{Name: p.Name, Code: p.Code}
		}
		return out
	}

	players := []player{toPlayer("P1", winner)}
	placements := []placement{{Port: "P1", Placement: 0}}
	if loser != nil {
		players = append(players, toPlayer("P2", *loser))
		placements = append(placements, placement{Port: "P2", Placement: 1})
	}

	doc := map[string]any{
		"start": map[string]any{"stage": int(stage), "players": players},
		"end":   map[string]any{"method": 2, "players": placements},
	}
	data, _ := json.Marshal(doc)
	return data
}

// WriteReplay writes content to dir/name, creating parent directories.
func WriteReplay(t testing.TB, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
