package replay

import (
	"context"

	"slipstats/internal/melee"
)

// MaxPorts is the number of controller ports a match can address.
const MaxPorts = 4

// NetIdentity is the online identity recorded for a netplay participant.
type NetIdentity struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Participant is one competitor in a match.
type Participant struct {
	Port        int          `json:"port"`
	CharacterID int          `json:"character_id"`
	Netplay     *NetIdentity `json:"netplay,omitempty"`
}

// Character resolves the participant's character id against the roster.
func (p Participant) Character() melee.Character {
	return melee.CharacterFromID(p.CharacterID)
}

// Placement is a single end-of-game standing.
type Placement struct {
	Port      int `json:"port"`
	Placement int `json:"placement"`
}

// Outcome is the end-of-game section of a match.
type Outcome struct {
	Placements []Placement `json:"placements,omitempty"`
}

// Match is one decoded replay.
type Match struct {
	Path         string        `json:"path"`
	StageID      int           `json:"stage_id"`
	Participants []Participant `json:"participants"`
	Outcome      *Outcome      `json:"outcome,omitempty"`
}

// Stage resolves the match stage id against the stage catalog.
func (m *Match) Stage() melee.Stage {
	if m == nil {
		return melee.NotStage
	}
	return melee.StageFromID(m.StageID)
}

// ParticipantAt returns the participant on the given port. Ports outside
// 0..MaxPorts-1 never resolve.
func (m *Match) ParticipantAt(port int) (Participant, bool) {
	if m == nil || port < 0 || port >= MaxPorts {
		return Participant{}, false
	}
	for _, p := range m.Participants {
		if p.Port == port {
			return p, true
		}
	}
	return Participant{}, false
}

// Decoder turns a replay file into a Match. Implementations must be safe for
// concurrent use.
type Decoder interface {
	Decode(ctx context.Context, path string) (*Match, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(ctx context.Context, path string) (*Match, error)

// Decode calls f(ctx, path).
func (f DecoderFunc) Decode(ctx context.Context, path string) (*Match, error) {
	return f(ctx, path)
}
