package slptool

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"slipstats/internal/replay"
	"slipstats/internal/services"
)

type gameDoc struct {
	Start *startDoc `json:"start"`
	End   *endDoc   `json:"end"`
}

type startDoc struct {
	Stage   int         `json:"stage"`
	Players []playerDoc `json:"players"`
}

type playerDoc struct {
	Port      port        `json:"port"`
	Character int         `json:"character"`
	Netplay   *netplayDoc `json:"netplay"`
}

type netplayDoc struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type endDoc struct {
	Players []playerEndDoc `json:"players"`
}

type playerEndDoc struct {
	Port      port `json:"port"`
	Placement int  `json:"placement"`
}

// port accepts 0 through 3 or "P1" through "P4". Anything else decodes to -1,
// which never resolves to a participant.
type port int

func (p *port) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*p = -1
		return nil
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		*p = port(n)
		return nil
	}
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("port: %w", err)
	}
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) == 2 && label[0] == 'P' && label[1] >= '1' && label[1] <= '4' {
		*p = port(label[1] - '1')
		return nil
	}
	*p = -1
	return nil
}

// Parse maps one JSON game dump onto a Match.
func Parse(data []byte) (*replay.Match, error) {
	var doc gameDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, services.Wrap(services.ErrValidation, "slp", "parse", "", err)
	}
	if doc.Start == nil {
		return nil, services.Wrap(services.ErrValidation, "slp", "parse", "missing game start", nil)
	}

	match := &replay.Match{
		StageID:      doc.Start.Stage,
		Participants: make([]replay.Participant, 0, len(doc.Start.Players)),
	}
	for _, pl := range doc.Start.Players {
		participant := replay.Participant{
			Port:        int(pl.Port),
			CharacterID: pl.Character,
		}
		if pl.Netplay != nil {
			participant.Netplay = &replay.NetIdentity{Code: pl.Netplay.Code, Name: pl.Netplay.Name}
		}
		match.Participants = append(match.Participants, participant)
	}

	// A game end without placements (older replays, LRAS quits) carries no decision.
	if doc.End != nil && doc.End.Players != nil {
		outcome := &replay.Outcome{Placements: make([]replay.Placement, 0, len(doc.End.Players))}
		for _, pe := range doc.End.Players {
			outcome.Placements = append(outcome.Placements, replay.Placement{Port: int(pe.Port), Placement: pe.Placement})
		}
		match.Outcome = outcome
	}
	return match, nil
}
