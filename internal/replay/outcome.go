package replay

// Winner returns the participant that placed first. It reports false when the
// match has no outcome section, no placement-0 entry, or the winning port does
// not resolve to a participant. When several entries claim placement 0 the
// first one wins.
func Winner(m *Match) (Participant, bool) {
	if m == nil || m.Outcome == nil {
		return Participant{}, false
	}
	for _, pl := range m.Outcome.Placements {
		if pl.Placement == 0 {
			return m.ParticipantAt(pl.Port)
		}
	}
	return Participant{}, false
}
