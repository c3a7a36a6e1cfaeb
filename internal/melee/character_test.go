package melee

import "testing"

func TestCharacterFromIDKnownRoster(t *testing.T) {
	tests := []struct {
		id   int
		want Character
		name string
	}{
		{0, CaptainFalcon, "Captain Falcon"},
		{2, Fox, "Fox"},
		{3, MrGameAndWatch, "Mr. Game and Watch"},
		{9, Marth, "Marth"},
		{20, Falco, "Falco"},
		{22, DrMario, "Dr. Mario"},
		{32, Popo, "Popo"},
	}
	for _, tt := range tests {
		got := CharacterFromID(tt.id)
		if got != tt.want {
			t.Fatalf("CharacterFromID(%d) = %v, want %v", tt.id, got, tt.want)
		}
		if got.String() != tt.name {
			t.Fatalf("CharacterFromID(%d).String() = %q, want %q", tt.id, got.String(), tt.name)
		}
	}
}

func TestCharacterFromIDFallsBackToUnknown(t *testing.T) {
	for _, id := range []int{-1, 33, 255, 1 << 20} {
		if got := CharacterFromID(id); got != Unknown {
			t.Fatalf("CharacterFromID(%d) = %v, want Unknown", id, got)
		}
	}
	if Unknown.String() != "UNKNOWN" {
		t.Fatalf("unexpected unknown label %q", Unknown.String())
	}
	if Character(99).String() != "UNKNOWN" {
		t.Fatalf("out-of-range character should render as UNKNOWN")
	}
}

func TestCharactersExcludesUnknown(t *testing.T) {
	roster := Characters()
	if len(roster) != 33 {
		t.Fatalf("expected 33 characters, got %d", len(roster))
	}
	for _, c := range roster {
		if c == Unknown {
			t.Fatal("roster should not contain Unknown")
		}
	}
}
