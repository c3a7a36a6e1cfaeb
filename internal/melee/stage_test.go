package melee

import "testing"

func TestStageFromID(t *testing.T) {
	tests := []struct {
		id   int
		want Stage
	}{
		{2, FountainOfDreams},
		{3, PokemonStadium},
		{8, YoshisStory},
		{20, MushroomKingdomII},
		{22, Venom},
		{28, DreamLandN64},
		{31, Battlefield},
		{32, FinalDestination},
		{0, NotStage},
		{1, NotStage},
		{21, NotStage},
		{33, NotStage},
		{-4, NotStage},
	}
	for _, tt := range tests {
		if got := StageFromID(tt.id); got != tt.want {
			t.Fatalf("StageFromID(%d) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	if Battlefield.String() != "Battlefield" {
		t.Fatalf("unexpected name %q", Battlefield.String())
	}
	if Stage(21).String() != NotStage.String() {
		t.Fatalf("unused stage id should render as NotStage")
	}
}
