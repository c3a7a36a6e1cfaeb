package melee

// Stage identifies a playable stage by its internal stage id.
type Stage int

const (
	NotStage         Stage = 0
	FountainOfDreams Stage = iota + 1
	PokemonStadium
	PeachCastle
	KongoJungle
	Brinstar
	Corneria
	YoshisStory
	Onett
	MuteCity
	RainbowCruise
	JungleJapes
	GreatBay
	HyruleTemple
	BrinstarDepths
	YoshisIsland
	GreenGreens
	Fourside
	MushroomKingdomI
	MushroomKingdomII
)

// Id 21 (Akaneia) is unused; the remaining stages resume at 22.
const (
	Venom Stage = iota + 22
	PokeFloats
	BigBlue
	IcicleMountain
	Icetop
	FlatZone
	DreamLandN64
	YoshisIslandN64
	KongoJungleN64
	Battlefield
	FinalDestination
)

var stageNames = map[Stage]string{
	NotStage:          "Not a stage",
	FountainOfDreams:  "Fountain of Dreams",
	PokemonStadium:    "Pokémon Stadium",
	PeachCastle:       "Princess Peach's Castle",
	KongoJungle:       "Kongo Jungle",
	Brinstar:          "Brinstar",
	Corneria:          "Corneria",
	YoshisStory:       "Yoshi's Story",
	Onett:             "Onett",
	MuteCity:          "Mute City",
	RainbowCruise:     "Rainbow Cruise",
	JungleJapes:       "Jungle Japes",
	GreatBay:          "Great Bay",
	HyruleTemple:      "Hyrule Temple",
	BrinstarDepths:    "Brinstar Depths",
	YoshisIsland:      "Yoshi's Island",
	GreenGreens:       "Green Greens",
	Fourside:          "Fourside",
	MushroomKingdomI:  "Mushroom Kingdom I",
	MushroomKingdomII: "Mushroom Kingdom II",
	Venom:             "Venom",
	PokeFloats:        "Poké Floats",
	BigBlue:           "Big Blue",
	IcicleMountain:    "Icicle Mountain",
	Icetop:            "Icetop",
	FlatZone:          "Flat Zone",
	DreamLandN64:      "Dream Land N64",
	YoshisIslandN64:   "Yoshi's Island N64",
	KongoJungleN64:    "Kongo Jungle N64",
	Battlefield:       "Battlefield",
	FinalDestination:  "Final Destination",
}

// StageFromID maps an internal stage id to a Stage. Unknown ids, including the
// menu and test stages, yield NotStage.
func StageFromID(id int) Stage {
	s := Stage(id)
	if s == NotStage {
		return NotStage
	}
	if _, ok := stageNames[s]; !ok {
		return NotStage
	}
	return s
}

// String returns the display name.
func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return stageNames[NotStage]
}
