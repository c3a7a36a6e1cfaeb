package melee

// Character identifies a fighter or entity by its in-game external id.
type Character int

const (
	CaptainFalcon Character = iota
	DonkeyKong
	Fox
	MrGameAndWatch
	Kirby
	Bowser
	Link
	Luigi
	Mario
	Marth
	Mewtwo
	Ness
	Peach
	Pikachu
	IceClimbers
	Jigglypuff
	Samus
	Yoshi
	Zelda
	Sheik
	Falco
	YoungLink
	DrMario
	Roy
	Pichu
	Ganondorf
	MasterHand
	MaleWireframe
	FemaleWireframe
	GigaBowser
	CrazyHand
	Sandbag
	Popo
	Unknown
)

var characterNames = [...]string{
	CaptainFalcon:   "Captain Falcon",
	DonkeyKong:      "Donkey Kong",
	Fox:             "Fox",
	MrGameAndWatch:  "Mr. Game and Watch",
	Kirby:           "Kirby",
	Bowser:          "Bowser",
	Link:            "Link",
	Luigi:           "Luigi",
	Mario:           "Mario",
	Marth:           "Marth",
	Mewtwo:          "Mewtwo",
	Ness:            "Ness",
	Peach:           "Peach",
	Pikachu:         "Pikachu",
	IceClimbers:     "Ice Climbers",
	Jigglypuff:      "Jigglypuff",
	Samus:           "Samus",
	Yoshi:           "Yoshi",
	Zelda:           "Zelda",
	Sheik:           "Sheik",
	Falco:           "Falco",
	YoungLink:       "Young Link",
	DrMario:         "Dr. Mario",
	Roy:             "Roy",
	Pichu:           "Pichu",
	Ganondorf:       "Ganondorf",
	MasterHand:      "Master Hand",
	MaleWireframe:   "Male Wireframe",
	FemaleWireframe: "Female Wireframe",
	GigaBowser:      "Giga Bowser",
	CrazyHand:       "Crazy Hand",
	Sandbag:         "Sandbag",
	Popo:            "Popo",
	Unknown:         "UNKNOWN",
}

// CharacterFromID maps an external character id to a Character. Any id
// outside the roster yields Unknown.
func CharacterFromID(id int) Character {
	if id < int(CaptainFalcon) || id >= int(Unknown) {
		return Unknown
	}
	return Character(id)
}

// String returns the display name.
func (c Character) String() string {
	if c < CaptainFalcon || c > Unknown {
		return characterNames[Unknown]
	}
	return characterNames[c]
}

// Characters lists every named character in id order, excluding Unknown.
func Characters() []Character {
	out := make([]Character, 0, int(Unknown))
	for c := CaptainFalcon; c < Unknown; c++ {
		out = append(out, c)
	}
	return out
}
