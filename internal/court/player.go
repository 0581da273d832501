package court

// Level is a player's self-reported skill level.
type Level string

const (
	LevelIniciante     Level = "iniciante"
	LevelIntermediario Level = "intermediario"
	LevelAvancado      Level = "avancado"
	LevelUnknown       Level = "não informado"
)

// Gender is the team category a player registers under.
type Gender string

const (
	GenderMasculino Gender = "masculino"
	GenderFeminino  Gender = "feminino"
	GenderUnknown   Gender = "não informado"
)

// Allocation order: strongest, most distinguishing buckets are spread across
// teams first, the catch-all categories last.
var levelOrder = [...]Level{LevelAvancado, LevelIntermediario, LevelIniciante, LevelUnknown}

var genderOrder = [...]Gender{GenderMasculino, GenderFeminino, GenderUnknown}

// NormalizeLevel maps free-form input onto the Level enum. Anything
// unrecognized (including empty) degrades to LevelUnknown instead of being
// dropped downstream.
func NormalizeLevel(s string) Level {
	switch Level(s) {
	case LevelIniciante, LevelIntermediario, LevelAvancado:
		return Level(s)
	}
	return LevelUnknown
}

// NormalizeGender maps free-form input onto the Gender enum. The profile
// value "misto" and empty strings both land in GenderUnknown.
func NormalizeGender(s string) Gender {
	switch Gender(s) {
	case GenderMasculino, GenderFeminino:
		return Gender(s)
	}
	return GenderUnknown
}

// Player is one participant extracted from a booking. ID is a synthetic
// per-flattening identifier so duplicate name/level/gender triples stay
// distinguishable.
type Player struct {
	ID     int    `json:"-"`
	Name   string `json:"name"`
	Level  Level  `json:"level"`
	Gender Gender `json:"gender"`
}

// LevelSortKey orders levels for display grouping (iniciante first).
func LevelSortKey(l Level) int {
	switch l {
	case LevelIniciante:
		return 0
	case LevelIntermediario:
		return 1
	case LevelAvancado:
		return 2
	}
	return 3
}

// GenderSortKey orders genders for display grouping (masculino first).
func GenderSortKey(g Gender) int {
	switch g {
	case GenderMasculino:
		return 0
	case GenderFeminino:
		return 1
	}
	return 2
}
