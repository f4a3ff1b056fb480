package entities

// Stat names one of the four trainable combat stats
type Stat string

// Trainable stats
const (
	StatStrength  Stat = "strength"
	StatPower     Stat = "power"
	StatEndurance Stat = "endurance"
	StatStamina   Stat = "stamina"
)

// CombatStats lists the stats in display order
var CombatStats = []Stat{StatStrength, StatPower, StatEndurance, StatStamina}

// CharacterStats is the live stat block of a character.
// Strength drives attack, power drives crit chance, endurance drives max
// health and defense, stamina drives defense and room odds.
type CharacterStats struct {
	Strength   int `json:"strength"`
	Power      int `json:"power"`
	Endurance  int `json:"endurance"`
	Stamina    int `json:"stamina"`
	Level      int `json:"level"`
	Experience int `json:"experience"`
}

// Get returns the value of a combat stat
func (s CharacterStats) Get(stat Stat) int {
	switch stat {
	case StatStrength:
		return s.Strength
	case StatPower:
		return s.Power
	case StatEndurance:
		return s.Endurance
	case StatStamina:
		return s.Stamina
	default:
		return 0
	}
}

// Plus returns s with the bonus added to the four combat stats
func (s CharacterStats) Plus(b *StatBonus) CharacterStats {
	if b == nil {
		return s
	}
	s.Strength += b.Strength
	s.Power += b.Power
	s.Endurance += b.Endurance
	s.Stamina += b.Stamina
	return s
}

// StatBonus is a partial stat map carried by items. Zero fields mean no bonus.
type StatBonus struct {
	Strength  int `json:"strength,omitempty"`
	Power     int `json:"power,omitempty"`
	Endurance int `json:"endurance,omitempty"`
	Stamina   int `json:"stamina,omitempty"`
}

// Get returns the bonus for a stat
func (b *StatBonus) Get(stat Stat) int {
	if b == nil {
		return 0
	}
	return CharacterStats{
		Strength:  b.Strength,
		Power:     b.Power,
		Endurance: b.Endurance,
		Stamina:   b.Stamina,
	}.Get(stat)
}

// IsZero reports whether the bonus grants nothing
func (b *StatBonus) IsZero() bool {
	return b == nil || *b == StatBonus{}
}
