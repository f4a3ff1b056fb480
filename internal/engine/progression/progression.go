// Package progression holds the stat and experience math: the level curve,
// level-up rule, derived health, effective stats and reward sizes.
package progression

import (
	"math"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// Tuning constants
const (
	BaseXP   = 150
	MaxLevel = 25

	StatsPerLevel = 1

	BaseHealth         = 100
	HealthPerLevel     = 10
	HealthPerEndurance = 5

	StartingStat = 3

	XPPerSetRep      = 5
	XPPerCardioMin   = 10
	XPPerEnemy       = 25
	HealthBonusMaxXP = 50
)

// XPForLevel is the experience needed to advance from level to level+1
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXP * math.Pow(float64(level), 1.5)))
}

// StartingStats are the stats of a new character
func StartingStats() entities.CharacterStats {
	return entities.CharacterStats{
		Strength:   StartingStat,
		Power:      StartingStat,
		Endurance:  StartingStat,
		Stamina:    StartingStat,
		Level:      1,
		Experience: 0,
	}
}

// CheckLevelUp advances at most one level. It returns the new stats and
// whether a level was gained. Max-level characters keep their experience.
func CheckLevelUp(stats entities.CharacterStats) (entities.CharacterStats, bool) {
	if stats.Level >= MaxLevel {
		return stats, false
	}

	threshold := XPForLevel(stats.Level)
	if stats.Experience < threshold {
		return stats, false
	}

	stats.Experience -= threshold
	stats.Level++
	stats.Strength += StatsPerLevel
	stats.Power += StatsPerLevel
	stats.Endurance += StatsPerLevel
	stats.Stamina += StatsPerLevel
	return stats, true
}

// MaxHealth derives max health from level and endurance
func MaxHealth(stats entities.CharacterStats) int {
	return BaseHealth + stats.Level*HealthPerLevel + stats.Endurance*HealthPerEndurance
}

// EffectiveStats adds every equipped item's bonus to the character's stats
func EffectiveStats(p *entities.PlayerCharacter) entities.CharacterStats {
	stats := p.Stats
	for _, item := range p.EquippedItems.Items() {
		stats = stats.Plus(item.StatBonus)
	}
	return stats
}

// WorkoutXP rewards volume: sets x reps per exercise (missing values count
// as one) plus a bonus per full minute of timed work.
func WorkoutXP(exercises []entities.Exercise) int {
	xp := 0
	for _, e := range exercises {
		sets, reps := max(e.Sets, 1), max(e.Reps, 1)
		xp += sets * reps * XPPerSetRep
		if e.Time > 0 {
			xp += int(math.Floor(e.Time/60)) * XPPerCardioMin
		}
	}
	return xp
}

// DungeonXP rewards kills plus the fraction of health carried out
func DungeonXP(enemiesDefeated, remainingHealth, maxHealth int) int {
	xp := max(enemiesDefeated, 0) * XPPerEnemy
	if maxHealth > 0 && remainingHealth > 0 {
		xp += int(math.Floor(float64(remainingHealth) / float64(maxHealth) * HealthBonusMaxXP))
	}
	return xp
}

// IsPersonalRecord applies the PR rule. A timed cardio entry improves by a
// strictly lower time; anything else, including cardio logged without a
// time, by a strictly higher weight.
func IsPersonalRecord(e entities.Exercise, previous entities.PersonalRecord, hasPrevious bool) bool {
	if !hasPrevious {
		return false
	}
	if e.TimeBased() && e.Time > 0 {
		return e.Time < previous.Value
	}
	return e.Weight > previous.Value
}
