package exercises

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

var (
	// slugPattern matches characters that should be replaced in slugs
	slugPattern   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenPattern = regexp.MustCompile(`-+`)
)

// Slug creates a stable exercise ID from a display name
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = hyphenPattern.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func muscleIn(muscle string, groups ...string) bool {
	m := strings.ToLower(muscle)
	for _, g := range groups {
		if strings.Contains(m, g) {
			return true
		}
	}
	return false
}

// MuscleToStat picks the stat an exercise trains from its target muscle.
// Pressing muscles train strength, legs train power, shoulders train
// endurance and everything else trains stamina.
func MuscleToStat(muscle string) entities.Stat {
	switch {
	case muscleIn(muscle, "chest", "triceps"):
		return entities.StatStrength
	case muscleIn(muscle, "quadriceps", "glutes", "hamstrings"):
		return entities.StatPower
	case muscleIn(muscle, "shoulders", "traps"):
		return entities.StatEndurance
	default:
		return entities.StatStamina
	}
}

// MuscleToCategory groups an exercise with the main lift it resembles
func MuscleToCategory(muscle string) entities.ExerciseCategory {
	switch {
	case muscleIn(muscle, "chest", "triceps"):
		return entities.CategoryBench
	case muscleIn(muscle, "quadriceps", "glutes", "hamstrings"):
		return entities.CategorySquat
	case muscleIn(muscle, "shoulders", "traps"):
		return entities.CategoryOverhead
	case muscleIn(muscle, "cardio"):
		return entities.CategoryCardio
	default:
		return entities.CategoryAccessory
	}
}
