package exercises

import "github.com/KirkDiggler/dungeon-gains/internal/entities"

// Presets is the local catalog used whenever the remote one is unavailable
var Presets = []Definition{
	{
		ID:       "bench",
		Name:     "Bench Press",
		Muscle:   "chest",
		Category: entities.CategoryBench,
		StatType: entities.StatStrength,
		Preset:   true,
	},
	{
		ID:       "squat",
		Name:     "Squat",
		Muscle:   "quadriceps",
		Category: entities.CategorySquat,
		StatType: entities.StatPower,
		Preset:   true,
	},
	{
		ID:       "ohp",
		Name:     "Overhead Press",
		Muscle:   "shoulders",
		Category: entities.CategoryOverhead,
		StatType: entities.StatEndurance,
		Preset:   true,
	},
	{
		ID:       "deadlift",
		Name:     "Deadlift",
		Muscle:   "hamstrings",
		Category: entities.CategorySquat,
		StatType: entities.StatStamina,
		Preset:   true,
	},
	{
		ID:       "mile",
		Name:     "Mile Run",
		Muscle:   "cardio",
		Type:     "cardio",
		Category: entities.CategoryCardio,
		StatType: entities.StatStamina,
		Preset:   true,
	},
}

// Preset returns the preset with id
func Preset(id string) (Definition, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Definition{}, false
}

func presetsFor(muscle string) []Definition {
	if muscle == "" {
		return append([]Definition(nil), Presets...)
	}
	var out []Definition
	for _, p := range Presets {
		if muscleIn(p.Muscle, muscle) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return append([]Definition(nil), Presets...)
	}
	return out
}
