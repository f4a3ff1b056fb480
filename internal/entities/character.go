package entities

import "time"

// PlayerCharacter is the root of a player's state.
// BaseStats is the creation snapshot and is never used in combat math.
type PlayerCharacter struct {
	Name                  string                    `json:"name"`
	Stats                 CharacterStats            `json:"stats"`
	BaseStats             CharacterStats            `json:"baseStats"`
	Health                int                       `json:"health"`
	MaxHealth             int                       `json:"maxHealth"`
	Inventory             []Item                    `json:"inventory"`
	EquippedItems         EquippedItems             `json:"equippedItems"`
	WorkoutLogs           []WorkoutLog              `json:"workoutLogs"`
	PersonalRecords       map[string]PersonalRecord `json:"personalRecords"`
	HealthPotions         int                       `json:"healthPotions"`
	LastHealthRestoreTime *time.Time                `json:"lastHealthRestoreTime,omitempty"`
	FirstDungeonCompleted bool                      `json:"firstDungeonCompleted"`
}

// InventoryIndex returns the index of the first inventory item with id, or -1
func (p *PlayerCharacter) InventoryIndex(id string) int {
	for i := range p.Inventory {
		if p.Inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveInventoryAt removes and returns the item at index i
func (p *PlayerCharacter) RemoveInventoryAt(i int) Item {
	item := p.Inventory[i]
	p.Inventory = append(p.Inventory[:i:i], p.Inventory[i+1:]...)
	return item
}

// Clone returns a deep copy
func (p *PlayerCharacter) Clone() *PlayerCharacter {
	if p == nil {
		return nil
	}
	out := *p
	out.Inventory = cloneItems(p.Inventory)
	out.EquippedItems = p.EquippedItems.Clone()

	if p.WorkoutLogs != nil {
		out.WorkoutLogs = make([]WorkoutLog, len(p.WorkoutLogs))
		for i, log := range p.WorkoutLogs {
			out.WorkoutLogs[i] = log.Clone()
		}
	}

	if p.PersonalRecords != nil {
		out.PersonalRecords = make(map[string]PersonalRecord, len(p.PersonalRecords))
		for k, v := range p.PersonalRecords {
			out.PersonalRecords[k] = v
		}
	}

	if p.LastHealthRestoreTime != nil {
		t := *p.LastHealthRestoreTime
		out.LastHealthRestoreTime = &t
	}

	return &out
}
