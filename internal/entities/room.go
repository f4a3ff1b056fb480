package entities

// EntityTypeEnemy is the entity type reported by enemies
const EntityTypeEnemy = "enemy"

// Enemy is generated fresh per room. Only Health changes during combat.
type Enemy struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
	Attack    int    `json:"attack"`
	Defense   int    `json:"defense"`
	Icon      string `json:"icon"`
}

// GetID returns the enemy ID
func (e *Enemy) GetID() string { return e.ID }

// GetType returns the entity type
func (e *Enemy) GetType() string { return EntityTypeEnemy }

// Defeated reports whether the enemy has no health left
func (e *Enemy) Defeated() bool { return e.Health <= 0 }

// Clone returns a copy of the enemy
func (e *Enemy) Clone() *Enemy {
	if e == nil {
		return nil
	}
	out := *e
	return &out
}

// RoomType is the kind of dungeon room
type RoomType string

// Room types
const (
	RoomTypeEnemy    RoomType = "enemy"
	RoomTypeTreasure RoomType = "treasure"
	RoomTypeEmpty    RoomType = "empty"
	RoomTypeBoss     RoomType = "boss"
)

// HasEnemy reports whether rooms of this type are fought
func (t RoomType) HasEnemy() bool {
	return t == RoomTypeEnemy || t == RoomTypeBoss
}

// DungeonRoom is one step of a run. Cleared flips once; Loot is emptied once
// when collected.
type DungeonRoom struct {
	ID      string   `json:"id"`
	Type    RoomType `json:"type"`
	Enemy   *Enemy   `json:"enemy,omitempty"`
	Loot    []Item   `json:"loot,omitempty"`
	Cleared bool     `json:"cleared"`
}

// Clone returns a deep copy
func (r DungeonRoom) Clone() DungeonRoom {
	r.Enemy = r.Enemy.Clone()
	r.Loot = cloneItems(r.Loot)
	return r
}

// CombatPhase is the state of the fight in the current room
type CombatPhase string

// Combat phases
const (
	CombatIdle           CombatPhase = "idle"
	CombatPlayerTurn     CombatPhase = "player_turn"
	CombatEnemyTurn      CombatPhase = "enemy_turn"
	CombatEnemyDefeated  CombatPhase = "enemy_defeated"
	CombatPlayerDefeated CombatPhase = "player_defeated"
)

// Terminal reports whether no further attacks are possible in this phase
func (p CombatPhase) Terminal() bool {
	return p == CombatEnemyDefeated || p == CombatPlayerDefeated
}

// Dungeon is a single run. It exists only while the run is active.
type Dungeon struct {
	ID               string        `json:"id"`
	Rooms            []DungeonRoom `json:"rooms"`
	CurrentRoomIndex int           `json:"currentRoomIndex"`
	Completed        bool          `json:"completed"`
	Difficulty       int           `json:"difficulty"`

	// Run bookkeeping used by the service to drive a run across calls.
	EnemiesDefeated int         `json:"enemiesDefeated,omitempty"`
	CombatPhase     CombatPhase `json:"combatPhase,omitempty"`
}

// CurrentRoom returns the room at CurrentRoomIndex, or nil when out of range
func (d *Dungeon) CurrentRoom() *DungeonRoom {
	if d == nil || d.CurrentRoomIndex < 0 || d.CurrentRoomIndex >= len(d.Rooms) {
		return nil
	}
	return &d.Rooms[d.CurrentRoomIndex]
}

// OnLastRoom reports whether the current room is the final one
func (d *Dungeon) OnLastRoom() bool {
	return d != nil && d.CurrentRoomIndex == len(d.Rooms)-1
}

// PlayerDefeated reports whether the run ended in death
func (d *Dungeon) PlayerDefeated() bool {
	return d != nil && d.CombatPhase == CombatPlayerDefeated
}

// Clone returns a deep copy
func (d *Dungeon) Clone() *Dungeon {
	if d == nil {
		return nil
	}
	out := *d
	out.Rooms = make([]DungeonRoom, len(d.Rooms))
	for i, room := range d.Rooms {
		out.Rooms[i] = room.Clone()
	}
	return &out
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i := range items {
		out[i] = *items[i].Clone()
	}
	return out
}
