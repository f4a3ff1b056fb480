package entities

// LevelUpInfo is shown once after a level-up and then cleared by the caller
type LevelUpInfo struct {
	OldStats CharacterStats `json:"oldStats"`
	NewStats CharacterStats `json:"newStats"`
	NewLevel int            `json:"newLevel"`
}

// GameState is the full snapshot persisted per user.
// Player is nil until a character has been created.
type GameState struct {
	Player            *PlayerCharacter `json:"player"`
	CurrentDungeon    *Dungeon         `json:"currentDungeon"`
	AvailableDungeons int              `json:"availableDungeons"`
	LevelUpInfo       *LevelUpInfo     `json:"levelUpInfo,omitempty"`
}

// HasCharacter reports whether a character exists
func (g *GameState) HasCharacter() bool {
	return g != nil && g.Player != nil
}

// Clone returns a deep copy
func (g *GameState) Clone() *GameState {
	if g == nil {
		return nil
	}
	out := *g
	out.Player = g.Player.Clone()
	out.CurrentDungeon = g.CurrentDungeon.Clone()
	if g.LevelUpInfo != nil {
		info := *g.LevelUpInfo
		out.LevelUpInfo = &info
	}
	return &out
}

// Normalize fills in fields that older snapshots may lack and clamps
// counters that must never be negative. It mutates g in place.
func (g *GameState) Normalize() {
	if g == nil {
		return
	}
	if g.AvailableDungeons < 0 {
		g.AvailableDungeons = 0
	}

	p := g.Player
	if p == nil {
		return
	}
	if p.Inventory == nil {
		p.Inventory = []Item{}
	}
	if p.WorkoutLogs == nil {
		p.WorkoutLogs = []WorkoutLog{}
	}
	for i := range p.WorkoutLogs {
		if p.WorkoutLogs[i].Exercises == nil {
			p.WorkoutLogs[i].Exercises = []Exercise{}
		}
	}
	if p.PersonalRecords == nil {
		p.PersonalRecords = make(map[string]PersonalRecord)
	}
	if p.HealthPotions < 0 {
		p.HealthPotions = 0
	}
	if p.Stats.Level < 1 {
		p.Stats.Level = 1
	}
	if p.Stats.Experience < 0 {
		p.Stats.Experience = 0
	}
	if p.BaseStats.Level < 1 {
		p.BaseStats = p.Stats
	}
	if p.Health < 0 {
		p.Health = 0
	}
	if p.MaxHealth > 0 && p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}

	if d := g.CurrentDungeon; d != nil {
		if d.Rooms == nil {
			d.Rooms = []DungeonRoom{}
		}
		if d.CombatPhase == "" {
			d.CombatPhase = CombatIdle
		}
	}
}
