// Package combat resolves fights between a player and the enemy in the
// current room, plus the non-combat room actions.
//
// An Encounter owns the player and room values it is given and mutates them
// in place; callers hand it copies of persisted state and keep the result.
package combat

import (
	"math"

	"github.com/KirkDiggler/dungeon-gains/internal/engine/dungeon"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/progression"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/rng"
)

// Combat tuning
const (
	CritPerPower   = 0.05
	CritCap        = 0.5
	CritMultiplier = 1.75

	VarianceMin = 0.9
	VarianceMax = 1.1

	MinDamage = 1
)

// CritChance is min(power * 0.05, 0.5), never negative
func CritChance(power int) float64 {
	return math.Min(math.Max(float64(power)*CritPerPower, 0), CritCap)
}

// Defense is endurance plus half of stamina
func Defense(stats entities.CharacterStats) int {
	return stats.Endurance + stats.Stamina/2
}

// EnemyDamage is the retaliation damage against the given effective stats
func EnemyDamage(attack int, stats entities.CharacterStats) int {
	return max(MinDamage, attack-Defense(stats))
}

// PlayerDamage rolls one player hit. The crit roll is drawn before the
// variance roll.
func PlayerDamage(src rng.Source, stats entities.CharacterStats, enemyDefense int) (int, bool) {
	damage := float64(stats.Strength)

	crit := rng.Chance(src, CritChance(stats.Power))
	if crit {
		damage *= CritMultiplier
	}

	damage = math.Max(MinDamage, damage-float64(enemyDefense))
	damage *= rng.Uniform(src, VarianceMin, VarianceMax)

	return max(MinDamage, int(math.Floor(damage))), crit
}

// Exchange is the outcome of one attack step
type Exchange struct {
	PlayerDamage   int
	Critical       bool
	EnemyDamage    int
	EnemyHealth    int
	PlayerHealth   int
	EnemyDefeated  bool
	PlayerDefeated bool
	Loot           []entities.Item
	Phase          entities.CombatPhase
	// Applied is false when the attack was refused, e.g. after a defeat
	Applied bool
}

// Encounter is the fight in one room
type Encounter struct {
	player *entities.PlayerCharacter
	room   *entities.DungeonRoom
	random rng.Source
	phase  entities.CombatPhase
}

// NewEncounter starts or resumes a fight. An empty phase starts at Idle.
func NewEncounter(src rng.Source, player *entities.PlayerCharacter, room *entities.DungeonRoom, phase entities.CombatPhase) *Encounter {
	if phase == "" {
		phase = entities.CombatIdle
	}
	return &Encounter{
		player: player,
		room:   room,
		random: src,
		phase:  phase,
	}
}

// Phase returns the current combat phase
func (e *Encounter) Phase() entities.CombatPhase {
	return e.phase
}

// Over reports whether the fight has reached a terminal phase or the player
// has no health left to fight with
func (e *Encounter) Over() bool {
	return e.phase.Terminal() || e.player.Health <= 0
}

// Attack runs one exchange: the player strikes, and if the enemy survives
// it strikes back. Defeating the enemy clears the room and moves its loot
// into the player's inventory.
func (e *Encounter) Attack() Exchange {
	if e.Over() || e.room == nil || e.room.Enemy == nil || e.room.Cleared {
		return Exchange{Phase: e.phase, PlayerHealth: e.player.Health}
	}

	e.phase = entities.CombatPlayerTurn
	enemy := e.room.Enemy
	stats := progression.EffectiveStats(e.player)

	out := Exchange{Applied: true}
	out.PlayerDamage, out.Critical = PlayerDamage(e.random, stats, enemy.Defense)
	enemy.Health = max(enemy.Health-out.PlayerDamage, 0)
	out.EnemyHealth = enemy.Health

	if enemy.Defeated() {
		e.phase = entities.CombatEnemyDefeated
		e.room.Cleared = true
		out.EnemyDefeated = true
		out.Loot = dungeon.CollectLoot(e.room)
		e.player.Inventory = append(e.player.Inventory, out.Loot...)
		out.PlayerHealth = e.player.Health
		out.Phase = e.phase
		return out
	}

	e.phase = entities.CombatEnemyTurn
	out.EnemyDamage = EnemyDamage(enemy.Attack, stats)
	e.player.Health = max(e.player.Health-out.EnemyDamage, 0)
	out.PlayerHealth = e.player.Health

	if e.player.Health == 0 {
		e.phase = entities.CombatPlayerDefeated
		out.PlayerDefeated = true
	} else {
		e.phase = entities.CombatPlayerTurn
	}

	out.Phase = e.phase
	return out
}

// OpenTreasure clears an uncleared treasure room and moves its loot into
// the inventory. It returns nil for any other room.
func OpenTreasure(player *entities.PlayerCharacter, room *entities.DungeonRoom) []entities.Item {
	if player.Health <= 0 || room == nil || room.Type != entities.RoomTypeTreasure || room.Cleared {
		return nil
	}
	room.Cleared = true
	items := dungeon.CollectLoot(room)
	player.Inventory = append(player.Inventory, items...)
	return items
}

// EnterRoom applies on-entry effects: empty rooms clear themselves.
// It reports whether the room was cleared by entering.
func EnterRoom(room *entities.DungeonRoom) bool {
	if room == nil || room.Type != entities.RoomTypeEmpty || room.Cleared {
		return false
	}
	room.Cleared = true
	return true
}
