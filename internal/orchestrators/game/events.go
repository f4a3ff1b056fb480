package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/engine/combat"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
)

// Event types published on the bus after a change has been saved
const (
	EventLevelUp         = "gains.level_up"
	EventPersonalRecord  = "gains.personal_record"
	EventEnemyDefeated   = "gains.enemy_defeated"
	EventPlayerDefeated  = "gains.player_defeated"
	EventDungeonFinished = "gains.dungeon_finished"
)

// Keys set on each event's context
const (
	KeyUserID          = "user_id"
	KeyLevel           = "level"
	KeyExerciseID      = "exercise_id"
	KeyRecordValue     = "value"
	KeyExperience      = "experience"
	KeyEnemiesDefeated = "enemies_defeated"
)

// EventTypes lists every event type the orchestrator publishes
var EventTypes = []string{
	EventLevelUp,
	EventPersonalRecord,
	EventEnemyDefeated,
	EventPlayerDefeated,
	EventDungeonFinished,
}

// EntityTypePlayer is the source type of every published event
const EntityTypePlayer = "player"

// player identifies the acting user on the bus
type player struct {
	userID string
}

func (p *player) GetID() string {
	return p.userID
}

func (p *player) GetType() string {
	return EntityTypePlayer
}

var (
	_ core.Entity = (*player)(nil)
	_ core.Entity = (*entities.Enemy)(nil)
)

func enemyEntity(enemy *entities.Enemy) core.Entity {
	if enemy == nil {
		return nil
	}
	return enemy
}

// publish sends one event. Failures are logged; the change it describes
// is already saved.
func (o *orchestrator) publish(ctx context.Context, eventType string, userID string, target core.Entity, data map[string]any) {
	event := events.NewGameEvent(eventType, &player{userID: userID}, target)
	event.Context().Set(KeyUserID, userID)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.bus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish game event",
			"event", eventType,
			"user_id", userID,
			"error", err)
	}
}

func (o *orchestrator) publishLevelUp(ctx context.Context, userID string, state *entities.GameState) {
	if state == nil || state.Player == nil {
		return
	}
	o.publish(ctx, EventLevelUp, userID, nil, map[string]any{
		KeyLevel: state.Player.Stats.Level,
	})
}

func (o *orchestrator) publishWorkout(ctx context.Context, userID string, out *engine.LogWorkoutOutput) {
	for _, record := range out.NewRecords {
		o.publish(ctx, EventPersonalRecord, userID, nil, map[string]any{
			KeyExerciseID:  record.ExerciseID,
			KeyRecordValue: record.Value,
		})
	}
	if out.LeveledUp {
		o.publishLevelUp(ctx, userID, out.State)
	}
}

func (o *orchestrator) publishExchange(ctx context.Context, userID string, room *entities.DungeonRoom, x combat.Exchange) {
	var enemy *entities.Enemy
	if room != nil {
		enemy = room.Enemy
	}
	if x.EnemyDefeated {
		o.publish(ctx, EventEnemyDefeated, userID, enemyEntity(enemy), nil)
	}
	if x.PlayerDefeated {
		o.publish(ctx, EventPlayerDefeated, userID, enemyEntity(enemy), nil)
	}
}

func (o *orchestrator) publishFinished(ctx context.Context, userID string, enemiesDefeated int, out *engine.CompleteDungeonOutput) {
	o.publish(ctx, EventDungeonFinished, userID, nil, map[string]any{
		KeyExperience:      out.ExperienceGained,
		KeyEnemiesDefeated: enemiesDefeated,
	})
	if out.LeveledUp {
		o.publishLevelUp(ctx, userID, out.State)
	}
}

// LogEvents subscribes a handler that logs every published event. It
// returns the subscription IDs.
func LogEvents(bus events.EventBus) []string {
	ids := make([]string, 0, len(EventTypes))
	for _, eventType := range EventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, func(ctx context.Context, event events.Event) error {
			userID, _ := event.Context().Get(KeyUserID)
			slog.InfoContext(ctx, "game event",
				"event", event.Type(),
				"user_id", userID)
			return nil
		}))
	}
	return ids
}
