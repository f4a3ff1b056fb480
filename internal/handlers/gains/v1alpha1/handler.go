// Package v1alpha1 serves the game over gRPC
package v1alpha1

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	GameService game.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.GameService == nil {
		return errors.InvalidArgument("game service is required")
	}
	return nil
}

// Handler implements GameServiceServer
type Handler struct {
	gameService game.Service
}

var _ GameServiceServer = (*Handler)(nil)

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		gameService: cfg.GameService,
	}, nil
}

func requireUser(userID string) error {
	if userID == "" {
		return errors.ToGRPCError(errors.InvalidArgument("user_id is required"))
	}
	return nil
}

func stateResponse(r engine.Result) *StateResponse {
	return &StateResponse{State: r.State, Applied: r.Applied}
}

// GetGameState returns the stored snapshot
func (h *Handler) GetGameState(ctx context.Context, req *UserRequest) (*GetGameStateResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.GetGameState(ctx, &game.GetGameStateInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetGameStateResponse{
		State:          out.State,
		HealthRestored: out.HealthRestored,
	}, nil
}

// CreateCharacter starts a new game for the user
func (h *Handler) CreateCharacter(ctx context.Context, req *CreateCharacterRequest) (*StateResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.gameService.CreateCharacter(ctx, &game.CreateCharacterInput{
		UserID:        req.UserID,
		Name:          req.Name,
		StartingLifts: req.StartingLifts,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return stateResponse(out.Result), nil
}

// DeleteCharacter removes the user's snapshot
func (h *Handler) DeleteCharacter(ctx context.Context, req *UserRequest) (*DeleteCharacterResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	if _, err := h.gameService.DeleteCharacter(ctx, &game.DeleteCharacterInput{UserID: req.UserID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteCharacterResponse{}, nil
}

// LogWorkout records a workout and grants its rewards
func (h *Handler) LogWorkout(ctx context.Context, req *LogWorkoutRequest) (*LogWorkoutResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.LogWorkout(ctx, &game.LogWorkoutInput{
		UserID:  req.UserID,
		Workout: req.Workout,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &LogWorkoutResponse{
		State:            out.State,
		Applied:          out.Applied,
		NewRecords:       out.NewRecords,
		PotionsEarned:    out.PotionsEarned,
		ExperienceGained: out.ExperienceGained,
		LeveledUp:        out.LeveledUp,
		HealthRestored:   out.HealthRestored,
		TokenEarned:      out.TokenEarned,
	}, nil
}

// StartDungeon spends a token on a new run
func (h *Handler) StartDungeon(ctx context.Context, req *UserRequest) (*StartDungeonResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.StartDungeon(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &StartDungeonResponse{
		State:   out.State,
		Applied: out.Applied,
		Dungeon: out.Dungeon,
	}, nil
}

// Attack fights one exchange in the current room
func (h *Handler) Attack(ctx context.Context, req *UserRequest) (*AttackResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.Attack(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &AttackResponse{State: out.State, Applied: out.Applied}
	if out.Exchange.Applied {
		x := toExchange(out.Exchange)
		resp.Exchange = &x
	}
	return resp, nil
}

// AutoAttack fights until the enemy or the player falls
func (h *Handler) AutoAttack(ctx context.Context, req *AutoAttackRequest) (*AutoAttackResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.IntervalMs < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("interval_ms must not be negative"))
	}

	out, err := h.gameService.AutoAttack(ctx, &game.AutoAttackInput{
		UserID:   req.UserID,
		Interval: time.Duration(req.IntervalMs) * time.Millisecond,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	exchanges := make([]Exchange, 0, len(out.Exchanges))
	for _, x := range out.Exchanges {
		exchanges = append(exchanges, toExchange(x))
	}

	return &AutoAttackResponse{
		State:     out.State,
		Applied:   out.Applied,
		Exchanges: exchanges,
		Stopped:   out.Stopped,
	}, nil
}

// OpenTreasure collects the current room's treasure
func (h *Handler) OpenTreasure(ctx context.Context, req *UserRequest) (*OpenTreasureResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.OpenTreasure(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &OpenTreasureResponse{
		State:   out.State,
		Applied: out.Applied,
		Items:   out.Items,
	}, nil
}

// AdvanceRoom moves to the next room
func (h *Handler) AdvanceRoom(ctx context.Context, req *UserRequest) (*AdvanceRoomResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.AdvanceRoom(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &AdvanceRoomResponse{
		State:       out.State,
		Applied:     out.Applied,
		Room:        out.Room,
		AutoCleared: out.AutoCleared,
		Completed:   out.Completed,
	}, nil
}

func completeResponse(out *game.CompleteDungeonOutput) *CompleteDungeonResponse {
	return &CompleteDungeonResponse{
		State:            out.State,
		Applied:          out.Applied,
		ExperienceGained: out.ExperienceGained,
		LeveledUp:        out.LeveledUp,
		PlayerDefeated:   out.PlayerDefeated,
	}
}

// FinishDungeon settles the run from its recorded progress
func (h *Handler) FinishDungeon(ctx context.Context, req *UserRequest) (*CompleteDungeonResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.FinishDungeon(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return completeResponse(out), nil
}

// CompleteDungeon settles the run with the caller's results
func (h *Handler) CompleteDungeon(ctx context.Context, req *CompleteDungeonRequest) (*CompleteDungeonResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.EnemiesDefeated < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("enemies_defeated must not be negative"))
	}

	out, err := h.gameService.CompleteDungeon(ctx, &game.CompleteDungeonInput{
		UserID:          req.UserID,
		RemainingHealth: req.RemainingHealth,
		EnemiesDefeated: req.EnemiesDefeated,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return completeResponse(out), nil
}

// EquipItem moves an inventory item into its slot
func (h *Handler) EquipItem(ctx context.Context, req *ItemRequest) (*EquipItemResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.gameService.EquipItem(ctx, &game.EquipItemInput{
		UserID: req.UserID,
		ItemID: req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &EquipItemResponse{
		State:    out.State,
		Applied:  out.Applied,
		Slot:     out.Slot,
		Replaced: out.Replaced,
	}, nil
}

// UnequipItem moves the item in a slot back to the inventory
func (h *Handler) UnequipItem(ctx context.Context, req *UnequipItemRequest) (*ItemResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.Slot == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("slot is required"))
	}

	out, err := h.gameService.UnequipItem(ctx, &game.UnequipItemInput{
		UserID: req.UserID,
		Slot:   req.Slot,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ItemResponse{State: out.State, Applied: out.Applied, Item: out.Item}, nil
}

// DropItem destroys an inventory item
func (h *Handler) DropItem(ctx context.Context, req *ItemRequest) (*ItemResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}
	if req.ItemID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item_id is required"))
	}

	out, err := h.gameService.DropItem(ctx, &game.DropItemInput{
		UserID: req.UserID,
		ItemID: req.ItemID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ItemResponse{State: out.State, Applied: out.Applied, Item: out.Item}, nil
}

// UseHealthPotion drinks one potion
func (h *Handler) UseHealthPotion(ctx context.Context, req *UserRequest) (*UseHealthPotionResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.UseHealthPotion(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UseHealthPotionResponse{
		State:   out.State,
		Applied: out.Applied,
		Healed:  out.Healed,
	}, nil
}

// RegenerateHealth applies the daily restore if it is due
func (h *Handler) RegenerateHealth(ctx context.Context, req *UserRequest) (*RegenerateHealthResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.RegenerateHealth(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &RegenerateHealthResponse{
		State:    out.State,
		Applied:  out.Applied,
		Restored: out.Restored,
	}, nil
}

// ClearLevelUpInfo acknowledges the last level-up
func (h *Handler) ClearLevelUpInfo(ctx context.Context, req *UserRequest) (*StateResponse, error) {
	if err := requireUser(req.UserID); err != nil {
		return nil, err
	}

	out, err := h.gameService.ClearLevelUpInfo(ctx, &game.RunInput{UserID: req.UserID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return stateResponse(out.Result), nil
}

// ListExercises returns the exercise catalog
func (h *Handler) ListExercises(ctx context.Context, req *ListExercisesRequest) (*ListExercisesResponse, error) {
	out, err := h.gameService.ListExercises(ctx, &game.ListExercisesInput{
		Muscle:     req.Muscle,
		Type:       req.Type,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListExercisesResponse{
		Exercises: out.Exercises,
		Source:    out.Source,
	}, nil
}

// GetLootOdds reports the rarity bands for a level
func (h *Handler) GetLootOdds(ctx context.Context, req *GetLootOddsRequest) (*GetLootOddsResponse, error) {
	if req.UserID == "" && req.Level < 1 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("user_id or a level of at least 1 is required"))
	}

	out, err := h.gameService.GetLootOdds(ctx, &game.GetLootOddsInput{
		UserID: req.UserID,
		Level:  req.Level,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetLootOddsResponse{
		Level:             out.Level,
		Legendary:         out.Odds.Legendary,
		Rare:              out.Odds.Rare,
		Common:            out.Odds.Common,
		DungeonDifficulty: out.DungeonDifficulty,
	}, nil
}
