package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "gains.api.v1alpha1.GameService"

// GameServiceServer is implemented by Handler
type GameServiceServer interface {
	GetGameState(context.Context, *UserRequest) (*GetGameStateResponse, error)
	CreateCharacter(context.Context, *CreateCharacterRequest) (*StateResponse, error)
	DeleteCharacter(context.Context, *UserRequest) (*DeleteCharacterResponse, error)
	LogWorkout(context.Context, *LogWorkoutRequest) (*LogWorkoutResponse, error)
	StartDungeon(context.Context, *UserRequest) (*StartDungeonResponse, error)
	Attack(context.Context, *UserRequest) (*AttackResponse, error)
	AutoAttack(context.Context, *AutoAttackRequest) (*AutoAttackResponse, error)
	OpenTreasure(context.Context, *UserRequest) (*OpenTreasureResponse, error)
	AdvanceRoom(context.Context, *UserRequest) (*AdvanceRoomResponse, error)
	FinishDungeon(context.Context, *UserRequest) (*CompleteDungeonResponse, error)
	CompleteDungeon(context.Context, *CompleteDungeonRequest) (*CompleteDungeonResponse, error)
	EquipItem(context.Context, *ItemRequest) (*EquipItemResponse, error)
	UnequipItem(context.Context, *UnequipItemRequest) (*ItemResponse, error)
	DropItem(context.Context, *ItemRequest) (*ItemResponse, error)
	UseHealthPotion(context.Context, *UserRequest) (*UseHealthPotionResponse, error)
	RegenerateHealth(context.Context, *UserRequest) (*RegenerateHealthResponse, error)
	ClearLevelUpInfo(context.Context, *UserRequest) (*StateResponse, error)
	ListExercises(context.Context, *ListExercisesRequest) (*ListExercisesResponse, error)
	GetLootOdds(context.Context, *GetLootOddsRequest) (*GetLootOddsResponse, error)
}

// unary builds the method descriptor for one RPC
func unary[Req, Resp any](name string, call func(GameServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(GameServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(GameServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// GameServiceDesc describes the game service for grpc.Server
var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("GetGameState", GameServiceServer.GetGameState),
		unary("CreateCharacter", GameServiceServer.CreateCharacter),
		unary("DeleteCharacter", GameServiceServer.DeleteCharacter),
		unary("LogWorkout", GameServiceServer.LogWorkout),
		unary("StartDungeon", GameServiceServer.StartDungeon),
		unary("Attack", GameServiceServer.Attack),
		unary("AutoAttack", GameServiceServer.AutoAttack),
		unary("OpenTreasure", GameServiceServer.OpenTreasure),
		unary("AdvanceRoom", GameServiceServer.AdvanceRoom),
		unary("FinishDungeon", GameServiceServer.FinishDungeon),
		unary("CompleteDungeon", GameServiceServer.CompleteDungeon),
		unary("EquipItem", GameServiceServer.EquipItem),
		unary("UnequipItem", GameServiceServer.UnequipItem),
		unary("DropItem", GameServiceServer.DropItem),
		unary("UseHealthPotion", GameServiceServer.UseHealthPotion),
		unary("RegenerateHealth", GameServiceServer.RegenerateHealth),
		unary("ClearLevelUpInfo", GameServiceServer.ClearLevelUpInfo),
		unary("ListExercises", GameServiceServer.ListExercises),
		unary("GetLootOdds", GameServiceServer.GetLootOdds),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "gains/api/v1alpha1/game.proto",
}

// RegisterGameServiceServer registers srv with s
func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}

// GameServiceClient calls the game service. Every call uses the JSON codec.
type GameServiceClient interface {
	GetGameState(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*GetGameStateResponse, error)
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*StateResponse, error)
	DeleteCharacter(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	LogWorkout(ctx context.Context, in *LogWorkoutRequest, opts ...grpc.CallOption) (*LogWorkoutResponse, error)
	StartDungeon(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StartDungeonResponse, error)
	Attack(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*AttackResponse, error)
	AutoAttack(ctx context.Context, in *AutoAttackRequest, opts ...grpc.CallOption) (*AutoAttackResponse, error)
	OpenTreasure(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*OpenTreasureResponse, error)
	AdvanceRoom(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*AdvanceRoomResponse, error)
	FinishDungeon(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error)
	CompleteDungeon(ctx context.Context, in *CompleteDungeonRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error)
	EquipItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error)
	UnequipItem(ctx context.Context, in *UnequipItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	DropItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	UseHealthPotion(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UseHealthPotionResponse, error)
	RegenerateHealth(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*RegenerateHealthResponse, error)
	ClearLevelUpInfo(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StateResponse, error)
	ListExercises(ctx context.Context, in *ListExercisesRequest, opts ...grpc.CallOption) (*ListExercisesResponse, error)
	GetLootOdds(ctx context.Context, in *GetLootOddsRequest, opts ...grpc.CallOption) (*GetLootOddsResponse, error)
}

type gameServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewGameServiceClient wraps a connection
func NewGameServiceClient(cc grpc.ClientConnInterface) GameServiceClient {
	return &gameServiceClient{cc: cc}
}

func invoke[Req, Resp any](ctx context.Context, cc grpc.ClientConnInterface, name string, in *Req, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+name, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *gameServiceClient) GetGameState(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*GetGameStateResponse, error) {
	return invoke[UserRequest, GetGameStateResponse](ctx, c.cc, "GetGameState", in, opts)
}

func (c *gameServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[CreateCharacterRequest, StateResponse](ctx, c.cc, "CreateCharacter", in, opts)
}

func (c *gameServiceClient) DeleteCharacter(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[UserRequest, DeleteCharacterResponse](ctx, c.cc, "DeleteCharacter", in, opts)
}

func (c *gameServiceClient) LogWorkout(ctx context.Context, in *LogWorkoutRequest, opts ...grpc.CallOption) (*LogWorkoutResponse, error) {
	return invoke[LogWorkoutRequest, LogWorkoutResponse](ctx, c.cc, "LogWorkout", in, opts)
}

func (c *gameServiceClient) StartDungeon(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StartDungeonResponse, error) {
	return invoke[UserRequest, StartDungeonResponse](ctx, c.cc, "StartDungeon", in, opts)
}

func (c *gameServiceClient) Attack(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*AttackResponse, error) {
	return invoke[UserRequest, AttackResponse](ctx, c.cc, "Attack", in, opts)
}

func (c *gameServiceClient) AutoAttack(ctx context.Context, in *AutoAttackRequest, opts ...grpc.CallOption) (*AutoAttackResponse, error) {
	return invoke[AutoAttackRequest, AutoAttackResponse](ctx, c.cc, "AutoAttack", in, opts)
}

func (c *gameServiceClient) OpenTreasure(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*OpenTreasureResponse, error) {
	return invoke[UserRequest, OpenTreasureResponse](ctx, c.cc, "OpenTreasure", in, opts)
}

func (c *gameServiceClient) AdvanceRoom(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*AdvanceRoomResponse, error) {
	return invoke[UserRequest, AdvanceRoomResponse](ctx, c.cc, "AdvanceRoom", in, opts)
}

func (c *gameServiceClient) FinishDungeon(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error) {
	return invoke[UserRequest, CompleteDungeonResponse](ctx, c.cc, "FinishDungeon", in, opts)
}

func (c *gameServiceClient) CompleteDungeon(ctx context.Context, in *CompleteDungeonRequest, opts ...grpc.CallOption) (*CompleteDungeonResponse, error) {
	return invoke[CompleteDungeonRequest, CompleteDungeonResponse](ctx, c.cc, "CompleteDungeon", in, opts)
}

func (c *gameServiceClient) EquipItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*EquipItemResponse, error) {
	return invoke[ItemRequest, EquipItemResponse](ctx, c.cc, "EquipItem", in, opts)
}

func (c *gameServiceClient) UnequipItem(ctx context.Context, in *UnequipItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[UnequipItemRequest, ItemResponse](ctx, c.cc, "UnequipItem", in, opts)
}

func (c *gameServiceClient) DropItem(ctx context.Context, in *ItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	return invoke[ItemRequest, ItemResponse](ctx, c.cc, "DropItem", in, opts)
}

func (c *gameServiceClient) UseHealthPotion(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UseHealthPotionResponse, error) {
	return invoke[UserRequest, UseHealthPotionResponse](ctx, c.cc, "UseHealthPotion", in, opts)
}

func (c *gameServiceClient) RegenerateHealth(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*RegenerateHealthResponse, error) {
	return invoke[UserRequest, RegenerateHealthResponse](ctx, c.cc, "RegenerateHealth", in, opts)
}

func (c *gameServiceClient) ClearLevelUpInfo(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*StateResponse, error) {
	return invoke[UserRequest, StateResponse](ctx, c.cc, "ClearLevelUpInfo", in, opts)
}

func (c *gameServiceClient) ListExercises(ctx context.Context, in *ListExercisesRequest, opts ...grpc.CallOption) (*ListExercisesResponse, error) {
	return invoke[ListExercisesRequest, ListExercisesResponse](ctx, c.cc, "ListExercises", in, opts)
}

func (c *gameServiceClient) GetLootOdds(ctx context.Context, in *GetLootOddsRequest, opts ...grpc.CallOption) (*GetLootOddsResponse, error) {
	return invoke[GetLootOddsRequest, GetLootOddsResponse](ctx, c.cc, "GetLootOdds", in, opts)
}
