package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/dungeon-gains/internal/engine"
	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/handlers/gains/v1alpha1"
	"github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game"
	gamemock "github.com/KirkDiggler/dungeon-gains/internal/orchestrators/game/mock"
	"github.com/KirkDiggler/dungeon-gains/internal/testutils"
)

// ServiceTestSuite drives the handler through a real gRPC server and the
// JSON codec
type ServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockGame *gamemock.MockService
	server   *grpc.Server
	conn     *grpc.ClientConn
	client   v1alpha1.GameServiceClient
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGame = gamemock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{GameService: s.mockGame})
	s.Require().NoError(err)

	lis := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer()
	v1alpha1.RegisterGameServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(lis)
	}()

	s.conn, err = grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	s.Require().NoError(err)
	s.client = v1alpha1.NewGameServiceClient(s.conn)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.Require().NoError(s.conn.Close())
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *ServiceTestSuite) TestRoundTrip() {
	state := testutils.DemoHero()
	s.mockGame.EXPECT().
		GetGameState(gomock.Any(), &game.GetGameStateInput{UserID: testutils.TestUserID}).
		Return(&game.GetGameStateOutput{State: state}, nil)

	resp, err := s.client.GetGameState(context.Background(), &v1alpha1.UserRequest{UserID: testutils.TestUserID})
	s.Require().NoError(err)
	s.Require().True(resp.State.HasCharacter())
	s.Equal("Demo Hero", resp.State.Player.Name)
	s.Equal(5, resp.State.Player.Stats.Level)
	s.Require().NotNil(resp.State.Player.EquippedItems.Weapon)
	s.Equal("item_demo_weapon", resp.State.Player.EquippedItems.Weapon.ID)
	s.Equal(state.Player.PersonalRecords, resp.State.Player.PersonalRecords)
}

func (s *ServiceTestSuite) TestRequestFieldsArrive() {
	s.mockGame.EXPECT().
		UnequipItem(gomock.Any(), &game.UnequipItemInput{UserID: testutils.TestUserID, Slot: entities.SlotArmor}).
		Return(&game.UnequipItemOutput{Result: engine.Result{State: testutils.NewGameState()}}, nil)

	resp, err := s.client.UnequipItem(context.Background(), &v1alpha1.UnequipItemRequest{
		UserID: testutils.TestUserID,
		Slot:   entities.SlotArmor,
	})
	s.Require().NoError(err)
	s.False(resp.Applied)
	s.Nil(resp.Item)
}

func (s *ServiceTestSuite) TestErrorCodesSurvive() {
	s.mockGame.EXPECT().
		StartDungeon(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("no character for user"))

	_, err := s.client.StartDungeon(context.Background(), &v1alpha1.UserRequest{UserID: "user_missing"})
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))
}

func (s *ServiceTestSuite) TestValidationBeforeService() {
	_, err := s.client.DropItem(context.Background(), &v1alpha1.ItemRequest{UserID: testutils.TestUserID})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
