package v1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/KirkDiggler/rpg-rules/internal/entities/dnd5e"
	rpgerrors "github.com/KirkDiggler/rpg-rules/internal/errors"
	"github.com/KirkDiggler/rpg-rules/internal/handlers/character/v1alpha1"
	campaignmock "github.com/KirkDiggler/rpg-rules/internal/repositories/campaign/mock"
	"github.com/KirkDiggler/rpg-rules/internal/services/character"
	charactermock "github.com/KirkDiggler/rpg-rules/internal/services/character/mock"
	"github.com/KirkDiggler/rpg-rules/internal/testutils"
)

// WireTestSuite drives the handler through a real gRPC server and client
// over an in-memory listener
type WireTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharService *charactermock.MockService
	server          *grpc.Server
	conn            *grpc.ClientConn
	client          v1alpha1.CharacterServiceClient
	methods         []string
	ctx             context.Context
}

func TestWireSuite(t *testing.T) {
	suite.Run(t, new(WireTestSuite))
}

func (s *WireTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharService = charactermock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.methods = nil

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		CharacterService: s.mockCharService,
		Roster:           campaignmock.NewMockRoster(s.ctrl),
	})
	s.Require().NoError(err)

	listener := bufconn.Listen(1024 * 1024)
	s.server = grpc.NewServer(grpc.UnaryInterceptor(
		func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
			s.methods = append(s.methods, info.FullMethod)
			return next(ctx, req)
		},
	))
	v1alpha1.RegisterCharacterServiceServer(s.server, handler)
	go func() {
		_ = s.server.Serve(listener)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.conn = conn
	s.client = v1alpha1.NewCharacterServiceClient(conn)
}

func (s *WireTestSuite) TearDownTest() {
	s.Require().NoError(s.conn.Close())
	s.server.Stop()
	s.ctrl.Finish()
}

func (s *WireTestSuite) TestGetCharacterRoundTrip() {
	stored := testutils.CreateTestWizard("char_1")
	s.mockCharService.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "char_1"}).
		Return(&character.GetCharacterOutput{Character: stored}, nil)

	resp, err := s.client.GetCharacter(s.ctx, &v1alpha1.CharacterIDRequest{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.Equal(stored, resp.Character)
	s.Equal([]string{v1alpha1.FullMethod(v1alpha1.MethodGetCharacter)}, s.methods)
	s.Equal("/rpgrules.character.v1alpha1.CharacterService/GetCharacter", s.methods[0])
}

func (s *WireTestSuite) TestErrorsSurviveTheWire() {
	s.mockCharService.EXPECT().
		MulticlassCharacter(gomock.Any(), gomock.Any()).
		Return(nil, rpgerrors.Ineligiblef("fighter cannot multiclass into wizard").
			WithMeta("failures", []string{"wizard multiclass requires intelligence 13 (has 9)"}))

	_, err := s.client.MulticlassCharacter(s.ctx, &v1alpha1.MulticlassCharacterRequest{
		CharacterID: "char_1",
		Class:       "wizard",
	})
	s.Require().Error(err)

	restored := rpgerrors.FromGRPCError(err)
	s.True(rpgerrors.IsIneligible(restored))
	s.Equal("fighter cannot multiclass into wizard", rpgerrors.GetMessage(restored))
}

func (s *WireTestSuite) TestBackgroundPatchKeepsNilAndEmptyApart() {
	s.mockCharService.EXPECT().
		UpdateBackground(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *character.UpdateBackgroundInput) (*character.UpdateBackgroundOutput, error) {
			s.Nil(input.Patch.Backstory)
			s.Nil(input.Patch.Personality)
			s.NotNil(input.Patch.Flaws)
			s.Empty(input.Patch.Flaws)
			s.Equal([]string{"freedom"}, input.Patch.Ideals)

			updated := testutils.CreateTestCharacter(input.CharacterID)
			updated.Traits.Flaws = []string{}
			return &character.UpdateBackgroundOutput{
				Character:  updated,
				Validation: &dnd5e.ValidationResult{IsValid: true},
			}, nil
		})

	resp, err := s.client.UpdateBackground(s.ctx, &v1alpha1.UpdateBackgroundRequest{
		CharacterID: "char_1",
		Ideals:      []string{"freedom"},
		Flaws:       []string{},
	})
	s.Require().NoError(err)
	s.True(resp.Validation.IsValid)
}
