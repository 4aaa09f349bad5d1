package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "rpgrules.character.v1alpha1.CharacterService"

// RPC method names
const (
	MethodCreateCharacter        = "CreateCharacter"
	MethodLevelUpCharacter       = "LevelUpCharacter"
	MethodUpdateBackground       = "UpdateBackground"
	MethodGetCharacter           = "GetCharacter"
	MethodListCharacters         = "ListCharacters"
	MethodDeleteCharacter        = "DeleteCharacter"
	MethodValidateCharacter      = "ValidateCharacter"
	MethodMulticlassCharacter    = "MulticlassCharacter"
	MethodLearnSpell             = "LearnSpell"
	MethodPrepareSpells          = "PrepareSpells"
	MethodExportCharacter        = "ExportCharacter"
	MethodImportCharacter        = "ImportCharacter"
	MethodListCampaignCharacters = "ListCampaignCharacters"
)

// FullMethod returns the wire name of an RPC, e.g.
// "/rpgrules.character.v1alpha1.CharacterService/GetCharacter"
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CharacterServiceServer is the server API for the character service
type CharacterServiceServer interface {
	CreateCharacter(context.Context, *CreateCharacterRequest) (*CharacterResponse, error)
	LevelUpCharacter(context.Context, *CharacterIDRequest) (*LevelUpCharacterResponse, error)
	UpdateBackground(context.Context, *UpdateBackgroundRequest) (*CharacterResponse, error)
	GetCharacter(context.Context, *CharacterIDRequest) (*GetCharacterResponse, error)
	ListCharacters(context.Context, *ListCharactersRequest) (*ListCharactersResponse, error)
	DeleteCharacter(context.Context, *CharacterIDRequest) (*DeleteCharacterResponse, error)
	ValidateCharacter(context.Context, *CharacterIDRequest) (*CharacterResponse, error)
	MulticlassCharacter(context.Context, *MulticlassCharacterRequest) (*CharacterResponse, error)
	LearnSpell(context.Context, *LearnSpellRequest) (*LearnSpellResponse, error)
	PrepareSpells(context.Context, *CharacterIDRequest) (*PrepareSpellsResponse, error)
	ExportCharacter(context.Context, *CharacterIDRequest) (*ExportCharacterResponse, error)
	ImportCharacter(context.Context, *ImportCharacterRequest) (*CharacterResponse, error)
	ListCampaignCharacters(context.Context, *ListCampaignCharactersRequest) (*ListCampaignCharactersResponse, error)
}

// RegisterCharacterServiceServer registers srv on s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}

// CharacterServiceDesc describes the character service for grpc.Server
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodCreateCharacter,
			Handler:    unary(MethodCreateCharacter, CharacterServiceServer.CreateCharacter),
		},
		{
			MethodName: MethodLevelUpCharacter,
			Handler:    unary(MethodLevelUpCharacter, CharacterServiceServer.LevelUpCharacter),
		},
		{
			MethodName: MethodUpdateBackground,
			Handler:    unary(MethodUpdateBackground, CharacterServiceServer.UpdateBackground),
		},
		{
			MethodName: MethodGetCharacter,
			Handler:    unary(MethodGetCharacter, CharacterServiceServer.GetCharacter),
		},
		{
			MethodName: MethodListCharacters,
			Handler:    unary(MethodListCharacters, CharacterServiceServer.ListCharacters),
		},
		{
			MethodName: MethodDeleteCharacter,
			Handler:    unary(MethodDeleteCharacter, CharacterServiceServer.DeleteCharacter),
		},
		{
			MethodName: MethodValidateCharacter,
			Handler:    unary(MethodValidateCharacter, CharacterServiceServer.ValidateCharacter),
		},
		{
			MethodName: MethodMulticlassCharacter,
			Handler:    unary(MethodMulticlassCharacter, CharacterServiceServer.MulticlassCharacter),
		},
		{
			MethodName: MethodLearnSpell,
			Handler:    unary(MethodLearnSpell, CharacterServiceServer.LearnSpell),
		},
		{
			MethodName: MethodPrepareSpells,
			Handler:    unary(MethodPrepareSpells, CharacterServiceServer.PrepareSpells),
		},
		{
			MethodName: MethodExportCharacter,
			Handler:    unary(MethodExportCharacter, CharacterServiceServer.ExportCharacter),
		},
		{
			MethodName: MethodImportCharacter,
			Handler:    unary(MethodImportCharacter, CharacterServiceServer.ImportCharacter),
		},
		{
			MethodName: MethodListCampaignCharacters,
			Handler:    unary(MethodListCampaignCharacters, CharacterServiceServer.ListCampaignCharacters),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpgrules/character/v1alpha1",
}

// unary adapts a typed server method to grpc.MethodHandler, decoding the
// request and running it through the interceptor chain
func unary[Req, Resp any](
	method string,
	call func(CharacterServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(CharacterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(CharacterServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// CharacterServiceClient is the client API for the character service
type CharacterServiceClient interface {
	CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	LevelUpCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*LevelUpCharacterResponse, error)
	UpdateBackground(ctx context.Context, in *UpdateBackgroundRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	GetCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error)
	ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error)
	DeleteCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error)
	ValidateCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	MulticlassCharacter(ctx context.Context, in *MulticlassCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	LearnSpell(ctx context.Context, in *LearnSpellRequest, opts ...grpc.CallOption) (*LearnSpellResponse, error)
	PrepareSpells(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*PrepareSpellsResponse, error)
	ExportCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error)
	ImportCharacter(ctx context.Context, in *ImportCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error)
	ListCampaignCharacters(ctx context.Context, in *ListCampaignCharactersRequest, opts ...grpc.CallOption) (*ListCampaignCharactersResponse, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient returns a client that speaks the JSON codec
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *characterServiceClient) CreateCharacter(ctx context.Context, in *CreateCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, MethodCreateCharacter, in, opts)
}

func (c *characterServiceClient) LevelUpCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*LevelUpCharacterResponse, error) {
	return invoke[LevelUpCharacterResponse](ctx, c.cc, MethodLevelUpCharacter, in, opts)
}

func (c *characterServiceClient) UpdateBackground(ctx context.Context, in *UpdateBackgroundRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, MethodUpdateBackground, in, opts)
}

func (c *characterServiceClient) GetCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*GetCharacterResponse, error) {
	return invoke[GetCharacterResponse](ctx, c.cc, MethodGetCharacter, in, opts)
}

func (c *characterServiceClient) ListCharacters(ctx context.Context, in *ListCharactersRequest, opts ...grpc.CallOption) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c.cc, MethodListCharacters, in, opts)
}

func (c *characterServiceClient) DeleteCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c.cc, MethodDeleteCharacter, in, opts)
}

func (c *characterServiceClient) ValidateCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, MethodValidateCharacter, in, opts)
}

func (c *characterServiceClient) MulticlassCharacter(ctx context.Context, in *MulticlassCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, MethodMulticlassCharacter, in, opts)
}

func (c *characterServiceClient) LearnSpell(ctx context.Context, in *LearnSpellRequest, opts ...grpc.CallOption) (*LearnSpellResponse, error) {
	return invoke[LearnSpellResponse](ctx, c.cc, MethodLearnSpell, in, opts)
}

func (c *characterServiceClient) PrepareSpells(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*PrepareSpellsResponse, error) {
	return invoke[PrepareSpellsResponse](ctx, c.cc, MethodPrepareSpells, in, opts)
}

func (c *characterServiceClient) ExportCharacter(ctx context.Context, in *CharacterIDRequest, opts ...grpc.CallOption) (*ExportCharacterResponse, error) {
	return invoke[ExportCharacterResponse](ctx, c.cc, MethodExportCharacter, in, opts)
}

func (c *characterServiceClient) ImportCharacter(ctx context.Context, in *ImportCharacterRequest, opts ...grpc.CallOption) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c.cc, MethodImportCharacter, in, opts)
}

func (c *characterServiceClient) ListCampaignCharacters(ctx context.Context, in *ListCampaignCharactersRequest, opts ...grpc.CallOption) (*ListCampaignCharactersResponse, error) {
	return invoke[ListCampaignCharactersResponse](ctx, c.cc, MethodListCampaignCharacters, in, opts)
}
