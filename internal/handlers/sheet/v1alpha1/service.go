// Package v1alpha1 exposes the sheet orchestrator over gRPC. Requests and
// responses are google.protobuf.Struct documents so clients can send the
// untyped sheets the rules engine validates.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "sheet.v1alpha1.SheetService"

// Method names
const (
	MethodValidateCharacter   = "ValidateCharacter"
	MethodSubmitCharacter     = "SubmitCharacter"
	MethodGetCharacter        = "GetCharacter"
	MethodListCharacters      = "ListCharacters"
	MethodDeleteCharacter     = "DeleteCharacter"
	MethodRefreshSpellcasting = "RefreshSpellcasting"
	MethodCreateAbilityDraft  = "CreateAbilityDraft"
	MethodGetAbilityDraft     = "GetAbilityDraft"
	MethodUpdateAbilityDraft  = "UpdateAbilityDraft"
	MethodRollAbilityDraft    = "RollAbilityDraft"
	MethodGetClassRules       = "GetClassRules"
)

// SheetServiceServer is the server API for sheet.v1alpha1.SheetService
type SheetServiceServer interface {
	ValidateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RefreshSpellcasting(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CreateAbilityDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetAbilityDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAbilityDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAbilityDraft(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetClassRules(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type serverCall func(SheetServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call serverCall) grpc.MethodHandler {
	fullMethod := "/" + ServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SheetServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SheetServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ServiceDesc describes sheet.v1alpha1.SheetService for grpc.ServiceRegistrar
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodValidateCharacter, Handler: unaryHandler(MethodValidateCharacter, SheetServiceServer.ValidateCharacter)},
		{MethodName: MethodSubmitCharacter, Handler: unaryHandler(MethodSubmitCharacter, SheetServiceServer.SubmitCharacter)},
		{MethodName: MethodGetCharacter, Handler: unaryHandler(MethodGetCharacter, SheetServiceServer.GetCharacter)},
		{MethodName: MethodListCharacters, Handler: unaryHandler(MethodListCharacters, SheetServiceServer.ListCharacters)},
		{MethodName: MethodDeleteCharacter, Handler: unaryHandler(MethodDeleteCharacter, SheetServiceServer.DeleteCharacter)},
		{
			MethodName: MethodRefreshSpellcasting,
			Handler:    unaryHandler(MethodRefreshSpellcasting, SheetServiceServer.RefreshSpellcasting),
		},
		{
			MethodName: MethodCreateAbilityDraft,
			Handler:    unaryHandler(MethodCreateAbilityDraft, SheetServiceServer.CreateAbilityDraft),
		},
		{MethodName: MethodGetAbilityDraft, Handler: unaryHandler(MethodGetAbilityDraft, SheetServiceServer.GetAbilityDraft)},
		{
			MethodName: MethodUpdateAbilityDraft,
			Handler:    unaryHandler(MethodUpdateAbilityDraft, SheetServiceServer.UpdateAbilityDraft),
		},
		{MethodName: MethodRollAbilityDraft, Handler: unaryHandler(MethodRollAbilityDraft, SheetServiceServer.RollAbilityDraft)},
		{MethodName: MethodGetClassRules, Handler: unaryHandler(MethodGetClassRules, SheetServiceServer.GetClassRules)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sheet/v1alpha1/sheet.proto",
}

// RegisterSheetServiceServer registers srv with the gRPC server
func RegisterSheetServiceServer(s grpc.ServiceRegistrar, srv SheetServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls sheet.v1alpha1.SheetService methods by name
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a client on an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call invokes method with a request document
func (c *Client) Call(ctx context.Context, method string, req *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
