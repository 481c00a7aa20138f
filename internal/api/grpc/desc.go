package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName     = "ghroast.Roaster"
	roastFullMethod = "/" + serviceName + "/Roast"
)

// RoasterServer is the server API for Roaster service.
// Request is the github username, reply holds roast fields keyed like the http api response.
type RoasterServer interface {
	Roast(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// RegisterRoasterServer registers srv in grpc server s.
func RegisterRoasterServer(s *grpc.Server, srv RoasterServer) {
	s.RegisterService(&roasterServiceDesc, srv)
}

func roastHandler(
	srv interface{},
	ctx context.Context,
	dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoasterServer).Roast(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: roastFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoasterServer).Roast(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

var roasterServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*RoasterServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Roast",
			Handler:    roastHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ghroast/roaster.proto",
}

// RoasterClient is the client API for Roaster service.
type RoasterClient struct {
	cc grpc.ClientConnInterface
}

// NewRoasterClient creates new RoasterClient.
func NewRoasterClient(cc grpc.ClientConnInterface) *RoasterClient {
	return &RoasterClient{cc: cc}
}

// Roast calls Roaster.Roast.
func (c *RoasterClient) Roast(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, roastFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
