package grpcx

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/outcome-kit/expected/pkg/result"
)

// CodeOf maps a fault category to its canonical gRPC status code.
func CodeOf(cat result.Category) codes.Code {
	switch cat {
	case result.CategoryNotFound:
		return codes.NotFound
	case result.CategoryUnauthorized:
		return codes.Unauthenticated
	case result.CategoryForbidden:
		return codes.PermissionDenied
	case result.CategoryCanceled:
		return codes.Canceled
	case result.CategoryTimeout:
		return codes.DeadlineExceeded
	case result.CategoryInternal:
		return codes.Internal
	default:
		return codes.InvalidArgument
	}
}

// StatusOf converts a fault into a gRPC status carrying the fault message
// and the category as structured detail.
func StatusOf(f *result.Fault) *status.Status {
	if f == nil {
		return status.New(codes.OK, "")
	}

	st := status.New(CodeOf(f.Category), f.Message)

	detail, err := structpb.NewStruct(map[string]any{
		"category": string(f.Category),
	})
	if err != nil {
		return st
	}
	if rich, err := st.WithDetails(detail); err == nil {
		st = rich
	}
	return st
}

// UnaryServerInterceptor converts *result.Fault errors returned by handlers
// into gRPC status errors. Other error types pass through untouched.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler) (any, error) {

		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		f, ok := err.(*result.Fault)
		if !ok {
			// Not ours, return as-is.
			return nil, err
		}
		return nil, StatusOf(f).Err()
	}
}
