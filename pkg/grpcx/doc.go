// Package grpcx adapts faults to the gRPC transport: the same category
// classification the render package applies to HTTP, expressed as canonical
// gRPC status codes with the category attached as structured detail.
package grpcx
