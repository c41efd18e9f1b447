// Package routeguidev1 contains the wire types and service definition for
// the RouteGuide gRPC service, as declared in route_guide.proto.
//
// The Go types are maintained by hand rather than generated, so building the
// module needs no protoc toolchain. The messages carry protobuf struct tags
// and implement the legacy proto message interface; the grpc proto codec
// derives their descriptors from the tags. Keep the tags in sync with
// route_guide.proto when changing either.
package routeguidev1
