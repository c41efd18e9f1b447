// Package rpc implements the RouteGuide gRPC server and client.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	routeguidev1 "go.arvo.ch/waymark/api/routeguide/v1"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

// DefaultListenAddr is the default server listen address.
const DefaultListenAddr = ":50051"

// Server implements the RouteGuide service over a read-only feature store.
type Server struct {
	routeguidev1.UnimplementedRouteGuideServer

	store ports.FeatureStore
	log   ports.Logger

	// RouteChat keeps every note ever received and replays matches to later
	// senders at the same location.
	mu    sync.Mutex
	notes []domain.RouteNote

	grpcServer *grpc.Server
}

// NewServer creates a RouteGuide server backed by the given store.
func NewServer(store ports.FeatureStore, log ports.Logger) *Server {
	s := &Server{
		store:      store,
		log:        log,
		grpcServer: grpc.NewServer(),
	}
	routeguidev1.RegisterRouteGuideServer(s.grpcServer, s)
	return s
}

// Serve listens on addr and serves until ctx is canceled, then stops
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "addr", addr)
	}
	s.log.Info(fmt.Sprintf("server listening on %s", lis.Addr()))
	return s.ServeListener(ctx, lis)
}

// ServeListener serves on an existing listener. Tests use this with bufconn.
func (s *Server) ServeListener(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		return err
	}
}

// Stop stops the server gracefully.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

// GetFeature returns the feature at the given point. A known but unnamed
// location yields a feature with a location and no name; an unknown location
// yields an empty feature with no location, which clients treat as a miss.
func (s *Server) GetFeature(_ context.Context, point *routeguidev1.Point) (*routeguidev1.Feature, error) {
	log := s.log.Named("GetFeature")
	log.Info(fmt.Sprintf("REQUEST  | Point: %s", point))

	resp := &routeguidev1.Feature{}
	if f, ok := s.store.Lookup(toDomainPoint(point)); ok {
		resp = fromDomainFeature(f)
	}

	log.Info(fmt.Sprintf("RESPONSE | Feature: %s", resp))
	return resp, nil
}

// ListFeatures streams every feature inside the requested rectangle, in
// database order.
func (s *Server) ListFeatures(rect *routeguidev1.Rectangle, stream grpc.ServerStreamingServer[routeguidev1.Feature]) error {
	log := s.log.Named("ListFeatures")
	log.Info(fmt.Sprintf("REQUEST  | Rectangle: %s", rect))

	for _, f := range s.store.Within(toDomainRectangle(rect)) {
		resp := fromDomainFeature(f)
		log.Info(fmt.Sprintf("RESPONSE | Feature: %s", resp))
		if err := stream.Send(resp); err != nil {
			return err
		}
	}
	return nil
}

// RecordRoute consumes a stream of points and replies with a summary:
// point count, count of named features passed, cumulative distance in
// meters, and elapsed wall-clock seconds.
func (s *Server) RecordRoute(stream grpc.ClientStreamingServer[routeguidev1.Point, routeguidev1.RouteSummary]) error {
	log := s.log.Named("RecordRoute")

	var (
		pointCount   int32
		featureCount int32
		distance     float64
		previous     domain.Point
	)
	start := time.Now()

	for {
		point, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			summary := &routeguidev1.RouteSummary{
				PointCount:   pointCount,
				FeatureCount: featureCount,
				Distance:     int32(distance),
				ElapsedTime:  int32(time.Since(start).Seconds()),
			}
			log.Info(fmt.Sprintf("RESPONSE | RouteSummary: %s", summary))
			return stream.SendAndClose(summary)
		}
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("REQUEST  | Point: %s", point))

		p := toDomainPoint(point)
		pointCount++
		if f, ok := s.store.Lookup(p); ok && f.Named() {
			featureCount++
		}
		if pointCount != 1 {
			distance += domain.Distance(previous, p)
		}
		previous = p
	}
}

// RouteChat replays, for every incoming note, all previously received notes
// at the same location, then records the new note.
func (s *Server) RouteChat(stream grpc.BidiStreamingServer[routeguidev1.RouteNote, routeguidev1.RouteNote]) error {
	log := s.log.Named("RouteChat")

	for {
		note, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		log.Info(fmt.Sprintf("REQUEST  | RouteNote: %s", note))

		in := toDomainNote(note)
		s.mu.Lock()
		for _, n := range s.notes {
			if n.Location.Equal(in.Location) {
				resp := fromDomainNote(n)
				log.Info(fmt.Sprintf("RESPONSE | RouteNote: %s", resp))
				if err := stream.Send(resp); err != nil {
					s.mu.Unlock()
					return err
				}
			}
		}
		s.notes = append(s.notes, in)
		s.mu.Unlock()
	}
}
