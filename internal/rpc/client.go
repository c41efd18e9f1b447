package rpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	routeguidev1 "go.arvo.ch/waymark/api/routeguide/v1"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// DefaultTarget is the default server address the client dials.
const DefaultTarget = "localhost:50051"

// Client wraps the RouteGuide stub with logging and tracing.
type Client struct {
	conn   *grpc.ClientConn
	stub   routeguidev1.RouteGuideClient
	log    ports.Logger
	tracer ports.Tracer

	// Delay paces RecordRoute writes, simulating traversal. Tests replace it
	// with a zero delay.
	Delay func() time.Duration
}

// Dial connects to a RouteGuide server. The connection is lazy; the first
// RPC triggers it.
func Dial(target string, log ports.Logger, tracer ports.Tracer) (*Client, error) {
	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "client creation failed"), "target", target)
	}
	return NewClient(conn, log, tracer), nil
}

// NewClient wraps an existing connection. Tests use this with bufconn.
func NewClient(conn *grpc.ClientConn, log ports.Logger, tracer ports.Tracer) *Client {
	return &Client{
		conn:   conn,
		stub:   routeguidev1.NewRouteGuideClient(conn),
		log:    log,
		tracer: tracer,
		Delay:  randomDelay,
	}
}

// Close tears down the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// randomDelay returns a random traversal pause between 500 and 1500 ms.
func randomDelay() time.Duration {
	return time.Duration(500+rand.IntN(1001)) * time.Millisecond
}

// GetFeature asks for the feature at p. The second return value reports
// whether the server knows the location at all.
func (c *Client) GetFeature(ctx context.Context, p domain.Point) (domain.Feature, bool, error) {
	log := c.log.Named("GetFeature")

	req := fromDomainPoint(p)
	log.Info(fmt.Sprintf("REQUEST  | Point: %s", req))
	resp, err := c.stub.GetFeature(ctx, req)
	if err != nil {
		return domain.Feature{}, false, zerr.Wrap(err, "GetFeature failed")
	}
	log.Info(fmt.Sprintf("RESPONSE | Feature: %s", resp))

	// The server marks an unknown point by leaving the location unset.
	if resp.GetLocation() == nil {
		return domain.Feature{}, false, nil
	}
	return domain.Feature{
		Name:     domain.NewInternedString(resp.GetName()),
		Location: toDomainPoint(resp.GetLocation()),
	}, true, nil
}

// ListFeatures collects all features inside the rectangle.
func (c *Client) ListFeatures(ctx context.Context, rect domain.Rectangle) ([]domain.Feature, error) {
	log := c.log.Named("ListFeatures")

	req := &routeguidev1.Rectangle{
		Lo: fromDomainPoint(rect.Lo),
		Hi: fromDomainPoint(rect.Hi),
	}
	log.Info(fmt.Sprintf("REQUEST  | Rectangle: %s", req))

	stream, err := c.stub.ListFeatures(ctx, req)
	if err != nil {
		return nil, zerr.Wrap(err, "ListFeatures failed")
	}

	var features []domain.Feature
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return features, nil
		}
		if err != nil {
			return nil, zerr.Wrap(err, "ListFeatures stream broke")
		}
		log.Info(fmt.Sprintf("RESPONSE | Feature: %s", resp))
		features = append(features, domain.Feature{
			Name:     domain.NewInternedString(resp.GetName()),
			Location: toDomainPoint(resp.GetLocation()),
		})
	}
}

// RecordRoute streams the given points, pacing each write with Delay, and
// returns the server's summary.
func (c *Client) RecordRoute(ctx context.Context, points []domain.Point) (domain.RouteSummary, error) {
	log := c.log.Named("RecordRoute")
	ctx, span := c.tracer.Start(ctx, "RecordRoute")
	defer span.End()

	stream, err := c.stub.RecordRoute(ctx)
	if err != nil {
		return domain.RouteSummary{}, zerr.Wrap(err, "RecordRoute failed")
	}

	for _, p := range points {
		req := fromDomainPoint(p)
		log.Info(fmt.Sprintf("REQUEST  | Point: %s", req))
		_, _ = fmt.Fprintf(span, "point %s\n", req)
		if err := stream.Send(req); err != nil {
			// Broken stream; the status arrives via CloseAndRecv.
			break
		}
		if d := c.Delay(); d > 0 {
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return domain.RouteSummary{}, ctx.Err()
			}
		}
	}

	resp, err := stream.CloseAndRecv()
	if err != nil {
		span.RecordError(err)
		return domain.RouteSummary{}, zerr.Wrap(err, "RecordRoute close failed")
	}
	log.Info(fmt.Sprintf("RESPONSE | RouteSummary: %s", resp))
	span.SetAttribute("points", resp.GetPointCount())

	return domain.RouteSummary{
		PointCount:   resp.GetPointCount(),
		FeatureCount: resp.GetFeatureCount(),
		Distance:     resp.GetDistance(),
		ElapsedTime:  int64(resp.GetElapsedTime()),
	}, nil
}

// RouteChat sends the notes while concurrently receiving replayed ones. It
// returns every note the server sent back.
func (c *Client) RouteChat(ctx context.Context, notes []domain.RouteNote) ([]domain.RouteNote, error) {
	log := c.log.Named("RouteChat")
	ctx, span := c.tracer.Start(ctx, "RouteChat")
	defer span.End()

	stream, err := c.stub.RouteChat(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, "RouteChat failed")
	}

	var received []domain.RouteNote
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, n := range notes {
			req := fromDomainNote(n)
			log.Info(fmt.Sprintf("REQUEST  | RouteNote: %s", req))
			if err := stream.Send(req); err != nil {
				return zerr.Wrap(err, "RouteChat send failed")
			}
		}
		return stream.CloseSend()
	})

	g.Go(func() error {
		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return zerr.Wrap(err, "RouteChat recv failed")
			}
			log.Info(fmt.Sprintf("RESPONSE | RouteNote: %s", resp))
			received = append(received, toDomainNote(resp))
		}
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("received", len(received))
	return received, nil
}
