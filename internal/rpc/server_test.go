package rpc_test

import (
	"context"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/adapters/telemetry"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"
)

const testDB = `[
  {"location": {"latitude": 409146138, "longitude": -746188906}, "name": "Berkshire Valley Road, Jefferson, NJ"},
  {"location": {"latitude": 408122808, "longitude": -743999179}, "name": "101 New Jersey 10, Whippany, NJ"},
  {"location": {"latitude": 416802456, "longitude": -742370183}, "name": ""}
]`

// startServer brings up a RouteGuide server on a bufconn listener and
// returns a client wired to it.
func startServer(t *testing.T) *rpc.Client {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(dbPath, []byte(testDB), 0o600))

	log := logger.NewWithOutput(io.Discard)
	store, err := featuredb.Load(dbPath, log)
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := rpc.NewServer(store, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = srv.ServeListener(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	client := rpc.NewClient(conn, log, telemetry.NewNoOpTracer())
	client.Delay = func() time.Duration { return 0 }
	return client
}

func TestGetFeature_Known(t *testing.T) {
	client := startServer(t)

	f, ok, err := client.GetFeature(t.Context(), domain.Point{Latitude: 409146138, Longitude: -746188906})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Berkshire Valley Road, Jefferson, NJ", f.Name.String())
}

func TestGetFeature_Unknown(t *testing.T) {
	client := startServer(t)

	_, ok, err := client.GetFeature(t.Context(), domain.Point{Latitude: 1, Longitude: 1})
	require.NoError(t, err)
	assert.False(t, ok, "unknown point must come back without a location")
}

func TestListFeatures(t *testing.T) {
	client := startServer(t)

	features, err := client.ListFeatures(t.Context(), domain.Rectangle{
		Lo: domain.Point{Latitude: 400000000, Longitude: -750000000},
		Hi: domain.Point{Latitude: 420000000, Longitude: -730000000},
	})
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, "Berkshire Valley Road, Jefferson, NJ", features[0].Name.String())

	features, err = client.ListFeatures(t.Context(), domain.Rectangle{
		Lo: domain.Point{Latitude: 0, Longitude: 0},
		Hi: domain.Point{Latitude: 1, Longitude: 1},
	})
	require.NoError(t, err)
	assert.Empty(t, features)
}

func TestRecordRoute(t *testing.T) {
	client := startServer(t)

	points := []domain.Point{
		{Latitude: 409146138, Longitude: -746188906}, // named feature
		{Latitude: 408122808, Longitude: -743999179}, // named feature
		{Latitude: 416802456, Longitude: -742370183}, // known but unnamed
		{Latitude: 1, Longitude: 1},                  // unknown
	}

	summary, err := client.RecordRoute(t.Context(), points)
	require.NoError(t, err)

	assert.Equal(t, int32(4), summary.PointCount)
	// Only named features count.
	assert.Equal(t, int32(2), summary.FeatureCount)
	assert.Positive(t, summary.Distance)
}

func TestRecordRoute_Empty(t *testing.T) {
	client := startServer(t)

	summary, err := client.RecordRoute(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, int32(0), summary.PointCount)
	assert.Equal(t, int32(0), summary.FeatureCount)
	assert.Equal(t, int32(0), summary.Distance)
}

func TestRouteChat(t *testing.T) {
	client := startServer(t)

	notes := []domain.RouteNote{
		{Location: domain.Point{Latitude: 1, Longitude: 1}, Message: "First message"},
		{Location: domain.Point{Latitude: 2, Longitude: 2}, Message: "Second message"},
		{Location: domain.Point{Latitude: 3, Longitude: 3}, Message: "Third message"},
		{Location: domain.Point{Latitude: 1, Longitude: 1}, Message: "First message again"},
	}

	received, err := client.RouteChat(t.Context(), notes)
	require.NoError(t, err)

	// Only the revisited location replays its earlier note.
	require.Len(t, received, 1)
	assert.Equal(t, "First message", received[0].Message)
	assert.True(t, received[0].Location.Equal(domain.Point{Latitude: 1, Longitude: 1}))
}

func TestRouteChat_ReplaysAcrossStreams(t *testing.T) {
	client := startServer(t)

	loc := domain.Point{Latitude: 5, Longitude: 5}
	_, err := client.RouteChat(t.Context(), []domain.RouteNote{{Location: loc, Message: "from stream one"}})
	require.NoError(t, err)

	received, err := client.RouteChat(t.Context(), []domain.RouteNote{{Location: loc, Message: "from stream two"}})
	require.NoError(t, err)

	// Note history survives the first stream.
	require.Len(t, received, 1)
	assert.Equal(t, "from stream one", received[0].Message)
}
