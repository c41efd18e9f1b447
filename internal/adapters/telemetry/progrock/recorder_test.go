package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vito "github.com/vito/progrock"
	"go.arvo.ch/waymark/internal/adapters/telemetry/progrock"
	"go.trai.ch/zerr"
)

func TestTracer_SpanLifecycle(t *testing.T) {
	tape := vito.NewTape()
	tracer := progrock.NewTracer(tape)

	_, span := tracer.Start(context.Background(), "RecordRoute")
	n, err := span.Write([]byte("point 1\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	span.SetAttribute("points", 10)
	span.End()

	require.NoError(t, tracer.Close())
}

func TestTracer_SpanError(t *testing.T) {
	tracer := progrock.NewTracer(vito.NewTape())

	_, span := tracer.Start(context.Background(), "RouteChat")
	span.RecordError(zerr.New("stream broken"))
	span.End()

	require.NoError(t, tracer.Close())
}
