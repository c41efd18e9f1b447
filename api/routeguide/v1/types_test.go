package routeguidev1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	routeguidev1 "go.arvo.ch/waymark/api/routeguide/v1"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/protoadapt"
)

// The wire types are hand-maintained; this guards the struct tags against
// drift by pushing a nested message through the proto runtime.
func TestWireRoundTrip(t *testing.T) {
	in := &routeguidev1.Feature{
		Name: "Berkshire Valley Road, Jefferson, NJ",
		Location: &routeguidev1.Point{
			Latitude:  409146138,
			Longitude: -746188906,
		},
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(in))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	out := &routeguidev1.Feature{}
	require.NoError(t, proto.Unmarshal(data, protoadapt.MessageV2Of(out)))

	assert.Equal(t, in.GetName(), out.GetName())
	assert.Equal(t, in.GetLocation().GetLatitude(), out.GetLocation().GetLatitude())
	assert.Equal(t, in.GetLocation().GetLongitude(), out.GetLocation().GetLongitude())
}

func TestSummaryRoundTrip(t *testing.T) {
	in := &routeguidev1.RouteSummary{
		PointCount:   10,
		FeatureCount: 3,
		Distance:     128310,
		ElapsedTime:  9,
	}

	data, err := proto.Marshal(protoadapt.MessageV2Of(in))
	require.NoError(t, err)

	out := &routeguidev1.RouteSummary{}
	require.NoError(t, proto.Unmarshal(data, protoadapt.MessageV2Of(out)))
	assert.Equal(t, in.String(), out.String())
}

func TestNilGetters(t *testing.T) {
	var f *routeguidev1.Feature
	assert.Equal(t, "", f.GetName())
	assert.Nil(t, f.GetLocation())
	assert.Equal(t, int32(0), f.GetLocation().GetLatitude())
}
