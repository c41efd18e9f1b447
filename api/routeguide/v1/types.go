package routeguidev1

import (
	"fmt"

	"google.golang.org/protobuf/protoadapt"
)

// The message types implement the legacy proto interface; the proto runtime
// reconstructs their descriptors from the struct tags.
var (
	_ protoadapt.MessageV1 = (*Point)(nil)
	_ protoadapt.MessageV1 = (*Rectangle)(nil)
	_ protoadapt.MessageV1 = (*Feature)(nil)
	_ protoadapt.MessageV1 = (*RouteNote)(nil)
	_ protoadapt.MessageV1 = (*RouteSummary)(nil)
)

// Point is a latitude-longitude pair in the E7 representation (degrees
// multiplied by 10**7 and rounded to the nearest integer).
type Point struct {
	Latitude  int32 `protobuf:"varint,1,opt,name=latitude,proto3" json:"latitude,omitempty"`
	Longitude int32 `protobuf:"varint,2,opt,name=longitude,proto3" json:"longitude,omitempty"`
}

func (m *Point) Reset()        { *m = Point{} }
func (m *Point) ProtoMessage() {}

func (m *Point) String() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("latitude:%d longitude:%d", m.Latitude, m.Longitude)
}

func (m *Point) GetLatitude() int32 {
	if m != nil {
		return m.Latitude
	}
	return 0
}

func (m *Point) GetLongitude() int32 {
	if m != nil {
		return m.Longitude
	}
	return 0
}

// Rectangle is a latitude-longitude rectangle, represented as two diagonally
// opposite points "lo" and "hi".
type Rectangle struct {
	Lo *Point `protobuf:"bytes,1,opt,name=lo,proto3" json:"lo,omitempty"`
	Hi *Point `protobuf:"bytes,2,opt,name=hi,proto3" json:"hi,omitempty"`
}

func (m *Rectangle) Reset()        { *m = Rectangle{} }
func (m *Rectangle) ProtoMessage() {}

func (m *Rectangle) String() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("lo:{%s} hi:{%s}", m.Lo.String(), m.Hi.String())
}

func (m *Rectangle) GetLo() *Point {
	if m != nil {
		return m.Lo
	}
	return nil
}

func (m *Rectangle) GetHi() *Point {
	if m != nil {
		return m.Hi
	}
	return nil
}

// Feature names something at a given point. If a feature could not be named,
// the name is empty.
type Feature struct {
	Name     string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Location *Point `protobuf:"bytes,2,opt,name=location,proto3" json:"location,omitempty"`
}

func (m *Feature) Reset()        { *m = Feature{} }
func (m *Feature) ProtoMessage() {}

func (m *Feature) String() string {
	if m == nil {
		return ""
	}
	if m.Location == nil {
		return fmt.Sprintf("name:%q", m.Name)
	}
	return fmt.Sprintf("name:%q location:{%s}", m.Name, m.Location.String())
}

func (m *Feature) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Feature) GetLocation() *Point {
	if m != nil {
		return m.Location
	}
	return nil
}

// RouteNote is a message sent while at a given point.
type RouteNote struct {
	Location *Point `protobuf:"bytes,1,opt,name=location,proto3" json:"location,omitempty"`
	Message  string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
}

func (m *RouteNote) Reset()        { *m = RouteNote{} }
func (m *RouteNote) ProtoMessage() {}

func (m *RouteNote) String() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("location:{%s} message:%q", m.Location.String(), m.Message)
}

func (m *RouteNote) GetLocation() *Point {
	if m != nil {
		return m.Location
	}
	return nil
}

func (m *RouteNote) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

// RouteSummary is received in response to a RecordRoute rpc. It contains the
// number of individual points received, the number of detected features, and
// the total distance covered as the cumulative sum of the distance between
// each point.
type RouteSummary struct {
	PointCount   int32 `protobuf:"varint,1,opt,name=point_count,json=pointCount,proto3" json:"point_count,omitempty"`
	FeatureCount int32 `protobuf:"varint,2,opt,name=feature_count,json=featureCount,proto3" json:"feature_count,omitempty"`
	Distance     int32 `protobuf:"varint,3,opt,name=distance,proto3" json:"distance,omitempty"`
	ElapsedTime  int32 `protobuf:"varint,4,opt,name=elapsed_time,json=elapsedTime,proto3" json:"elapsed_time,omitempty"`
}

func (m *RouteSummary) Reset()        { *m = RouteSummary{} }
func (m *RouteSummary) ProtoMessage() {}

func (m *RouteSummary) String() string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("point_count:%d feature_count:%d distance:%d elapsed_time:%d",
		m.PointCount, m.FeatureCount, m.Distance, m.ElapsedTime)
}

func (m *RouteSummary) GetPointCount() int32 {
	if m != nil {
		return m.PointCount
	}
	return 0
}

func (m *RouteSummary) GetFeatureCount() int32 {
	if m != nil {
		return m.FeatureCount
	}
	return 0
}

func (m *RouteSummary) GetDistance() int32 {
	if m != nil {
		return m.Distance
	}
	return 0
}

func (m *RouteSummary) GetElapsedTime() int32 {
	if m != nil {
		return m.ElapsedTime
	}
	return 0
}
