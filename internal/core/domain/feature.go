// Package domain contains the core types of the waymark route guide.
package domain

// Feature names a point of interest at a given location. A feature with an
// empty name marks a location that is known but unnamed.
// Name uses InternedString because the same names repeat across route
// recordings and chat history.
type Feature struct {
	Name     InternedString
	Location Point
}

// Named reports whether the feature carries a non-empty name.
func (f Feature) Named() bool {
	return f.Name.String() != ""
}

// RouteNote is a message tied to a location, exchanged over the RouteChat
// stream.
type RouteNote struct {
	Location Point
	Message  string
}

// RouteSummary aggregates a recorded route: how many points were streamed,
// how many of them sat on a named feature, the cumulative distance in
// meters, and the elapsed wall-clock seconds.
type RouteSummary struct {
	PointCount   int32
	FeatureCount int32
	Distance     int32
	ElapsedTime  int64
}
