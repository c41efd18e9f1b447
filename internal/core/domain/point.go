package domain

import "math"

// coordFactor converts E7 fixed-point coordinates to degrees.
const coordFactor = 1e7

// earthRadiusMeters is the mean radius of the Earth.
const earthRadiusMeters = 6371000

// Point is a latitude/longitude pair in E7 representation
// (degrees multiplied by 10**7 and rounded to the nearest integer).
type Point struct {
	Latitude  int32 `json:"latitude"`
	Longitude int32 `json:"longitude"`
}

// Equal reports whether two points denote the same location.
func (p Point) Equal(o Point) bool {
	return p.Latitude == o.Latitude && p.Longitude == o.Longitude
}

// Rectangle is a latitude-longitude rectangle, represented as two
// diagonally opposite points. Corner order is not significant.
type Rectangle struct {
	Lo Point `json:"lo"`
	Hi Point `json:"hi"`
}

// Contains reports whether the point lies within the rectangle,
// boundary included. The corners are normalized first, so a rectangle
// declared with swapped corners behaves the same.
func (r Rectangle) Contains(p Point) bool {
	left := min(r.Lo.Longitude, r.Hi.Longitude)
	right := max(r.Lo.Longitude, r.Hi.Longitude)
	bottom := min(r.Lo.Latitude, r.Hi.Latitude)
	top := max(r.Lo.Latitude, r.Hi.Latitude)
	return p.Longitude >= left && p.Longitude <= right &&
		p.Latitude >= bottom && p.Latitude <= top
}

// Distance returns the great-circle distance between two points in meters,
// using the haversine formula from http://mathforum.org/library/drmath/view/51879.html
func Distance(start, end Point) float64 {
	toRadian := func(deg float64) float64 {
		return deg * math.Pi / 180
	}
	lat1 := float64(start.Latitude) / coordFactor
	lat2 := float64(end.Latitude) / coordFactor
	lon1 := float64(start.Longitude) / coordFactor
	lon2 := float64(end.Longitude) / coordFactor

	latRad1 := toRadian(lat1)
	latRad2 := toRadian(lat2)
	deltaLatRad := toRadian(lat2 - lat1)
	deltaLonRad := toRadian(lon2 - lon1)

	a := math.Pow(math.Sin(deltaLatRad/2), 2) +
		math.Cos(latRad1)*math.Cos(latRad2)*math.Pow(math.Sin(deltaLonRad/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}
