package ports

import "go.arvo.ch/waymark/internal/core/domain"

// FeatureStore provides read access to the feature database. The database
// is read once at startup and never mutated afterwards.
//
//go:generate go run go.uber.org/mock/mockgen -source=feature_store.go -destination=mocks/mock_feature_store.go -package=mocks
type FeatureStore interface {
	// Lookup returns the feature at the exact location, if any.
	Lookup(p domain.Point) (domain.Feature, bool)

	// Within returns all features whose location lies inside the rectangle,
	// in database order.
	Within(r domain.Rectangle) []domain.Feature

	// Random returns the location of a uniformly random feature.
	// It returns ErrFeatureDBEmpty if the store holds no features.
	Random() (domain.Point, error)

	// Len returns the number of features in the store.
	Len() int
}
