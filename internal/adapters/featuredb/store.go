// Package featuredb implements the JSON-backed feature database.
package featuredb

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDBPath is the feature database location used when no flag is given.
const DefaultDBPath = "data/route_guide_db.json"

// featureDTO mirrors one entry of the database file:
// [{"location": {"latitude": 409146138, "longitude": -746188906}, "name": "..."}, ...]
type featureDTO struct {
	Location struct {
		Latitude  int32 `json:"latitude"`
		Longitude int32 `json:"longitude"`
	} `json:"location"`
	Name string `json:"name"`
}

// Store implements ports.FeatureStore. The database is read once at startup
// and never mutated afterwards, so reads need no locking.
type Store struct {
	features []domain.Feature
	byPoint  map[domain.Point]int
	digest   string
}

var _ ports.FeatureStore = (*Store)(nil)

// Load reads the feature database from path.
func Load(path string, log ports.Logger) (*Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read feature database"), "path", path)
	}

	var dtos []featureDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil, zerr.With(domain.ErrFeatureDBParse, "path", path)
	}

	s := &Store{
		features: make([]domain.Feature, 0, len(dtos)),
		byPoint:  make(map[domain.Point]int, len(dtos)),
		digest:   fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}
	for _, dto := range dtos {
		p := domain.Point{Latitude: dto.Location.Latitude, Longitude: dto.Location.Longitude}
		s.byPoint[p] = len(s.features)
		s.features = append(s.features, domain.Feature{
			Name:     domain.NewInternedString(dto.Name),
			Location: p,
		})
	}

	if log != nil {
		log.Info(fmt.Sprintf("DB parsed, loaded %d features (digest %s)", len(s.features), s.digest))
	}
	return s, nil
}

// Lookup returns the feature at the exact location, if any. When the same
// location appears more than once in the database, the last entry wins.
func (s *Store) Lookup(p domain.Point) (domain.Feature, bool) {
	i, ok := s.byPoint[p]
	if !ok {
		return domain.Feature{}, false
	}
	return s.features[i], true
}

// Within returns all features inside the rectangle, in database order.
func (s *Store) Within(r domain.Rectangle) []domain.Feature {
	var out []domain.Feature
	for _, f := range s.features {
		if r.Contains(f.Location) {
			out = append(out, f)
		}
	}
	return out
}

// Random returns the location of a uniformly random feature.
func (s *Store) Random() (domain.Point, error) {
	if len(s.features) == 0 {
		return domain.Point{}, domain.ErrFeatureDBEmpty
	}
	return s.features[rand.IntN(len(s.features))].Location, nil
}

// Len returns the number of features in the store.
func (s *Store) Len() int {
	return len(s.features)
}

// Digest returns the xxhash64 digest of the raw database file.
func (s *Store) Digest() string {
	return s.digest
}
