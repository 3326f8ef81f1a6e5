// Package location fills in missing coordinates and region labels for
// restaurant records. Ranking code receives the resolver as an explicit
// dependency so tests can swap in a fixed table.
package location

import (
	"hash/fnv"
	"math/rand"

	"tastefinder/models"
)

// Birmingham bounding box used by the fallback generator.
const (
	minLat = 52.42
	maxLat = 52.52
	minLon = -1.95
	maxLon = -1.85
)

// Regions are the neighbourhood labels the fallback generator assigns.
var Regions = []string{
	"City Centre",
	"Digbeth",
	"Jewellery Quarter",
	"Moseley",
	"Kings Heath",
	"Harborne",
	"Edgbaston",
	"Selly Oak",
	"Stirchley",
}

// Place is a resolved location for one restaurant id.
type Place struct {
	Latitude  float64
	Longitude float64
	Region    string
}

// Resolver fills in latitude, longitude and region on a record that lacks
// them. Implementations return a copy and never mutate the input. A
// record may come back still unresolved; distance-dependent callers then
// exclude it.
type Resolver interface {
	Resolve(r models.Restaurant) models.Restaurant
}

// StaticResolver resolves known ids from a fixed table. When Seed is
// non-zero, unknown ids get a stable pseudo-random placement inside the
// Birmingham bounding box, derived from the seed and the id so repeated
// calls agree. With Seed zero, unknown ids stay unresolved.
type StaticResolver struct {
	Known map[string]Place
	Seed  int64
}

// Resolve implements Resolver.
func (s *StaticResolver) Resolve(r models.Restaurant) models.Restaurant {
	if r.HasLocation() {
		if r.Region == "" {
			if p, ok := s.Known[r.ID]; ok {
				r.Region = p.Region
			}
		}
		return r
	}

	if p, ok := s.Known[r.ID]; ok {
		r.Latitude = &p.Latitude
		r.Longitude = &p.Longitude
		if r.Region == "" {
			r.Region = p.Region
		}
		return r
	}

	if s.Seed == 0 {
		return r
	}

	rng := rand.New(rand.NewSource(s.Seed ^ int64(idHash(r.ID))))
	lat := minLat + rng.Float64()*(maxLat-minLat)
	lon := minLon + rng.Float64()*(maxLon-minLon)
	r.Latitude = &lat
	r.Longitude = &lon
	if r.Region == "" {
		r.Region = Regions[rng.Intn(len(Regions))]
	}
	return r
}

func idHash(id string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return h.Sum32()
}
