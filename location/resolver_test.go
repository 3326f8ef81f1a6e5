package location

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tastefinder/models"
)

func TestResolveKnownID(t *testing.T) {
	r := &StaticResolver{Known: map[string]Place{
		"r1": {Latitude: 52.4751, Longitude: -1.8951, Region: "Digbeth"},
	}}

	got := r.Resolve(models.Restaurant{ID: "r1", Name: "Bangkok Corner"})

	require.True(t, got.HasLocation())
	require.Equal(t, 52.4751, *got.Latitude)
	require.Equal(t, -1.8951, *got.Longitude)
	require.Equal(t, "Digbeth", got.Region)
}

func TestResolveKeepsExistingCoordinates(t *testing.T) {
	lat, lon := 52.5, -1.9
	r := &StaticResolver{Known: map[string]Place{
		"r1": {Latitude: 52.4751, Longitude: -1.8951, Region: "Digbeth"},
	}}

	got := r.Resolve(models.Restaurant{ID: "r1", Latitude: &lat, Longitude: &lon})

	require.Equal(t, lat, *got.Latitude)
	require.Equal(t, lon, *got.Longitude)
	require.Equal(t, "Digbeth", got.Region, "region still backfilled from the table")
}

func TestResolveUnknownWithoutSeedStaysUnresolved(t *testing.T) {
	r := &StaticResolver{}
	got := r.Resolve(models.Restaurant{ID: "mystery"})
	require.False(t, got.HasLocation())
}

func TestResolveSeededFallbackIsDeterministic(t *testing.T) {
	r := &StaticResolver{Seed: 42}

	first := r.Resolve(models.Restaurant{ID: "mystery"})
	second := r.Resolve(models.Restaurant{ID: "mystery"})

	require.True(t, first.HasLocation())
	require.Equal(t, *first.Latitude, *second.Latitude)
	require.Equal(t, *first.Longitude, *second.Longitude)
	require.Equal(t, first.Region, second.Region)

	require.GreaterOrEqual(t, *first.Latitude, 52.42)
	require.LessOrEqual(t, *first.Latitude, 52.52)
	require.GreaterOrEqual(t, *first.Longitude, -1.95)
	require.LessOrEqual(t, *first.Longitude, -1.85)
	require.Contains(t, Regions, first.Region)
}

func TestResolveSeededFallbackVariesByID(t *testing.T) {
	r := &StaticResolver{Seed: 42}

	a := r.Resolve(models.Restaurant{ID: "a"})
	b := r.Resolve(models.Restaurant{ID: "b"})

	require.NotEqual(t, *a.Latitude, *b.Latitude)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	r := &StaticResolver{Seed: 42}
	in := models.Restaurant{ID: "mystery"}

	_ = r.Resolve(in)

	require.Nil(t, in.Latitude)
	require.Nil(t, in.Longitude)
	require.Empty(t, in.Region)
}
