package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"tastefinder/models"
)

func TestParseProfileAbsent(t *testing.T) {
	require.Nil(t, ParseProfile(url.Values{}))
	require.Nil(t, ParseProfile(url.Values{"lat": {"52.48"}, "lon": {"-1.9"}}))
}

func TestParseProfile(t *testing.T) {
	q := url.Values{
		"cuisines": {"Thai, Italian ,"},
		"price":    {"mid"},
		"spice":    {"hot"},
	}
	p := ParseProfile(q)

	require.NotNil(t, p)
	require.Equal(t, []string{"Thai", "Italian"}, p.Cuisines)
	require.Equal(t, models.PriceMid, p.PricePreference)
	require.Equal(t, models.SpiceHot, p.SpiceLevel)
}

func TestParseProfilePartial(t *testing.T) {
	p := ParseProfile(url.Values{"spice": {"mild"}})
	require.NotNil(t, p)
	require.Empty(t, p.Cuisines)
	require.Equal(t, models.SpiceMild, p.SpiceLevel)
}

func TestParseRankOptionsDefaultsToZero(t *testing.T) {
	opts := ParseRankOptions(url.Values{})
	require.Zero(t, opts.TasteWeight)
	require.Zero(t, opts.DistanceWeight)
	require.Zero(t, opts.MaxDistanceKm)
}

func TestParseRankOptions(t *testing.T) {
	q := url.Values{
		"taste_weight":    {"0.6"},
		"distance_weight": {"0.4"},
		"radius":          {"8"},
	}
	opts := ParseRankOptions(q)
	require.Equal(t, 0.6, opts.TasteWeight)
	require.Equal(t, 0.4, opts.DistanceWeight)
	require.Equal(t, 8.0, opts.MaxDistanceKm)
}
