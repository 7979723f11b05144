package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aquadrop/internal/domain"
	"aquadrop/internal/geo"
)

func coord(t *testing.T, lat, lon float64) domain.Coordinate {
	t.Helper()
	c, ok := domain.NewCoordinate(lat, lon)
	require.True(t, ok)
	return c
}

func TestDistance_ZeroForIdenticalPoints(t *testing.T) {
	t.Parallel()

	points := []domain.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 28.6139, Longitude: 77.2090},
		{Latitude: -33.8688, Longitude: 151.2093},
	}
	for _, p := range points {
		require.Zero(t, geo.Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]domain.Coordinate{
		{coord(t, 28.6139, 77.2090), coord(t, 28.4595, 77.0266)},
		{coord(t, 51.5074, -0.1278), coord(t, 48.8566, 2.3522)},
		{coord(t, -1.2921, 36.8219), coord(t, 6.5244, 3.3792)},
	}
	for _, pair := range pairs {
		require.InDelta(t, geo.Distance(pair[0], pair[1]), geo.Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestDistance_DelhiGurgaonFixture(t *testing.T) {
	t.Parallel()

	delhi := coord(t, 28.6139, 77.2090)
	gurgaon := coord(t, 28.4595, 77.0266)

	// Great-circle distance; the road distance between the two is ~29 km.
	d := geo.Distance(delhi, gurgaon)
	require.InDelta(t, 24.74, d, 0.5)
}

func TestDistance_GrowsWithSeparation(t *testing.T) {
	t.Parallel()

	origin := coord(t, 28.50, 77.10)
	near := coord(t, 28.51, 77.11)
	far := coord(t, 28.60, 77.30)

	require.Less(t, geo.Distance(origin, near), geo.Distance(origin, far))
}

func TestWithin(t *testing.T) {
	t.Parallel()

	center := coord(t, 28.50, 77.10)

	tests := []struct {
		name     string
		point    domain.Coordinate
		radiusKm float64
		want     bool
	}{
		{"same point inside any radius", center, 0.1, true},
		{"nearby point inside 5km", coord(t, 28.51, 77.11), 5, true},
		{"distant point outside 5km", coord(t, 28.6139, 77.2090), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, geo.Within(center, tt.point, tt.radiusKm))
		})
	}
}
