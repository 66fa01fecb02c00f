package geo_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/internal/geo"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

func square(lo, hi float64) []domain.GeoPoint {
	return []domain.GeoPoint{
		{Lat: lo, Lng: lo},
		{Lat: lo, Lng: hi},
		{Lat: hi, Lng: hi},
		{Lat: hi, Lng: lo},
	}
}

func zoneWith(t *testing.T, name string, boundary []domain.GeoPoint) *domain.Zone {
	t.Helper()
	ring, err := geo.NormalizeRing(boundary)
	require.NoError(t, err)
	return &domain.Zone{
		ID:            uuid.New(),
		Name:          name,
		State:         "Meghalaya",
		CountryType:   domain.CountryDomestic,
		AllowedGender: domain.GenderBoth,
		Boundary:      ring,
	}
}

func TestContains_Square(t *testing.T) {
	t.Parallel()

	ring := []geo.Point{{10, 10}, {10, 20}, {20, 20}, {20, 10}}

	assert.True(t, geo.Contains(ring, geo.Point{Lat: 15, Lng: 15}))
	assert.False(t, geo.Contains(ring, geo.Point{Lat: 25, Lng: 25}))
	assert.False(t, geo.Contains(ring, geo.Point{Lat: 5, Lng: 15}))
}

func TestContains_ClosedRingSameResult(t *testing.T) {
	t.Parallel()

	open := []geo.Point{{10, 10}, {10, 20}, {20, 20}, {20, 10}}
	closed := append(append([]geo.Point(nil), open...), geo.Point{Lat: 10, Lng: 10})
	doubleClosed := append(append([]geo.Point(nil), closed...), geo.Point{Lat: 10, Lng: 10})

	points := []geo.Point{
		{Lat: 15, Lng: 15},
		{Lat: 25, Lng: 25},
		{Lat: 10.0001, Lng: 19.9999},
	}
	for _, p := range points {
		want := geo.Contains(open, p)
		assert.Equal(t, want, geo.Contains(closed, p), "explicit closing vertex changed result for %+v", p)
		assert.Equal(t, want, geo.Contains(doubleClosed, p), "duplicate closing vertices changed result for %+v", p)
	}
}

func TestContains_Deterministic(t *testing.T) {
	t.Parallel()

	ring := []geo.Point{{10, 10}, {10, 20}, {20, 20}, {20, 10}}
	// A point exactly on an edge: the policy is implementation-defined, but
	// the answer must not flicker between calls.
	edge := geo.Point{Lat: 10, Lng: 15}
	first := geo.Contains(ring, edge)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, geo.Contains(ring, edge))
	}
}

func TestEvaluate_OverlappingZones(t *testing.T) {
	t.Parallel()

	a := zoneWith(t, "A", square(0, 10))
	b := zoneWith(t, "B", square(5, 15))
	zones := []*domain.Zone{a, b}

	hits := geo.Evaluate(geo.Point{Lat: 7, Lng: 7}, zones)
	require.Len(t, hits, 2)

	names := map[string]bool{}
	for _, z := range hits {
		names[z.Name] = true
	}
	assert.True(t, names["A"])
	assert.True(t, names["B"])

	// Only A contains (2,2); only B contains (12,12).
	require.Len(t, geo.Evaluate(geo.Point{Lat: 2, Lng: 2}, zones), 1)
	require.Len(t, geo.Evaluate(geo.Point{Lat: 12, Lng: 12}, zones), 1)
	assert.Empty(t, geo.Evaluate(geo.Point{Lat: 50, Lng: 50}, zones))
}

func TestEvaluate_Idempotent(t *testing.T) {
	t.Parallel()

	z := zoneWith(t, "Core Area", square(10, 20))
	p := geo.Point{Lat: 15, Lng: 15}

	first := geo.Evaluate(p, []*domain.Zone{z})
	second := geo.Evaluate(p, []*domain.Zone{z})
	assert.Equal(t, first, second)
}

func TestNormalizeRing(t *testing.T) {
	t.Parallel()

	t.Run("closes open ring", func(t *testing.T) {
		ring, err := geo.NormalizeRing(square(10, 20))
		require.NoError(t, err)
		require.Len(t, ring, 5)
		assert.Equal(t, ring[0], ring[len(ring)-1])
	})

	t.Run("idempotent on closed ring", func(t *testing.T) {
		once, err := geo.NormalizeRing(square(10, 20))
		require.NoError(t, err)
		twice, err := geo.NormalizeRing(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("rejects fewer than three vertices", func(t *testing.T) {
		_, err := geo.NormalizeRing([]domain.GeoPoint{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrInvalidGeometry))
	})

	t.Run("rejects degenerate closed triangle", func(t *testing.T) {
		// Three points where two are the explicit closure leave only two
		// distinct vertices.
		_, err := geo.NormalizeRing([]domain.GeoPoint{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}, {Lat: 1, Lng: 1}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrInvalidGeometry))
	})

	t.Run("rejects out-of-range coordinates", func(t *testing.T) {
		bad := square(10, 20)
		bad[1].Lng = 181
		_, err := geo.NormalizeRing(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, e.ErrInvalidCoordinates))
	})
}
