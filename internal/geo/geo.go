// Package geo holds the pure point-in-polygon evaluator. It has no side
// effects and no storage dependencies; callers load zones from the catalog
// and pass them in.
package geo

import (
	"fmt"

	"github.com/Ompatel28102004/travel-saathi/internal/domain"
	"github.com/Ompatel28102004/travel-saathi/pkg/e"
)

type Point struct {
	Lat float64
	Lng float64
}

// NormalizeRing canonicalizes a polygon boundary at zone-creation time:
// trailing vertices equal to the first are stripped, the ring is validated
// (>=3 distinct vertices, coordinates in range) and returned with the first
// vertex appended again, so the stored form is always explicitly closed.
// Normalizing an already-normalized ring yields the same ring.
func NormalizeRing(pts []domain.GeoPoint) ([]domain.GeoPoint, error) {
	const op = "geo.NormalizeRing"

	for _, p := range pts {
		if p.Lat < -90 || p.Lat > 90 || p.Lng < -180 || p.Lng > 180 {
			return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidCoordinates)
		}
	}

	ring := append([]domain.GeoPoint(nil), pts...)
	for len(ring) > 1 && ring[len(ring)-1] == ring[0] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidGeometry)
	}

	return append(ring, ring[0]), nil
}

// Contains reports whether p is inside the polygon described by ring, using
// ray casting. The ring is treated as implicitly closed, so it works the same
// whether or not the last vertex repeats the first: a zero-length closing
// edge never toggles the crossing count. Points exactly on an edge follow the
// crossing rule deterministically (same point, same polygon, same answer).
func Contains(ring []Point, p Point) bool {
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		pi, pj := ring[i], ring[j]
		if (pi.Lat > p.Lat) != (pj.Lat > p.Lat) &&
			p.Lng < (pj.Lng-pi.Lng)*(p.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lng {
			inside = !inside
		}
	}
	return inside
}

// Evaluate returns the zones whose boundary contains p. The result order is
// unspecified; callers must treat it as a set. Zones with fewer than three
// vertices are skipped (the catalog rejects them at creation, this only
// guards against hand-edited data).
func Evaluate(p Point, zones []*domain.Zone) []*domain.Zone {
	var hits []*domain.Zone
	for _, z := range zones {
		if len(z.Boundary) < 3 {
			continue
		}
		ring := make([]Point, len(z.Boundary))
		for i, c := range z.Boundary {
			ring[i] = Point{Lat: c.Lat, Lng: c.Lng}
		}
		if Contains(ring, p) {
			hits = append(hits, z)
		}
	}
	return hits
}

// Snapshots copies the matched zones by value for embedding into a fix or an
// alert.
func Snapshots(zones []*domain.Zone) []domain.ZoneSnapshot {
	snaps := make([]domain.ZoneSnapshot, 0, len(zones))
	for _, z := range zones {
		snaps = append(snaps, z.Snapshot())
	}
	return snaps
}
