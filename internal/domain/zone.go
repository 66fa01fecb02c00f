package domain

import (
	"time"

	"github.com/google/uuid"
)

type CountryType string

const (
	CountryDomestic      CountryType = "Domestic"
	CountryInternational CountryType = "International"
)

type AllowedGender string

const (
	GenderMale   AllowedGender = "Male"
	GenderFemale AllowedGender = "Female"
	GenderBoth   AllowedGender = "Both"
)

type GeoPoint struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lng float64 `json:"lng" validate:"lng"`
}

// Zone is an administrator-defined restricted area. Boundary is stored as a
// closed ring: the first vertex is repeated at the end. Zones embedded in
// fixes and alerts are stored as ZoneSnapshot copies, so deleting or
// recreating a zone never rewrites history.
type Zone struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	State         string        `json:"state"`
	CountryType   CountryType   `json:"country_type"`
	AllowedGender AllowedGender `json:"allowed_gender"`
	Boundary      []GeoPoint    `json:"boundary"`
	CreatedAt     time.Time     `json:"created_at"`
}

// ZoneSnapshot is the copy-by-value subset of a zone frozen into location
// fixes and alerts at evaluation time.
type ZoneSnapshot struct {
	ZoneID        uuid.UUID     `json:"zone_id"`
	Name          string        `json:"name"`
	State         string        `json:"state"`
	CountryType   CountryType   `json:"country_type"`
	AllowedGender AllowedGender `json:"allowed_gender"`
}

func (z *Zone) Snapshot() ZoneSnapshot {
	return ZoneSnapshot{
		ZoneID:        z.ID,
		Name:          z.Name,
		State:         z.State,
		CountryType:   z.CountryType,
		AllowedGender: z.AllowedGender,
	}
}

type CreateZoneRequest struct {
	Name          string        `json:"name" validate:"required"`
	State         string        `json:"state" validate:"required"`
	CountryType   CountryType   `json:"country_type" validate:"required,oneof=Domestic International"`
	AllowedGender AllowedGender `json:"allowed_gender" validate:"omitempty,oneof=Male Female Both"`
	Boundary      []GeoPoint    `json:"boundary" validate:"required,min=3,dive"`
}
