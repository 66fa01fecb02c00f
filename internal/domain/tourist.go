package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationFix is one reported position plus the zone membership derived at
// evaluation time. Immutable once appended to a tourist's history.
type LocationFix struct {
	ID         uuid.UUID      `json:"id"`
	TouristID  uuid.UUID      `json:"tourist_id"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
	InsideZone bool           `json:"inside_zone"`
	Zones      []ZoneSnapshot `json:"zones"`
	RecordedAt time.Time      `json:"recorded_at"`
}

// Tourist carries the subset of the tourist record this core owns: identity,
// the snapshot fields copied into alerts, and the current location. Current
// is nil until the first fix is recorded, and always equals the newest entry
// of the location history afterwards.
type Tourist struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Contact string       `json:"contact"`
	Current *LocationFix `json:"current_location,omitempty"`
}

func (t *Tourist) InsideRestrictedZone() bool {
	return t.Current != nil && t.Current.InsideZone
}

// TouristLocation is the dashboard/map projection row.
type TouristLocation struct {
	TouristID uuid.UUID    `json:"tourist_id"`
	Name      string       `json:"name"`
	Contact   string       `json:"contact"`
	Current   *LocationFix `json:"current_location,omitempty"`
}

type RecordLocationRequest struct {
	TouristID string     `json:"tourist_id" validate:"required,uuid"`
	Lat       float64    `json:"lat" validate:"lat"`
	Lng       float64    `json:"lng" validate:"lng"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type RecordLocationResponse struct {
	InsideZone bool           `json:"inside_zone"`
	Zones      []ZoneSnapshot `json:"zones"`
}
