package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertStatus string

const (
	AlertStatusActive              AlertStatus = "active"
	AlertStatusInvestigating       AlertStatus = "investigating"
	AlertStatusPendingConfirmation AlertStatus = "pending_confirmation"
	AlertStatusResolved            AlertStatus = "resolved"
)

func (s AlertStatus) Valid() bool {
	switch s {
	case AlertStatusActive, AlertStatusInvestigating, AlertStatusPendingConfirmation, AlertStatusResolved:
		return true
	}
	return false
}

func (s AlertStatus) Terminal() bool {
	return s == AlertStatusResolved
}

// alertTransitions holds the legal edges of the alert state machine.
// resolved has no outgoing edges; re-resolving is handled as a no-op by the
// service, not as a transition.
var alertTransitions = map[AlertStatus][]AlertStatus{
	AlertStatusActive:              {AlertStatusActive, AlertStatusInvestigating, AlertStatusPendingConfirmation, AlertStatusResolved},
	AlertStatusInvestigating:       {AlertStatusInvestigating, AlertStatusPendingConfirmation, AlertStatusResolved},
	AlertStatusPendingConfirmation: {AlertStatusInvestigating, AlertStatusPendingConfirmation, AlertStatusResolved},
	AlertStatusResolved:            nil,
}

func CanTransition(from, to AlertStatus) bool {
	for _, s := range alertTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

const CategorySOS = "SOS"

// SOSAlert is a tracked emergency incident. TouristName and TouristContact
// are copied from the tourist at creation time and never re-read.
type SOSAlert struct {
	ID             uuid.UUID      `json:"id"`
	TouristID      uuid.UUID      `json:"tourist_id"`
	TouristName    string         `json:"tourist_name"`
	TouristContact string         `json:"tourist_contact"`
	Lat            float64        `json:"lat"`
	Lng            float64        `json:"lng"`
	Address        string         `json:"address,omitempty"`
	InsideZone     bool           `json:"inside_zone"`
	Zones          []ZoneSnapshot `json:"zones"`
	Category       string         `json:"category"`
	Status         AlertStatus    `json:"status"`
	AdminResponse  *string        `json:"admin_response,omitempty"`
	AssignedTo     *string        `json:"assigned_to,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

type CreateAlertRequest struct {
	TouristID string  `json:"tourist_id" validate:"required,uuid"`
	Lat       float64 `json:"lat" validate:"lat"`
	Lng       float64 `json:"lng" validate:"lng"`
	Address   string  `json:"address" validate:"omitempty,max=256"`
	Category  string  `json:"category" validate:"omitempty,max=32"`
}

type UpdateAlertRequest struct {
	Status        *AlertStatus `json:"status" validate:"omitempty,oneof=active investigating pending_confirmation resolved"`
	AdminResponse *string      `json:"admin_response"`
	AssignedTo    *string      `json:"assigned_to"`
}

const (
	AlertSortCreatedAt = "created_at"
	AlertSortCategory  = "category"
	AlertSortStatus    = "status"
)

type ListAlertsRequest struct {
	Status AlertStatus `json:"status" validate:"omitempty,oneof=active investigating pending_confirmation resolved"`
	Search string      `json:"q"`
	Sort   string      `json:"sort" validate:"omitempty,oneof=created_at category status"`
}
