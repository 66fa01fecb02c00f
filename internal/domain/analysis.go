package domain

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
)

// AnalysisResult is the job record for one anomaly analysis run. Created in
// pending state when the job is enqueued; the worker writes the terminal
// state, so the outcome is observable independent of the request that
// triggered it.
type AnalysisResult struct {
	ID          uuid.UUID      `json:"id"`
	TouristID   uuid.UUID      `json:"tourist_id"`
	TouristName string         `json:"tourist_name"`
	Status      AnalysisStatus `json:"status"`
	Severity    int            `json:"severity,omitempty"`
	Reasoning   string         `json:"reasoning,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AnalysisJob is the queue payload handed to the worker.
type AnalysisJob struct {
	AnalysisID uuid.UUID `json:"analysis_id"`
	TouristID  uuid.UUID `json:"tourist_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// BehaviorProfile is what the severity scorer sees: the tourist's visited
// zones plus the current situation.
type BehaviorProfile struct {
	TouristName  string
	VisitedZones []string
	HistoryLen   int
	InsideZone   bool
	ActiveAlerts int
}
