package entity

import "time"

// MaintenanceStatus is the lifecycle state of a maintenance ticket.
type MaintenanceStatus string

const (
	MaintenanceReported   MaintenanceStatus = "reported"
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
)

// Valid reports whether the status is one of the allowed literals.
func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceReported, MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted:
		return true
	}
	return false
}

// maintenanceRank orders the monotonic ticket lifecycle.
var maintenanceRank = map[MaintenanceStatus]int{
	MaintenanceReported:   0,
	MaintenanceScheduled:  1,
	MaintenanceInProgress: 2,
	MaintenanceCompleted:  3,
}

// CanTransition reports whether a ticket may move from s to next. The
// lifecycle only moves forward; skipping ahead is allowed, moving back is not.
func (s MaintenanceStatus) CanTransition(next MaintenanceStatus) bool {
	return maintenanceRank[next] >= maintenanceRank[s]
}

// Priority is the urgency of a maintenance ticket.
type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

// Valid reports whether the priority is one of the allowed literals.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

// Maintenance is a ticket reported by a tenant against a property.
type Maintenance struct {
	ID           MaintenanceID     `json:"id"`
	PropertyID   PropertyID        `json:"propertyId"`
	TenantID     UserID            `json:"tenantId"`
	Title        string            `json:"title"`
	Description  string            `json:"description,omitempty"`
	Status       MaintenanceStatus `json:"status"`
	Priority     Priority          `json:"priority"`
	ScheduledFor *time.Time        `json:"scheduledFor,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    *time.Time        `json:"updatedAt"`
}

func (m Maintenance) Key() string        { return string(m.ID) }
func (m Maintenance) Created() time.Time { return m.CreatedAt }
