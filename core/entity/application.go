package entity

import "time"

// ApplicationStatus is the lifecycle state of a rental application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the allowed literals.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// CanTransition reports whether an application may move from s to next.
// Approved and rejected are terminal; restating the current status is a no-op.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if s == next {
		return true
	}
	return s == ApplicationPending && (next == ApplicationApproved || next == ApplicationRejected)
}

// Application is a tenant's request to rent a property.
type Application struct {
	ID         ApplicationID     `json:"id"`
	PropertyID PropertyID        `json:"propertyId"`
	TenantID   UserID            `json:"tenantId"`
	Status     ApplicationStatus `json:"status"`
	Message    string            `json:"message,omitempty"`
	MoveInDate *time.Time        `json:"moveInDate,omitempty"`
	Documents  []string          `json:"documents,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  *time.Time        `json:"updatedAt"`
}

func (a Application) Key() string        { return string(a.ID) }
func (a Application) Created() time.Time { return a.CreatedAt }
