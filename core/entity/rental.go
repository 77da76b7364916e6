package entity

import "time"

// RentalStatus is the lifecycle state of a lease.
type RentalStatus string

const (
	RentalPending   RentalStatus = "pending"
	RentalActive    RentalStatus = "active"
	RentalCompleted RentalStatus = "completed"
	RentalCancelled RentalStatus = "cancelled"
)

// Valid reports whether the status is one of the allowed literals.
func (s RentalStatus) Valid() bool {
	switch s {
	case RentalPending, RentalActive, RentalCompleted, RentalCancelled:
		return true
	}
	return false
}

// rentalTransitions enumerates the allowed forward moves. Completed and
// cancelled are terminal.
var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalPending: {RentalActive, RentalCancelled},
	RentalActive:  {RentalCompleted},
}

// CanTransition reports whether a rental may move from s to next. Restating
// the current status is always allowed.
func (s RentalStatus) CanTransition(next RentalStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range rentalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Payment is one entry in a rental's payment history.
type Payment struct {
	Amount float64   `json:"amount"`
	PaidAt time.Time `json:"paidAt"`
	Method string    `json:"method,omitempty"`
}

// Rental is a lease binding one tenant and one landlord to one property.
type Rental struct {
	ID          RentalID     `json:"id"`
	PropertyID  PropertyID   `json:"propertyId"`
	TenantID    UserID       `json:"tenantId"`
	LandlordID  UserID       `json:"landlordId"`
	Status      RentalStatus `json:"status"`
	LeaseStart  time.Time    `json:"leaseStart"`
	LeaseEnd    time.Time    `json:"leaseEnd"`
	MonthlyRent float64      `json:"monthlyRent"`
	Deposit     float64      `json:"deposit,omitempty"`
	Payments    []Payment    `json:"paymentHistory,omitempty"`
	Documents   []string     `json:"documents,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt"`
}

func (r Rental) Key() string        { return string(r.ID) }
func (r Rental) Created() time.Time { return r.CreatedAt }
