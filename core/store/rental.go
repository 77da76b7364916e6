package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewRental enumerates every caller-supplied field of a lease. New rentals
// always start pending.
type NewRental struct {
	PropertyID  entity.PropertyID
	TenantID    entity.UserID
	LandlordID  entity.UserID
	LeaseStart  time.Time
	LeaseEnd    time.Time
	MonthlyRent float64
	Deposit     float64
	Documents   []string
}

// CreateRental mints an identifier, applies defaults, validates, and persists
// a new lease. Marking the property rented is a separate write the caller
// performs when appropriate; the store does not couple the two collections.
func (s *Store) CreateRental(in NewRental) (entity.Rental, error) {
	r := entity.Rental{
		ID:          entity.RentalID(s.ids.Next()),
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		LandlordID:  in.LandlordID,
		Status:      entity.RentalPending,
		LeaseStart:  in.LeaseStart,
		LeaseEnd:    in.LeaseEnd,
		MonthlyRent: in.MonthlyRent,
		Deposit:     in.Deposit,
		Documents:   in.Documents,
		CreatedAt:   s.stamp(),
	}
	if err := validate.Rental(&r); err != nil {
		return entity.Rental{}, err
	}
	if err := s.rentals.Put(r.Key(), r); err != nil {
		return entity.Rental{}, fmt.Errorf("persist rental: %w", err)
	}
	s.emit(CollectionRentals, OpCreate, r.Key())
	s.logger.Debug("rental created", zap.String("id", r.Key()), zap.String("property", string(r.PropertyID)))
	return r, nil
}

// RentalByID is a point lookup.
func (s *Store) RentalByID(id entity.RentalID) (entity.Rental, error) {
	r, ok, err := s.rentals.Get(string(id))
	if err != nil {
		return entity.Rental{}, fmt.Errorf("lookup rental: %w", err)
	}
	if !ok {
		return entity.Rental{}, &NotFoundError{Collection: CollectionRentals, ID: string(id)}
	}
	return r, nil
}

// RentalPatch carries the updatable fields of a lease.
type RentalPatch struct {
	Status    *entity.RentalStatus
	LeaseEnd  *time.Time
	Documents *[]string
}

// UpdateRental merges the patch, stamps updatedAt, re-validates, and
// persists. Status moves are restricted to pending→active→completed and
// pending→cancelled; anything else is a validation error.
func (s *Store) UpdateRental(id entity.RentalID, patch RentalPatch) (entity.Rental, error) {
	r, err := s.RentalByID(id)
	if err != nil {
		return entity.Rental{}, err
	}
	if patch.Status != nil && !r.Status.CanTransition(*patch.Status) {
		return entity.Rental{}, &validate.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot transition from %s to %s", r.Status, *patch.Status),
		}
	}
	if patch.Status != nil {
		r.Status = *patch.Status
	}
	if patch.LeaseEnd != nil {
		r.LeaseEnd = *patch.LeaseEnd
	}
	if patch.Documents != nil {
		r.Documents = *patch.Documents
	}
	now := s.stamp()
	r.UpdatedAt = &now
	if err := validate.Rental(&r); err != nil {
		return entity.Rental{}, err
	}
	if err := s.rentals.Put(r.Key(), r); err != nil {
		return entity.Rental{}, fmt.Errorf("persist rental: %w", err)
	}
	s.emit(CollectionRentals, OpUpdate, r.Key())
	return r, nil
}

// RecordRentalPayment appends one entry to a rental's payment history.
func (s *Store) RecordRentalPayment(id entity.RentalID, payment entity.Payment) (entity.Rental, error) {
	r, err := s.RentalByID(id)
	if err != nil {
		return entity.Rental{}, err
	}
	if payment.PaidAt.IsZero() {
		payment.PaidAt = s.stamp()
	}
	r.Payments = append(r.Payments, payment)
	now := s.stamp()
	r.UpdatedAt = &now
	if err := validate.Rental(&r); err != nil {
		return entity.Rental{}, err
	}
	if err := s.rentals.Put(r.Key(), r); err != nil {
		return entity.Rental{}, fmt.Errorf("persist rental: %w", err)
	}
	s.emit(CollectionRentals, OpUpdate, r.Key())
	return r, nil
}

// RentalsByTenant lists a tenant's leases in creation order.
func (s *Store) RentalsByTenant(id entity.UserID) ([]entity.Rental, error) {
	return list(s.rentals, query.Equals(func(r entity.Rental) entity.UserID { return r.TenantID }, id))
}

// RentalsByLandlord lists a landlord's leases in creation order.
func (s *Store) RentalsByLandlord(id entity.UserID) ([]entity.Rental, error) {
	return list(s.rentals, query.Equals(func(r entity.Rental) entity.UserID { return r.LandlordID }, id))
}

// RentalsByProperty lists the leases of one property in creation order.
func (s *Store) RentalsByProperty(id entity.PropertyID) ([]entity.Rental, error) {
	return list(s.rentals, query.Equals(func(r entity.Rental) entity.PropertyID { return r.PropertyID }, id))
}
