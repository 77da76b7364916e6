package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewApplication enumerates every caller-supplied field of an application.
// New applications always start pending.
type NewApplication struct {
	PropertyID entity.PropertyID
	TenantID   entity.UserID
	Message    string
	MoveInDate *time.Time
	Documents  []string
}

// CreateApplication mints an identifier, applies defaults, validates, and
// persists a new application.
func (s *Store) CreateApplication(in NewApplication) (entity.Application, error) {
	a := entity.Application{
		ID:         entity.ApplicationID(s.ids.Next()),
		PropertyID: in.PropertyID,
		TenantID:   in.TenantID,
		Status:     entity.ApplicationPending,
		Message:    in.Message,
		MoveInDate: in.MoveInDate,
		Documents:  in.Documents,
		CreatedAt:  s.stamp(),
	}
	if err := validate.Application(&a); err != nil {
		return entity.Application{}, err
	}
	if err := s.applications.Put(a.Key(), a); err != nil {
		return entity.Application{}, fmt.Errorf("persist application: %w", err)
	}
	s.emit(CollectionApplications, OpCreate, a.Key())
	s.logger.Debug("application created", zap.String("id", a.Key()), zap.String("property", string(a.PropertyID)))
	return a, nil
}

// ApplicationByID is a point lookup.
func (s *Store) ApplicationByID(id entity.ApplicationID) (entity.Application, error) {
	a, ok, err := s.applications.Get(string(id))
	if err != nil {
		return entity.Application{}, fmt.Errorf("lookup application: %w", err)
	}
	if !ok {
		return entity.Application{}, &NotFoundError{Collection: CollectionApplications, ID: string(id)}
	}
	return a, nil
}

// ApplicationPatch carries the updatable fields of an application.
type ApplicationPatch struct {
	Status     *entity.ApplicationStatus
	Message    *string
	MoveInDate *time.Time
	Documents  *[]string
}

// UpdateApplication merges the patch, stamps updatedAt, re-validates, and
// persists. Status only moves pending→approved or pending→rejected; both are
// terminal.
func (s *Store) UpdateApplication(id entity.ApplicationID, patch ApplicationPatch) (entity.Application, error) {
	a, err := s.ApplicationByID(id)
	if err != nil {
		return entity.Application{}, err
	}
	if patch.Status != nil && !a.Status.CanTransition(*patch.Status) {
		return entity.Application{}, &validate.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot transition from %s to %s", a.Status, *patch.Status),
		}
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Message != nil {
		a.Message = *patch.Message
	}
	if patch.MoveInDate != nil {
		a.MoveInDate = patch.MoveInDate
	}
	if patch.Documents != nil {
		a.Documents = *patch.Documents
	}
	now := s.stamp()
	a.UpdatedAt = &now
	if err := validate.Application(&a); err != nil {
		return entity.Application{}, err
	}
	if err := s.applications.Put(a.Key(), a); err != nil {
		return entity.Application{}, fmt.Errorf("persist application: %w", err)
	}
	s.emit(CollectionApplications, OpUpdate, a.Key())
	return a, nil
}

// ApplicationsByProperty lists the applications for one property in creation
// order.
func (s *Store) ApplicationsByProperty(id entity.PropertyID) ([]entity.Application, error) {
	return list(s.applications, query.Equals(func(a entity.Application) entity.PropertyID { return a.PropertyID }, id))
}

// ApplicationsByTenant lists a tenant's applications in creation order.
func (s *Store) ApplicationsByTenant(id entity.UserID) ([]entity.Application, error) {
	return list(s.applications, query.Equals(func(a entity.Application) entity.UserID { return a.TenantID }, id))
}
