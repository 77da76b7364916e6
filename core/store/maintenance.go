package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewMaintenance enumerates every caller-supplied field of a ticket. An empty
// Priority defaults to medium; new tickets always start reported.
type NewMaintenance struct {
	PropertyID  entity.PropertyID
	TenantID    entity.UserID
	Title       string
	Description string
	Priority    entity.Priority
}

// CreateMaintenance mints an identifier, applies defaults, validates, and
// persists a new ticket.
func (s *Store) CreateMaintenance(in NewMaintenance) (entity.Maintenance, error) {
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	m := entity.Maintenance{
		ID:          entity.MaintenanceID(s.ids.Next()),
		PropertyID:  in.PropertyID,
		TenantID:    in.TenantID,
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.MaintenanceReported,
		Priority:    priority,
		CreatedAt:   s.stamp(),
	}
	if err := validate.Maintenance(&m); err != nil {
		return entity.Maintenance{}, err
	}
	if err := s.maintenance.Put(m.Key(), m); err != nil {
		return entity.Maintenance{}, fmt.Errorf("persist maintenance ticket: %w", err)
	}
	s.emit(CollectionMaintenance, OpCreate, m.Key())
	s.logger.Debug("maintenance ticket created",
		zap.String("id", m.Key()),
		zap.String("priority", string(m.Priority)))
	return m, nil
}

// MaintenanceByID is a point lookup.
func (s *Store) MaintenanceByID(id entity.MaintenanceID) (entity.Maintenance, error) {
	m, ok, err := s.maintenance.Get(string(id))
	if err != nil {
		return entity.Maintenance{}, fmt.Errorf("lookup maintenance ticket: %w", err)
	}
	if !ok {
		return entity.Maintenance{}, &NotFoundError{Collection: CollectionMaintenance, ID: string(id)}
	}
	return m, nil
}

// MaintenancePatch carries the updatable fields of a ticket.
type MaintenancePatch struct {
	Status       *entity.MaintenanceStatus
	Priority     *entity.Priority
	Description  *string
	ScheduledFor *time.Time
}

// UpdateMaintenance merges the patch, stamps updatedAt, re-validates, and
// persists. The ticket lifecycle only moves forward
// (reported→scheduled→in_progress→completed); a patch that moves it backward
// is a validation error.
func (s *Store) UpdateMaintenance(id entity.MaintenanceID, patch MaintenancePatch) (entity.Maintenance, error) {
	m, err := s.MaintenanceByID(id)
	if err != nil {
		return entity.Maintenance{}, err
	}
	if patch.Status != nil && !m.Status.CanTransition(*patch.Status) {
		return entity.Maintenance{}, &validate.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("cannot transition from %s to %s", m.Status, *patch.Status),
		}
	}
	if patch.Status != nil {
		m.Status = *patch.Status
	}
	if patch.Priority != nil {
		m.Priority = *patch.Priority
	}
	if patch.Description != nil {
		m.Description = *patch.Description
	}
	if patch.ScheduledFor != nil {
		m.ScheduledFor = patch.ScheduledFor
	}
	now := s.stamp()
	m.UpdatedAt = &now
	if err := validate.Maintenance(&m); err != nil {
		return entity.Maintenance{}, err
	}
	if err := s.maintenance.Put(m.Key(), m); err != nil {
		return entity.Maintenance{}, fmt.Errorf("persist maintenance ticket: %w", err)
	}
	s.emit(CollectionMaintenance, OpUpdate, m.Key())
	return m, nil
}

// MaintenanceByProperty lists a property's tickets in creation order.
func (s *Store) MaintenanceByProperty(id entity.PropertyID) ([]entity.Maintenance, error) {
	return list(s.maintenance, query.Equals(func(m entity.Maintenance) entity.PropertyID { return m.PropertyID }, id))
}

// MaintenanceByTenant lists the tickets a tenant reported in creation order.
func (s *Store) MaintenanceByTenant(id entity.UserID) ([]entity.Maintenance, error) {
	return list(s.maintenance, query.Equals(func(m entity.Maintenance) entity.UserID { return m.TenantID }, id))
}
