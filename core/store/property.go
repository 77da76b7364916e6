package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewProperty enumerates every caller-supplied field of a listing. An empty
// Status defaults to available.
type NewProperty struct {
	LandlordID  entity.UserID
	Title       string
	Description string
	Type        string
	Status      entity.PropertyStatus
	Location    entity.Location
	Specs       entity.Specifications
	Rent        entity.Rent
	Amenities   []string
	Photos      []string
}

// CreateProperty mints an identifier, applies defaults, validates, and
// persists a new listing.
func (s *Store) CreateProperty(in NewProperty) (entity.Property, error) {
	status := in.Status
	if status == "" {
		status = entity.PropertyAvailable
	}
	p := entity.Property{
		ID:            entity.PropertyID(s.ids.Next()),
		LandlordID:    in.LandlordID,
		Title:         in.Title,
		Description:   in.Description,
		Type:          in.Type,
		Status:        status,
		Location:      in.Location,
		Specs:         in.Specs,
		Rent:          in.Rent,
		Amenities:     in.Amenities,
		Photos:        in.Photos,
		Views:         0,
		FavoriteCount: 0,
		CreatedAt:     s.stamp(),
	}
	if err := validate.Property(&p); err != nil {
		return entity.Property{}, err
	}
	if err := s.properties.Put(p.Key(), p); err != nil {
		return entity.Property{}, fmt.Errorf("persist property: %w", err)
	}
	s.emit(CollectionProperties, OpCreate, p.Key())
	s.logger.Debug("property created",
		zap.String("id", p.Key()),
		zap.String("city", p.Location.City),
		zap.Float64("monthly", p.Rent.Monthly))
	return p, nil
}

// PropertyByID is a point lookup.
func (s *Store) PropertyByID(id entity.PropertyID) (entity.Property, error) {
	p, ok, err := s.properties.Get(string(id))
	if err != nil {
		return entity.Property{}, fmt.Errorf("lookup property: %w", err)
	}
	if !ok {
		return entity.Property{}, &NotFoundError{Collection: CollectionProperties, ID: string(id)}
	}
	return p, nil
}

// PropertyPatch carries the updatable fields of a listing. Nil fields are
// left untouched. The view and favorite counters are deliberately absent:
// they move only through the increment operations, which keeps them
// monotonic.
type PropertyPatch struct {
	Title       *string
	Description *string
	Type        *string
	Status      *entity.PropertyStatus
	Location    *entity.Location
	Specs       *entity.Specifications
	Rent        *entity.Rent
	Amenities   *[]string
	Photos      *[]string
}

// UpdateProperty merges the patch, stamps updatedAt, re-validates, and
// persists.
func (s *Store) UpdateProperty(id entity.PropertyID, patch PropertyPatch) (entity.Property, error) {
	p, err := s.PropertyByID(id)
	if err != nil {
		return entity.Property{}, err
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Specs != nil {
		p.Specs = *patch.Specs
	}
	if patch.Rent != nil {
		p.Rent = *patch.Rent
	}
	if patch.Amenities != nil {
		p.Amenities = *patch.Amenities
	}
	if patch.Photos != nil {
		p.Photos = *patch.Photos
	}
	now := s.stamp()
	p.UpdatedAt = &now
	if err := validate.Property(&p); err != nil {
		return entity.Property{}, err
	}
	if err := s.properties.Put(p.Key(), p); err != nil {
		return entity.Property{}, fmt.Errorf("persist property: %w", err)
	}
	s.emit(CollectionProperties, OpUpdate, p.Key())
	return p, nil
}

// IncrementPropertyViews bumps the view counter by one.
func (s *Store) IncrementPropertyViews(id entity.PropertyID) (entity.Property, error) {
	return s.bumpPropertyCounter(id, func(p *entity.Property) { p.Views++ })
}

// AddPropertyFavorite bumps the favorite counter by one.
func (s *Store) AddPropertyFavorite(id entity.PropertyID) (entity.Property, error) {
	return s.bumpPropertyCounter(id, func(p *entity.Property) { p.FavoriteCount++ })
}

func (s *Store) bumpPropertyCounter(id entity.PropertyID, bump func(*entity.Property)) (entity.Property, error) {
	p, err := s.PropertyByID(id)
	if err != nil {
		return entity.Property{}, err
	}
	bump(&p)
	now := s.stamp()
	p.UpdatedAt = &now
	if err := s.properties.Put(p.Key(), p); err != nil {
		return entity.Property{}, fmt.Errorf("persist property: %w", err)
	}
	s.emit(CollectionProperties, OpUpdate, p.Key())
	return p, nil
}

// DeleteProperty removes a listing, reporting whether it existed. Child
// records (reviews, applications, rentals, tickets) are not cascaded; they
// keep their property reference and resolve to a NotFound on lookup.
func (s *Store) DeleteProperty(id entity.PropertyID) (bool, error) {
	existed, err := s.properties.Remove(string(id))
	if err != nil {
		return false, fmt.Errorf("delete property: %w", err)
	}
	if existed {
		s.emit(CollectionProperties, OpDelete, string(id))
		s.logger.Debug("property deleted", zap.String("id", string(id)))
	}
	return existed, nil
}

// PropertiesByLandlord lists a landlord's listings in creation order.
func (s *Store) PropertiesByLandlord(id entity.UserID) ([]entity.Property, error) {
	return list(s.properties, query.Equals(func(p entity.Property) entity.UserID { return p.LandlordID }, id))
}

// PropertyFilter is the caller's search input. Nil fields add no constraint.
type PropertyFilter struct {
	City        *string
	Type        *string
	Furnished   *bool
	MinPrice    *float64
	MaxPrice    *float64
	MinBedrooms *int
}

// SearchProperties answers a paginated predicate search over listings,
// restricted to status available. Supplied filters compose with AND; results
// come back ascending by creation time with ties broken by identifier.
func (s *Store) SearchProperties(f PropertyFilter, page query.Page) ([]entity.Property, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	preds := []query.Predicate[entity.Property]{
		query.Equals(func(p entity.Property) entity.PropertyStatus { return p.Status }, entity.PropertyAvailable),
	}
	if f.City != nil {
		preds = append(preds, query.ContainsFold(func(p entity.Property) string { return p.Location.City }, *f.City))
	}
	if f.Type != nil {
		preds = append(preds, query.Equals(func(p entity.Property) string { return p.Type }, *f.Type))
	}
	if f.Furnished != nil {
		preds = append(preds, query.Equals(func(p entity.Property) bool { return p.Specs.Furnished }, *f.Furnished))
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		preds = append(preds, query.InRange(func(p entity.Property) float64 { return p.Rent.Monthly }, f.MinPrice, f.MaxPrice))
	}
	if f.MinBedrooms != nil {
		preds = append(preds, query.AtLeast(func(p entity.Property) int { return p.Specs.Bedrooms }, *f.MinBedrooms))
	}
	matched, err := list(s.properties, query.And(preds...))
	if err != nil {
		return nil, err
	}
	return query.Paginate(matched, page), nil
}
