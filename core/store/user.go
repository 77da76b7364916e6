package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewUser enumerates every caller-supplied field of a user record. Everything
// else is defaulted by CreateUser.
type NewUser struct {
	Name  string
	Email string
	Phone string
	Type  entity.UserType
}

// CreateUser mints an identifier, applies defaults, validates, and persists a
// new user.
func (s *Store) CreateUser(in NewUser) (entity.User, error) {
	u := entity.User{
		ID:        entity.UserID(s.ids.Next()),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Type:      in.Type,
		Rating:    0,
		Reviews:   []entity.ReviewID{},
		Verified:  false,
		CreatedAt: s.stamp(),
	}
	if err := validate.User(&u); err != nil {
		return entity.User{}, err
	}
	if err := s.users.Put(u.Key(), u); err != nil {
		return entity.User{}, fmt.Errorf("persist user: %w", err)
	}
	s.emit(CollectionUsers, OpCreate, u.Key())
	s.logger.Debug("user created", zap.String("id", u.Key()), zap.String("type", string(u.Type)))
	return u, nil
}

// UserByID is a point lookup.
func (s *Store) UserByID(id entity.UserID) (entity.User, error) {
	u, ok, err := s.users.Get(string(id))
	if err != nil {
		return entity.User{}, fmt.Errorf("lookup user: %w", err)
	}
	if !ok {
		return entity.User{}, &NotFoundError{Collection: CollectionUsers, ID: string(id)}
	}
	return u, nil
}

// UserPatch carries the updatable fields of a user. Nil fields are left
// untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Type     *entity.UserType
	Rating   *float64
	Verified *bool
}

// UpdateUser merges the patch, stamps updatedAt, re-validates, and persists.
func (s *Store) UpdateUser(id entity.UserID, patch UserPatch) (entity.User, error) {
	u, err := s.UserByID(id)
	if err != nil {
		return entity.User{}, err
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Type != nil {
		u.Type = *patch.Type
	}
	if patch.Rating != nil {
		u.Rating = *patch.Rating
	}
	if patch.Verified != nil {
		u.Verified = *patch.Verified
	}
	now := s.stamp()
	u.UpdatedAt = &now
	if err := validate.User(&u); err != nil {
		return entity.User{}, err
	}
	if err := s.users.Put(u.Key(), u); err != nil {
		return entity.User{}, fmt.Errorf("persist user: %w", err)
	}
	s.emit(CollectionUsers, OpUpdate, u.Key())
	return u, nil
}

// linkReview appends a review id to its author's review set. Called after the
// review itself has committed; see CreateReview for the consistency caveat.
func (s *Store) linkReview(userID entity.UserID, reviewID entity.ReviewID) error {
	u, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	for _, existing := range u.Reviews {
		if existing == reviewID {
			return nil
		}
	}
	u.Reviews = append(u.Reviews, reviewID)
	now := s.stamp()
	u.UpdatedAt = &now
	if err := s.users.Put(u.Key(), u); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	s.emit(CollectionUsers, OpUpdate, u.Key())
	return nil
}

// UsersByType lists users of one account type in creation order.
func (s *Store) UsersByType(t entity.UserType) ([]entity.User, error) {
	return list(s.users, query.Equals(func(u entity.User) entity.UserType { return u.Type }, t))
}
