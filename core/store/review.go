package store

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/validate"
)

// NewReview enumerates every caller-supplied field of a review.
type NewReview struct {
	PropertyID entity.PropertyID
	UserID     entity.UserID
	Rating     float64
	Sub        entity.SubRatings
	Comment    string
}

// CreateReview mints an identifier, applies defaults, validates, and persists
// a new review, then links the review id into the author's review set.
//
// The link is a second, independent write on the users collection. If it
// fails the review itself remains committed and the returned error says so;
// the two collections are transiently inconsistent until the caller retries
// or reconciles. This is the store's documented weak-consistency boundary,
// not a bug.
func (s *Store) CreateReview(in NewReview) (entity.Review, error) {
	r := entity.Review{
		ID:         entity.ReviewID(s.ids.Next()),
		PropertyID: in.PropertyID,
		UserID:     in.UserID,
		Rating:     in.Rating,
		Sub:        in.Sub,
		Comment:    in.Comment,
		Helpful:    0,
		Verified:   false,
		CreatedAt:  s.stamp(),
	}
	if err := validate.Review(&r); err != nil {
		return entity.Review{}, err
	}
	if err := s.reviews.Put(r.Key(), r); err != nil {
		return entity.Review{}, fmt.Errorf("persist review: %w", err)
	}
	s.emit(CollectionReviews, OpCreate, r.Key())

	if err := s.linkReview(in.UserID, r.ID); err != nil {
		s.logger.Warn("review committed but not linked to its author",
			zap.String("review", r.Key()),
			zap.String("user", string(in.UserID)),
			zap.Error(err))
		return r, fmt.Errorf("review %s created but not linked to user %s: %w", r.ID, in.UserID, err)
	}
	return r, nil
}

// ReviewByID is a point lookup.
func (s *Store) ReviewByID(id entity.ReviewID) (entity.Review, error) {
	r, ok, err := s.reviews.Get(string(id))
	if err != nil {
		return entity.Review{}, fmt.Errorf("lookup review: %w", err)
	}
	if !ok {
		return entity.Review{}, &NotFoundError{Collection: CollectionReviews, ID: string(id)}
	}
	return r, nil
}

// ReviewPatch carries the updatable fields of a review. The helpful counter
// is absent; it moves only through MarkReviewHelpful.
type ReviewPatch struct {
	Rating   *float64
	Sub      *entity.SubRatings
	Comment  *string
	Verified *bool
}

// UpdateReview merges the patch, stamps updatedAt, re-validates, and
// persists.
func (s *Store) UpdateReview(id entity.ReviewID, patch ReviewPatch) (entity.Review, error) {
	r, err := s.ReviewByID(id)
	if err != nil {
		return entity.Review{}, err
	}
	if patch.Rating != nil {
		r.Rating = *patch.Rating
	}
	if patch.Sub != nil {
		r.Sub = *patch.Sub
	}
	if patch.Comment != nil {
		r.Comment = *patch.Comment
	}
	if patch.Verified != nil {
		r.Verified = *patch.Verified
	}
	now := s.stamp()
	r.UpdatedAt = &now
	if err := validate.Review(&r); err != nil {
		return entity.Review{}, err
	}
	if err := s.reviews.Put(r.Key(), r); err != nil {
		return entity.Review{}, fmt.Errorf("persist review: %w", err)
	}
	s.emit(CollectionReviews, OpUpdate, r.Key())
	return r, nil
}

// MarkReviewHelpful bumps the helpful counter by one.
func (s *Store) MarkReviewHelpful(id entity.ReviewID) (entity.Review, error) {
	r, err := s.ReviewByID(id)
	if err != nil {
		return entity.Review{}, err
	}
	r.Helpful++
	now := s.stamp()
	r.UpdatedAt = &now
	if err := s.reviews.Put(r.Key(), r); err != nil {
		return entity.Review{}, fmt.Errorf("persist review: %w", err)
	}
	s.emit(CollectionReviews, OpUpdate, r.Key())
	return r, nil
}

// ReviewsByProperty lists reviews of one property in creation order.
func (s *Store) ReviewsByProperty(id entity.PropertyID) ([]entity.Review, error) {
	return list(s.reviews, query.Equals(func(r entity.Review) entity.PropertyID { return r.PropertyID }, id))
}

// ReviewsByUser lists reviews written by one user in creation order.
func (s *Store) ReviewsByUser(id entity.UserID) ([]entity.Review, error) {
	return list(s.reviews, query.Equals(func(r entity.Review) entity.UserID { return r.UserID }, id))
}
