package validate

import (
	"github.com/Mirriamnjeri/rentals/core/entity"
)

// User checks the invariants of a user record.
func User(u *entity.User) error {
	if err := required("id", string(u.ID)); err != nil {
		return err
	}
	if err := required("name", u.Name); err != nil {
		return err
	}
	if err := required("email", u.Email); err != nil {
		return err
	}
	if !u.Type.Valid() {
		return failf("type", "unknown user type %q", u.Type)
	}
	if err := ratingInRange("rating", u.Rating, entity.MinRating, entity.MaxRating); err != nil {
		return err
	}
	seen := make(map[entity.ReviewID]struct{}, len(u.Reviews))
	for _, id := range u.Reviews {
		if id == "" {
			return failf("reviews", "contains an empty review id")
		}
		if _, dup := seen[id]; dup {
			return failf("reviews", "contains duplicate review id %q", id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// Property checks the invariants of a property record.
func Property(p *entity.Property) error {
	if err := required("id", string(p.ID)); err != nil {
		return err
	}
	if err := required("landlordId", string(p.LandlordID)); err != nil {
		return err
	}
	if err := required("title", p.Title); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return failf("status", "unknown property status %q", p.Status)
	}
	if err := nonNegative("rent.monthly", p.Rent.Monthly); err != nil {
		return err
	}
	if err := nonNegative("rent.deposit", p.Rent.Deposit); err != nil {
		return err
	}
	if p.Specs.Bedrooms < 0 {
		return failf("specifications.bedrooms", "must not be negative, got %d", p.Specs.Bedrooms)
	}
	if p.Specs.Bathrooms < 0 {
		return failf("specifications.bathrooms", "must not be negative, got %d", p.Specs.Bathrooms)
	}
	if p.Views < 0 {
		return failf("views", "must not be negative, got %d", p.Views)
	}
	if p.FavoriteCount < 0 {
		return failf("favoriteCount", "must not be negative, got %d", p.FavoriteCount)
	}
	return nil
}

// Review checks the invariants of a review record.
func Review(r *entity.Review) error {
	if err := required("id", string(r.ID)); err != nil {
		return err
	}
	if err := required("propertyId", string(r.PropertyID)); err != nil {
		return err
	}
	if err := required("userId", string(r.UserID)); err != nil {
		return err
	}
	if err := ratingInRange("rating", r.Rating, entity.MinRating, entity.MaxRating); err != nil {
		return err
	}
	subs := map[string]float64{
		"subRatings.cleanliness":   r.Sub.Cleanliness,
		"subRatings.location":      r.Sub.Location,
		"subRatings.value":         r.Sub.Value,
		"subRatings.communication": r.Sub.Communication,
	}
	for field, value := range subs {
		if err := ratingInRange(field, value, entity.MinRating, entity.MaxRating); err != nil {
			return err
		}
	}
	if r.Helpful < 0 {
		return failf("helpful", "must not be negative, got %d", r.Helpful)
	}
	return nil
}

// Rental checks the invariants of a rental record.
func Rental(r *entity.Rental) error {
	if err := required("id", string(r.ID)); err != nil {
		return err
	}
	if err := required("propertyId", string(r.PropertyID)); err != nil {
		return err
	}
	if err := required("tenantId", string(r.TenantID)); err != nil {
		return err
	}
	if err := required("landlordId", string(r.LandlordID)); err != nil {
		return err
	}
	if !r.Status.Valid() {
		return failf("status", "unknown rental status %q", r.Status)
	}
	if r.LeaseStart.IsZero() {
		return failf("leaseStart", "is required")
	}
	if !r.LeaseEnd.After(r.LeaseStart) {
		return failf("leaseEnd", "must be after leaseStart")
	}
	if err := nonNegative("monthlyRent", r.MonthlyRent); err != nil {
		return err
	}
	if err := nonNegative("deposit", r.Deposit); err != nil {
		return err
	}
	for i, p := range r.Payments {
		if p.Amount <= 0 {
			return failf("paymentHistory", "payment %d must have a positive amount", i)
		}
	}
	return nil
}

// Application checks the invariants of an application record.
func Application(a *entity.Application) error {
	if err := required("id", string(a.ID)); err != nil {
		return err
	}
	if err := required("propertyId", string(a.PropertyID)); err != nil {
		return err
	}
	if err := required("tenantId", string(a.TenantID)); err != nil {
		return err
	}
	if !a.Status.Valid() {
		return failf("status", "unknown application status %q", a.Status)
	}
	return nil
}

// Message checks the invariants of a message record.
func Message(m *entity.Message) error {
	if err := required("id", string(m.ID)); err != nil {
		return err
	}
	if err := required("senderId", string(m.SenderID)); err != nil {
		return err
	}
	if err := required("receiverId", string(m.ReceiverID)); err != nil {
		return err
	}
	if m.SenderID == m.ReceiverID {
		return failf("receiverId", "sender and receiver must differ")
	}
	if err := required("body", m.Body); err != nil {
		return err
	}
	return nil
}

// Maintenance checks the invariants of a maintenance ticket.
func Maintenance(m *entity.Maintenance) error {
	if err := required("id", string(m.ID)); err != nil {
		return err
	}
	if err := required("propertyId", string(m.PropertyID)); err != nil {
		return err
	}
	if err := required("tenantId", string(m.TenantID)); err != nil {
		return err
	}
	if err := required("title", m.Title); err != nil {
		return err
	}
	if !m.Status.Valid() {
		return failf("status", "unknown maintenance status %q", m.Status)
	}
	if !m.Priority.Valid() {
		return failf("priority", "unknown priority %q", m.Priority)
	}
	return nil
}
