package entity

import "time"

// UserType classifies an account.
type UserType string

const (
	UserTenant   UserType = "tenant"
	UserLandlord UserType = "landlord"
	UserAgency   UserType = "agency"
)

// Valid reports whether the user type is one of the allowed literals.
func (t UserType) Valid() bool {
	switch t {
	case UserTenant, UserLandlord, UserAgency:
		return true
	}
	return false
}

// Rating bounds shared by users and reviews.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// User is an account in the marketplace. Reviews holds the identifiers of
// reviews written by this user; the review records themselves live in the
// reviews collection.
type User struct {
	ID        UserID     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Type      UserType   `json:"type"`
	Rating    float64    `json:"rating"`
	Reviews   []ReviewID `json:"reviews"`
	Verified  bool       `json:"verified"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (u User) Key() string        { return string(u.ID) }
func (u User) Created() time.Time { return u.CreatedAt }
