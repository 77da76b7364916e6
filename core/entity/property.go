package entity

import "time"

// PropertyStatus is the listing state of a property.
type PropertyStatus string

const (
	PropertyAvailable   PropertyStatus = "available"
	PropertyRented      PropertyStatus = "rented"
	PropertyMaintenance PropertyStatus = "maintenance"
	PropertyUnlisted    PropertyStatus = "unlisted"
)

// Valid reports whether the status is one of the allowed literals.
func (s PropertyStatus) Valid() bool {
	switch s {
	case PropertyAvailable, PropertyRented, PropertyMaintenance, PropertyUnlisted:
		return true
	}
	return false
}

// Location describes where a property is.
type Location struct {
	Address   string  `json:"address"`
	City      string  `json:"city"`
	State     string  `json:"state,omitempty"`
	Zip       string  `json:"zip,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

// Specifications describes the physical shape of a property.
type Specifications struct {
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms int     `json:"bathrooms"`
	AreaSqFt  float64 `json:"areaSqFt,omitempty"`
	Furnished bool    `json:"furnished"`
}

// Rent holds the pricing terms of a listing.
type Rent struct {
	Monthly  float64 `json:"monthly"`
	Deposit  float64 `json:"deposit,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// Property is a listing owned by one landlord. Views and FavoriteCount are
// monotonically non-decreasing counters; they only move through the store's
// increment operations.
type Property struct {
	ID            PropertyID     `json:"id"`
	LandlordID    UserID         `json:"landlordId"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty"`
	Type          string         `json:"propertyType"`
	Status        PropertyStatus `json:"status"`
	Location      Location       `json:"location"`
	Specs         Specifications `json:"specifications"`
	Rent          Rent           `json:"rent"`
	Amenities     []string       `json:"amenities,omitempty"`
	Photos        []string       `json:"photos,omitempty"`
	Views         int            `json:"views"`
	FavoriteCount int            `json:"favoriteCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     *time.Time     `json:"updatedAt"`
}

func (p Property) Key() string        { return string(p.ID) }
func (p Property) Created() time.Time { return p.CreatedAt }
