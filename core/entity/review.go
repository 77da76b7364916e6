package entity

import "time"

// SubRatings breaks an overall review rating into aspects. Each value is on
// the same [MinRating, MaxRating] scale as the overall rating.
type SubRatings struct {
	Cleanliness   float64 `json:"cleanliness,omitempty"`
	Location      float64 `json:"location,omitempty"`
	Value         float64 `json:"value,omitempty"`
	Communication float64 `json:"communication,omitempty"`
}

// Review is written by one user about one property. Helpful is a
// monotonically non-decreasing counter.
type Review struct {
	ID         ReviewID   `json:"id"`
	PropertyID PropertyID `json:"propertyId"`
	UserID     UserID     `json:"userId"`
	Rating     float64    `json:"rating"`
	Sub        SubRatings `json:"subRatings"`
	Comment    string     `json:"comment,omitempty"`
	Helpful    int        `json:"helpful"`
	Verified   bool       `json:"verified"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt"`
}

func (r Review) Key() string        { return string(r.ID) }
func (r Review) Created() time.Time { return r.CreatedAt }
