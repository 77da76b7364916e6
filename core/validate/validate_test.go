package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mirriamnjeri/rentals/core/entity"
)

func validUser() entity.User {
	return entity.User{
		ID:      "u-1",
		Name:    "Grace",
		Email:   "grace@example.com",
		Type:    entity.UserLandlord,
		Rating:  4.5,
		Reviews: []entity.ReviewID{},
	}
}

func TestUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u := validUser()
		assert.NoError(t, User(&u))
	})

	cases := []struct {
		name   string
		mutate func(*entity.User)
		field  string
	}{
		{"missing id", func(u *entity.User) { u.ID = "" }, "id"},
		{"missing name", func(u *entity.User) { u.Name = "" }, "name"},
		{"missing email", func(u *entity.User) { u.Email = "" }, "email"},
		{"unknown type", func(u *entity.User) { u.Type = "admin" }, "type"},
		{"rating below range", func(u *entity.User) { u.Rating = -0.1 }, "rating"},
		{"rating above range", func(u *entity.User) { u.Rating = 5.1 }, "rating"},
		{"empty review id", func(u *entity.User) { u.Reviews = []entity.ReviewID{""} }, "reviews"},
		{"duplicate review id", func(u *entity.User) { u.Reviews = []entity.ReviewID{"r", "r"} }, "reviews"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := validUser()
			tc.mutate(&u)
			err := User(&u)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func validProperty() entity.Property {
	return entity.Property{
		ID:         "p-1",
		LandlordID: "u-1",
		Title:      "Two-bedroom apartment",
		Status:     entity.PropertyAvailable,
		Specs:      entity.Specifications{Bedrooms: 2, Bathrooms: 1},
		Rent:       entity.Rent{Monthly: 1500, Deposit: 1500},
	}
}

func TestProperty(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := validProperty()
		assert.NoError(t, Property(&p))
	})

	cases := []struct {
		name   string
		mutate func(*entity.Property)
		field  string
	}{
		{"missing landlord", func(p *entity.Property) { p.LandlordID = "" }, "landlordId"},
		{"missing title", func(p *entity.Property) { p.Title = "" }, "title"},
		{"unknown status", func(p *entity.Property) { p.Status = "demolished" }, "status"},
		{"negative rent", func(p *entity.Property) { p.Rent.Monthly = -1 }, "rent.monthly"},
		{"negative deposit", func(p *entity.Property) { p.Rent.Deposit = -1 }, "rent.deposit"},
		{"negative views", func(p *entity.Property) { p.Views = -1 }, "views"},
		{"negative favorites", func(p *entity.Property) { p.FavoriteCount = -1 }, "favoriteCount"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProperty()
			tc.mutate(&p)
			err := Property(&p)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestReview(t *testing.T) {
	valid := func() entity.Review {
		return entity.Review{
			ID:         "r-1",
			PropertyID: "p-1",
			UserID:     "u-1",
			Rating:     4,
			Sub:        entity.SubRatings{Cleanliness: 5, Location: 3.5},
		}
	}

	t.Run("valid", func(t *testing.T) {
		r := valid()
		assert.NoError(t, Review(&r))
	})

	t.Run("rating out of range", func(t *testing.T) {
		r := valid()
		r.Rating = 6
		assert.Error(t, Review(&r))
	})

	t.Run("sub-rating out of range", func(t *testing.T) {
		r := valid()
		r.Sub.Value = -1
		assert.Error(t, Review(&r))
	})

	t.Run("negative helpful", func(t *testing.T) {
		r := valid()
		r.Helpful = -1
		assert.Error(t, Review(&r))
	})
}

func TestRental(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	valid := func() entity.Rental {
		return entity.Rental{
			ID:          "l-1",
			PropertyID:  "p-1",
			TenantID:    "u-1",
			LandlordID:  "u-2",
			Status:      entity.RentalPending,
			LeaseStart:  start,
			LeaseEnd:    start.AddDate(1, 0, 0),
			MonthlyRent: 1500,
		}
	}

	t.Run("valid", func(t *testing.T) {
		r := valid()
		assert.NoError(t, Rental(&r))
	})

	t.Run("lease end before start", func(t *testing.T) {
		r := valid()
		r.LeaseEnd = start.AddDate(0, 0, -1)
		err := Rental(&r)
		require.Error(t, err)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "leaseEnd", ve.Field)
	})

	t.Run("lease end equal to start", func(t *testing.T) {
		r := valid()
		r.LeaseEnd = start
		assert.Error(t, Rental(&r))
	})

	t.Run("non-positive payment", func(t *testing.T) {
		r := valid()
		r.Payments = []entity.Payment{{Amount: 0}}
		assert.Error(t, Rental(&r))
	})
}

func TestApplication(t *testing.T) {
	a := entity.Application{ID: "a-1", PropertyID: "p-1", TenantID: "u-1", Status: entity.ApplicationPending}
	assert.NoError(t, Application(&a))

	a.Status = "withdrawn"
	assert.Error(t, Application(&a))
}

func TestMessage(t *testing.T) {
	valid := func() entity.Message {
		return entity.Message{ID: "m-1", SenderID: "u-1", ReceiverID: "u-2", Body: "hi"}
	}

	t.Run("valid", func(t *testing.T) {
		m := valid()
		assert.NoError(t, Message(&m))
	})

	t.Run("sender equals receiver", func(t *testing.T) {
		m := valid()
		m.ReceiverID = m.SenderID
		assert.Error(t, Message(&m))
	})

	t.Run("empty body", func(t *testing.T) {
		m := valid()
		m.Body = ""
		assert.Error(t, Message(&m))
	})
}

func TestMaintenance(t *testing.T) {
	valid := func() entity.Maintenance {
		return entity.Maintenance{
			ID:         "t-1",
			PropertyID: "p-1",
			TenantID:   "u-1",
			Title:      "Leaking tap",
			Status:     entity.MaintenanceReported,
			Priority:   entity.PriorityMedium,
		}
	}

	t.Run("valid", func(t *testing.T) {
		m := valid()
		assert.NoError(t, Maintenance(&m))
	})

	t.Run("unknown priority", func(t *testing.T) {
		m := valid()
		m.Priority = "urgent"
		err := Maintenance(&m)
		require.Error(t, err)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "priority", ve.Field)
	})

	t.Run("unknown status", func(t *testing.T) {
		m := valid()
		m.Status = "paused"
		assert.Error(t, Maintenance(&m))
	})
}
