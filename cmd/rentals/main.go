// Command rentals exercises the store from the command line. The demo
// subcommand walks one listing through the full marketplace flow; stats
// prints per-collection record counts.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Mirriamnjeri/rentals/config"
	"github.com/Mirriamnjeri/rentals/core/entity"
	"github.com/Mirriamnjeri/rentals/core/query"
	"github.com/Mirriamnjeri/rentals/core/store"
	"github.com/Mirriamnjeri/rentals/sqlite"
)

func main() {
	root := &cobra.Command{
		Use:           "rentals",
		Short:         "Durable multi-collection store for a rental marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(demoCmd(), statsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// openStore wires config, logger, database, and store together.
func openStore() (*store.Store, *sqlite.DB, *zap.Logger, error) {
	cfg := config.Load()
	logger, err := cfg.Logger()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := sqlite.Open(cfg.DatabasePath, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := store.New(db.Collections(), logger)
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}
	return st, db, logger, nil
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print per-collection record counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, db, logger, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			defer logger.Sync()

			counts, err := st.Counts()
			if err != nil {
				return err
			}
			for _, name := range []string{
				store.CollectionUsers, store.CollectionProperties, store.CollectionReviews,
				store.CollectionRentals, store.CollectionApplications, store.CollectionMessages,
				store.CollectionMaintenance,
			} {
				fmt.Printf("%-14s %d\n", name, counts[name])
			}
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk one listing through the full marketplace flow",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, db, logger, err := openStore()
			if err != nil {
				return err
			}
			defer db.Close()
			defer logger.Sync()
			return runDemo(st)
		},
	}
}

func runDemo(st *store.Store) error {
	unsubscribe := st.Subscribe(store.CollectionProperties, func(ctx context.Context, ev store.ChangeEvent) error {
		fmt.Printf("event: %s %s %s\n", ev.Collection, ev.Op, ev.ID)
		return nil
	})
	defer unsubscribe()

	landlord, err := st.CreateUser(store.NewUser{
		Name:  "Grace Wanjiku",
		Email: "grace@example.com",
		Type:  entity.UserLandlord,
	})
	if err != nil {
		return err
	}
	tenant, err := st.CreateUser(store.NewUser{
		Name:  "Brian Otieno",
		Email: "brian@example.com",
		Type:  entity.UserTenant,
	})
	if err != nil {
		return err
	}

	property, err := st.CreateProperty(store.NewProperty{
		LandlordID:  landlord.ID,
		Title:       "Two-bedroom apartment in Kilimani",
		Description: "Bright corner unit close to the park.",
		Type:        "apartment",
		Location:    entity.Location{Address: "14 Rose Ave", City: "Nairobi"},
		Specs:       entity.Specifications{Bedrooms: 2, Bathrooms: 1, Furnished: true},
		Rent:        entity.Rent{Monthly: 1500, Deposit: 1500, Currency: "USD"},
		Amenities:   []string{"parking", "balcony"},
	})
	if err != nil {
		return err
	}
	fmt.Printf("listed property %s\n", property.ID)

	minBedrooms := 2
	city := "nairobi"
	matches, err := st.SearchProperties(store.PropertyFilter{
		City:        &city,
		MinBedrooms: &minBedrooms,
	}, query.DefaultPageDescriptor())
	if err != nil {
		return err
	}
	fmt.Printf("search matched %d listing(s)\n", len(matches))

	application, err := st.CreateApplication(store.NewApplication{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		Message:    "I can move in on the first of the month.",
	})
	if err != nil {
		return err
	}
	approved := entity.ApplicationApproved
	if _, err := st.UpdateApplication(application.ID, store.ApplicationPatch{Status: &approved}); err != nil {
		return err
	}
	fmt.Printf("application %s approved\n", application.ID)

	rental, err := st.CreateRental(store.NewRental{
		PropertyID:  property.ID,
		TenantID:    tenant.ID,
		LandlordID:  landlord.ID,
		LeaseStart:  time.Now(),
		LeaseEnd:    time.Now().AddDate(1, 0, 0),
		MonthlyRent: property.Rent.Monthly,
		Deposit:     property.Rent.Deposit,
	})
	if err != nil {
		return err
	}
	active := entity.RentalActive
	if _, err := st.UpdateRental(rental.ID, store.RentalPatch{Status: &active}); err != nil {
		return err
	}
	rented := entity.PropertyRented
	if _, err := st.UpdateProperty(property.ID, store.PropertyPatch{Status: &rented}); err != nil {
		return err
	}
	if _, err := st.RecordRentalPayment(rental.ID, entity.Payment{Amount: 1500, Method: "card"}); err != nil {
		return err
	}
	fmt.Printf("rental %s active with first payment recorded\n", rental.ID)

	ticket, err := st.CreateMaintenance(store.NewMaintenance{
		PropertyID: property.ID,
		TenantID:   tenant.ID,
		Title:      "Kitchen tap drips",
		Priority:   entity.PriorityLow,
	})
	if err != nil {
		return err
	}
	fmt.Printf("maintenance ticket %s reported\n", ticket.ID)

	message, err := st.CreateMessage(store.NewMessage{
		SenderID:   tenant.ID,
		ReceiverID: landlord.ID,
		PropertyID: property.ID,
		Body:       "The plumber can come Thursday morning.",
	})
	if err != nil {
		return err
	}
	if _, err := st.MarkMessageRead(message.ID); err != nil {
		return err
	}

	counts, err := st.Counts()
	if err != nil {
		return err
	}
	fmt.Println("collection counts:")
	for name, n := range counts {
		fmt.Printf("  %-14s %d\n", name, n)
	}
	return nil
}
