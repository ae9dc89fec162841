package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/repository/postgres"
	"github.com/dom/staybook/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewBookingRepository(testDB.DB)
	ctx := context.Background()

	guest, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	later := testutil.NewPlaceBuilder().WithTitle("Later").Build(t, testDB.DB)
	sooner := testutil.NewPlaceBuilder().WithTitle("Sooner").Build(t, testDB.DB)

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	for _, b := range []struct {
		place *domain.Place
		in    time.Time
	}{
		{later, start.AddDate(0, 1, 0)},
		{sooner, start},
	} {
		err := repo.Create(ctx, &domain.Booking{
			ID:             uuid.New(),
			PlaceID:        b.place.ID,
			UserID:         guest.ID,
			CheckIn:        b.in,
			CheckOut:       b.in.AddDate(0, 0, 2),
			NumberOfGuests: 1,
			Name:           "Guest",
			Phone:          "555",
			Price:          100,
			CreatedAt:      time.Now(),
		})
		require.NoError(t, err)
	}

	bookings, err := repo.ListByUser(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	require.NotNil(t, bookings[0].Place)
	assert.Equal(t, "Sooner", bookings[0].Place.Title)
	assert.Equal(t, "Later", bookings[1].Place.Title)

	t.Run("unknown place violates the foreign key", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Booking{
			ID:       uuid.New(),
			PlaceID:  uuid.New(),
			UserID:   guest.ID,
			CheckIn:  start,
			CheckOut: start,
			Name:     "Guest",
			Phone:    "555",
		})
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})
}
