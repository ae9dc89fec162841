package service_test

import (
	"context"
	"testing"

	"github.com/dom/staybook/internal/domain"
	"github.com/dom/staybook/internal/repository/postgres"
	"github.com/dom/staybook/internal/service"
	"github.com/dom/staybook/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceService(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	placeService := service.NewPlaceService(repos.Place)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().WithName("alice").Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().WithName("bob").Build(t, testDB.DB)

	input := domain.PlaceInput{
		Title:     "Beach house",
		Address:   "2 Sand St",
		Photos:    []string{"b.jpg", "a.jpg"},
		Perks:     []string{"wifi", "tv", "wifi"},
		CheckIn:   15,
		CheckOut:  10,
		MaxGuests: 6,
		Price:     250,
	}

	t.Run("create sets the caller as owner", func(t *testing.T) {
		place, err := placeService.Create(ctx, alice.ID, input)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, place.OwnerID)

		got, err := placeService.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.OwnerID)
		assert.Equal(t, []string{"b.jpg", "a.jpg"}, []string(got.Photos))
		assert.Equal(t, []string{"wifi", "tv"}, []string(got.Perks))
		assert.Equal(t, 250, got.Price)
	})

	t.Run("owner can update", func(t *testing.T) {
		place, err := placeService.Create(ctx, alice.ID, input)
		require.NoError(t, err)

		changed := input
		changed.Title = "Bigger beach house"
		changed.Photos = []string{"c.png"}
		changed.Price = 300

		_, err = placeService.Update(ctx, alice.ID, place.ID, changed)
		require.NoError(t, err)

		got, err := placeService.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Bigger beach house", got.Title)
		assert.Equal(t, []string{"c.png"}, []string(got.Photos))
		assert.Equal(t, 300, got.Price)
		assert.Equal(t, alice.ID, got.OwnerID)
	})

	t.Run("non-owner update is rejected and changes nothing", func(t *testing.T) {
		place, err := placeService.Create(ctx, alice.ID, input)
		require.NoError(t, err)

		hijack := input
		hijack.Title = "Bob's now"

		_, err = placeService.Update(ctx, bob.ID, place.ID, hijack)
		assert.ErrorIs(t, err, domain.ErrNotPlaceOwner)
		assert.ErrorIs(t, err, domain.ErrForbidden)

		got, err := placeService.GetByID(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, "Beach house", got.Title)
		assert.Equal(t, alice.ID, got.OwnerID)
	})

	t.Run("update of unknown place", func(t *testing.T) {
		_, err := placeService.Update(ctx, alice.ID, uuid.New(), input)
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("get unknown place", func(t *testing.T) {
		_, err := placeService.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
	})

	t.Run("list by owner only returns the owner's places", func(t *testing.T) {
		_, err := placeService.Create(ctx, bob.ID, input)
		require.NoError(t, err)

		mine, err := placeService.ListByOwner(ctx, bob.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, bob.ID, mine[0].OwnerID)

		all, err := placeService.ListAll(ctx)
		require.NoError(t, err)
		assert.Greater(t, len(all), len(mine))
	})
}
