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
	"gorm.io/datatypes"
)

func TestPlaceRepository_CreateAndGet(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlaceRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	place := &domain.Place{
		ID:        uuid.New(),
		OwnerID:   owner.ID,
		Title:     "Treehouse",
		Photos:    datatypes.JSONSlice[string]{"2.jpg", "1.jpg"},
		Perks:     datatypes.JSONSlice[string]{"pets"},
		MaxGuests: 2,
		Price:     80,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, place))

	got, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Treehouse", got.Title)
	assert.Equal(t, owner.ID, got.OwnerID)
	assert.Equal(t, []string{"2.jpg", "1.jpg"}, []string(got.Photos))
	assert.Equal(t, []string{"pets"}, []string(got.Perks))

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestPlaceRepository_UpdateKeepsOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlaceRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	intruder, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	place := testutil.NewPlaceBuilder().WithOwner(owner).Build(t, testDB.DB)

	place.Title = "Renamed"
	place.Price = 0
	place.Perks = datatypes.JSONSlice[string]{}
	place.OwnerID = intruder.ID
	require.NoError(t, repo.Update(ctx, place))

	got, err := repo.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, 0, got.Price, "zero values are written")
	assert.Empty(t, got.Perks)
	assert.Equal(t, owner.ID, got.OwnerID, "owner column is never updated")

	missing := &domain.Place{ID: uuid.New(), OwnerID: owner.ID}
	assert.ErrorIs(t, repo.Update(ctx, missing), domain.ErrPlaceNotFound)
}

func TestPlaceRepository_Lists(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPlaceRepository(testDB.DB)
	ctx := context.Background()

	alice, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	bob, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewPlaceBuilder().WithOwner(alice).WithTitle("A1").Build(t, testDB.DB)
	testutil.NewPlaceBuilder().WithOwner(alice).WithTitle("A2").Build(t, testDB.DB)
	testutil.NewPlaceBuilder().WithOwner(bob).WithTitle("B1").Build(t, testDB.DB)

	mine, err := repo.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, alice.ID, p.OwnerID)
	}

	none, err := repo.ListByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
