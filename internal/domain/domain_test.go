package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceInput_Apply(t *testing.T) {
	owner := uuid.New()
	p := &Place{ID: uuid.New(), OwnerID: owner, Title: "old", Price: 99}

	PlaceInput{
		Title: "new",
		Perks: []string{"wifi", "tv", "wifi"},
	}.Apply(p)

	assert.Equal(t, "new", p.Title)
	assert.Equal(t, 0, p.Price)
	assert.NotNil(t, p.Photos)
	assert.Empty(t, p.Photos)
	assert.Equal(t, []string{"wifi", "tv"}, []string(p.Perks))
	assert.Equal(t, owner, p.OwnerID)
}

func TestBooking_MarshalJSON(t *testing.T) {
	placeID := uuid.New()
	b := Booking{ID: uuid.New(), PlaceID: placeID, UserID: uuid.New(), Name: "n"}

	data, err := json.Marshal(b)
	require.NoError(t, err)
	var flat map[string]any
	require.NoError(t, json.Unmarshal(data, &flat))
	assert.Equal(t, placeID.String(), flat["place"])
	assert.Equal(t, b.UserID.String(), flat["user"])
	assert.Equal(t, "n", flat["name"])

	b.Place = &Place{ID: placeID, Title: "Cabin"}
	data, err = json.Marshal(&b)
	require.NoError(t, err)
	var joined struct {
		Place struct {
			ID    uuid.UUID `json:"id"`
			Title string    `json:"title"`
		} `json:"place"`
	}
	require.NoError(t, json.Unmarshal(data, &joined))
	assert.Equal(t, placeID, joined.Place.ID)
	assert.Equal(t, "Cabin", joined.Place.Title)
}
