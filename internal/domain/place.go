package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Place struct {
	ID          uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerID     uuid.UUID                   `json:"owner" gorm:"type:uuid;not null;index"`
	Title       string                      `json:"title"`
	Address     string                      `json:"address"`
	Photos      datatypes.JSONSlice[string] `json:"photos" gorm:"type:jsonb"`
	Description string                      `json:"description"`
	Perks       datatypes.JSONSlice[string] `json:"perks" gorm:"type:jsonb"`
	ExtraInfo   string                      `json:"extraInfo"`
	CheckIn     int                         `json:"checkIn"`
	CheckOut    int                         `json:"checkOut"`
	MaxGuests   int                         `json:"maxGuests"`
	Price       int                         `json:"price"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`

	Owner *User `json:"-" gorm:"foreignKey:OwnerID"`
}

// PlaceInput holds the caller-editable fields of a place. The owner is
// never part of it.
type PlaceInput struct {
	Title       string
	Address     string
	Photos      []string
	Description string
	Perks       []string
	ExtraInfo   string
	CheckIn     int
	CheckOut    int
	MaxGuests   int
	Price       int
}

// Apply overwrites every mutable field of p with the input.
func (in PlaceInput) Apply(p *Place) {
	p.Title = in.Title
	p.Address = in.Address
	p.Photos = datatypes.JSONSlice[string](nonNil(in.Photos))
	p.Description = in.Description
	p.Perks = datatypes.JSONSlice[string](uniqueStrings(in.Perks))
	p.ExtraInfo = in.ExtraInfo
	p.CheckIn = in.CheckIn
	p.CheckOut = in.CheckOut
	p.MaxGuests = in.MaxGuests
	p.Price = in.Price
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// uniqueStrings drops duplicates, keeping first-seen order.
func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
