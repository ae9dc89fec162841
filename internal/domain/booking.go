package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PlaceID        uuid.UUID `json:"-" gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `json:"user" gorm:"type:uuid;not null;index"`
	CheckIn        time.Time `json:"checkIn" gorm:"not null"`
	CheckOut       time.Time `json:"checkOut" gorm:"not null"`
	NumberOfGuests int       `json:"numberOfGuests"`
	Name           string    `json:"name" gorm:"not null"`
	Phone          string    `json:"phone" gorm:"not null"`
	Price          int       `json:"price"`
	CreatedAt      time.Time `json:"createdAt"`

	Place *Place `json:"-" gorm:"foreignKey:PlaceID"`
	User  *User  `json:"-" gorm:"foreignKey:UserID"`
}

type BookingInput struct {
	PlaceID        uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	Name           string
	Phone          string
	Price          int
}

// MarshalJSON renders "place" as the joined place when it was loaded and as
// the bare place id otherwise.
func (b Booking) MarshalJSON() ([]byte, error) {
	type booking Booking
	var place any = b.PlaceID
	if b.Place != nil {
		place = b.Place
	}
	return json.Marshal(struct {
		booking
		Place any `json:"place"`
	}{booking(b), place})
}
