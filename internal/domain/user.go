package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Profile is the public view of a user returned by /profile.
type Profile struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	ID    uuid.UUID `json:"id"`
}

func (u *User) Profile() Profile {
	return Profile{Name: u.Name, Email: u.Email, ID: u.ID}
}
