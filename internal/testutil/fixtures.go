package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/staybook/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	name     string
	email    string
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		name:     fmt.Sprintf("testuser_%s", suffix),
		email:    fmt.Sprintf("user_%s@example.com", suffix),
		password: "testpassword123",
	}
}

// WithName sets the display name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Name:         b.name,
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndLogin registers the user through the API and logs in with client,
// leaving the session cookie in the client's jar.
func (b *UserBuilder) BuildAndLogin(t *testing.T, ts *TestServer, client *http.Client) *domain.User {
	t.Helper()

	resp := DoJSON(t, client, http.MethodPost, ts.URL("/register"), map[string]string{
		"name":     b.name,
		"email":    b.email,
		"password": b.password,
	})
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		t.Fatalf("register: unexpected status code: %d", resp.StatusCode)
	}
	var user domain.User
	AssertJSONResponse(t, resp, &user)
	resp.Body.Close()

	resp = DoJSON(t, client, http.MethodPost, ts.URL("/login"), map[string]string{
		"email":    b.email,
		"password": b.password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: unexpected status code: %d", resp.StatusCode)
	}

	return &user
}

// PlaceBuilder creates test places
type PlaceBuilder struct {
	owner  *domain.User
	title  string
	photos []string
	perks  []string
	price  int
}

// NewPlaceBuilder creates a new PlaceBuilder with default values
func NewPlaceBuilder() *PlaceBuilder {
	return &PlaceBuilder{
		title:  "Cabin by the lake",
		photos: []string{},
		perks:  []string{"wifi", "parking"},
		price:  120,
	}
}

// WithOwner sets the owner
func (b *PlaceBuilder) WithOwner(user *domain.User) *PlaceBuilder {
	b.owner = user
	return b
}

// WithTitle sets the title
func (b *PlaceBuilder) WithTitle(title string) *PlaceBuilder {
	b.title = title
	return b
}

// WithPhotos sets the photo references
func (b *PlaceBuilder) WithPhotos(photos ...string) *PlaceBuilder {
	b.photos = photos
	return b
}

// Build creates the place in the database
func (b *PlaceBuilder) Build(t *testing.T, db *gorm.DB) *domain.Place {
	t.Helper()

	if b.owner == nil {
		user, _ := NewUserBuilder().Build(t, db)
		b.owner = user
	}

	place := &domain.Place{
		ID:          uuid.New(),
		OwnerID:     b.owner.ID,
		Title:       b.title,
		Address:     "1 Shore Road",
		Photos:      datatypes.JSONSlice[string](b.photos),
		Description: "Quiet and cozy",
		Perks:       datatypes.JSONSlice[string](b.perks),
		CheckIn:     14,
		CheckOut:    11,
		MaxGuests:   4,
		Price:       b.price,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := db.Create(place).Error; err != nil {
		t.Fatalf("failed to create place: %v", err)
	}

	return place
}

// DoJSON sends body as JSON with client and returns the response
func DoJSON(t *testing.T, client *http.Client, method, url string, body interface{}) *http.Response {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, url, err)
	}
	return resp
}
