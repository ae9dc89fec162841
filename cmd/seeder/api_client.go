package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/google/uuid"
)

// APIClient talks to the backend as one browser session. The session
// cookie set by /login is kept in the client's jar.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client with an empty session
func NewAPIClient(baseURL string) *APIClient {
	jar, _ := cookiejar.New(nil)
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
}

// Response types matching backend

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Place struct {
	ID        string   `json:"id"`
	Owner     string   `json:"owner"`
	Title     string   `json:"title"`
	Address   string   `json:"address"`
	Photos    []string `json:"photos"`
	Perks     []string `json:"perks"`
	MaxGuests int      `json:"maxGuests"`
	Price     int      `json:"price"`
}

type Booking struct {
	ID       string          `json:"id"`
	User     string          `json:"user"`
	Place    json.RawMessage `json:"place"`
	CheckIn  time.Time       `json:"checkIn"`
	CheckOut time.Time       `json:"checkOut"`
	Price    int             `json:"price"`
}

type PlaceInput struct {
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       int      `json:"price"`
}

type BookingInput struct {
	Place          string `json:"place"`
	CheckIn        string `json:"checkIn"`
	CheckOut       string `json:"checkOut"`
	NumberOfGuests int    `json:"numberOfGuests"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Price          int    `json:"price"`
}

const seedPassword = "seedpassword123"

// RegisterAndLogin creates a new account and logs this client in as it
func (c *APIClient) RegisterAndLogin(baseName string) (*User, error) {
	suffix := uuid.NewString()[:8]
	name := fmt.Sprintf("%s_%s", baseName, suffix)
	email := fmt.Sprintf("%s_%s@seed.local", baseName, suffix)

	var user User
	if err := c.do(http.MethodPost, "/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": seedPassword,
	}, &user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := c.do(http.MethodPost, "/login", map[string]string{
		"email":    email,
		"password": seedPassword,
	}, nil); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &user, nil
}

// UploadByLink asks the backend to fetch an image and returns its reference
func (c *APIClient) UploadByLink(link string) (string, error) {
	var name string
	if err := c.do(http.MethodPost, "/upload-by-link", map[string]string{"link": link}, &name); err != nil {
		return "", err
	}
	return name, nil
}

// CreatePlace creates a listing owned by the current session
func (c *APIClient) CreatePlace(input PlaceInput) (*Place, error) {
	var place Place
	if err := c.do(http.MethodPost, "/places", input, &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// ListPlaces fetches every listing
func (c *APIClient) ListPlaces() ([]Place, error) {
	var places []Place
	if err := c.do(http.MethodGet, "/places", nil, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Book books a place for the current session
func (c *APIClient) Book(input BookingInput) (*Booking, error) {
	var booking Booking
	if err := c.do(http.MethodPost, "/bookings", input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListBookings fetches the current session's bookings
func (c *APIClient) ListBookings() ([]Booking, error) {
	var bookings []Booking
	if err := c.do(http.MethodGet, "/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// do sends body as JSON and decodes a 200 response into out when non-nil
func (c *APIClient) do(method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s request failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s failed (status %d): %s", method, path, resp.StatusCode, string(bodyBytes))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
