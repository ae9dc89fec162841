package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClient_RegisterAndLoginUsesDistinctEmails(t *testing.T) {
	var mu sync.Mutex
	emails := map[string]bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)

		if r.URL.Path == "/register" {
			mu.Lock()
			defer mu.Unlock()
			if emails[body["email"]] {
				w.WriteHeader(http.StatusUnprocessableEntity)
				return
			}
			emails[body["email"]] = true
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(User{Name: body["name"], Email: body["email"]})
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	for i := 0; i < 50; i++ {
		_, err := client.RegisterAndLogin("host")
		require.NoError(t, err)
	}
	assert.Len(t, emails, 50)
}
