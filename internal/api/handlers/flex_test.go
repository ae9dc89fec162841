package handlers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    flexInt
		wantErr bool
	}{
		{input: `42`, want: 42},
		{input: `"42"`, want: 42},
		{input: `" 7 "`, want: 7},
		{input: `""`, want: 0},
		{input: `null`, want: 0},
		{input: `-3`, want: -3},
		{input: `1e3`, want: 1000},
		{input: `"2.0"`, want: 2},
		{input: `"99.9"`, wantErr: true},
		{input: `99.9`, wantErr: true},
		{input: `1e30`, wantErr: true},
		{input: `"-1e30"`, wantErr: true},
		{input: `"9223372036854775808"`, wantErr: true},
		{input: `"NaN"`, wantErr: true},
		{input: `"Inf"`, wantErr: true},
		{input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got flexInt
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlexInt_PlaceRequestRejectsLossyValues(t *testing.T) {
	var req PlaceRequest
	err := json.Unmarshal([]byte(`{"price":"99.9","maxGuests":1e30,"checkIn":"NaN"}`), &req)
	assert.Error(t, err)
}

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	var got flexTime
	require.NoError(t, json.Unmarshal([]byte(`"2026-07-01"`), &got))
	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), got.Time)

	require.NoError(t, json.Unmarshal([]byte(`"2026-07-01T10:30:00+02:00"`), &got))
	assert.Equal(t, time.Date(2026, 7, 1, 8, 30, 0, 0, time.UTC), got.Time.UTC())

	assert.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &got))
	assert.Error(t, json.Unmarshal([]byte(`20260701`), &got))
}
