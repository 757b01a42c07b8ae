package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityGetCoords(t *testing.T) {
	c := City{
		Lat: 40.7128,
		Lng: -74.0060,
	}

	coords := c.GetCoords()

	assert.Equal(t, 40.7128, coords.Lat)
	assert.Equal(t, -74.0060, coords.Lng)
}

func TestCityValidate(t *testing.T) {
	valid := City{Name: "Tokyo", Lat: 35.6762, Lng: 139.6503, Priority: 2}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		city City
	}{
		{"missing name", City{Lat: 1, Lng: 1, Priority: 1}},
		{"latitude too low", City{Name: "X", Lat: -90.5, Lng: 0, Priority: 1}},
		{"latitude too high", City{Name: "X", Lat: 91, Lng: 0, Priority: 1}},
		{"longitude too low", City{Name: "X", Lat: 0, Lng: -181, Priority: 1}},
		{"longitude too high", City{Name: "X", Lat: 0, Lng: 180.1, Priority: 1}},
		{"priority zero", City{Name: "X", Lat: 0, Lng: 0, Priority: 0}},
		{"priority too high", City{Name: "X", Lat: 0, Lng: 0, Priority: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.city.Validate())
		})
	}
}

func TestCityValidateBoundaryCoordinates(t *testing.T) {
	c := City{Name: "Pole", Lat: -90, Lng: 180, Priority: 5}
	assert.NoError(t, c.Validate())
}
