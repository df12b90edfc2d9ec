package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type positionRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

func ptr(f float64) *float64 {
	return &f
}

func TestValidator(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&positionRequest{Lat: ptr(0), Lng: ptr(0)}))

	err := v.Validate(&positionRequest{Lat: ptr(91)})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"lat": "max=90", "lng": "required"}, Fields(err))
}

func TestFields_NonValidationError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}
