package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pixel-analytics/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Credentials(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		in         models.Credentials
		wantFields []string
	}{
		{name: "valid", in: models.Credentials{Email: "a@b.io", Password: "password1"}},
		{name: "missing email", in: models.Credentials{Password: "password1"}, wantFields: []string{"email"}},
		{name: "bad email", in: models.Credentials{Email: "nope", Password: "password1"}, wantFields: []string{"email"}},
		{name: "short password", in: models.Credentials{Email: "a@b.io", Password: "short"}, wantFields: []string{"password"}},
		{name: "everything wrong", in: models.Credentials{}, wantFields: []string{"email", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.in)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.ErrorIs(t, err, ErrInvalidData)
			assert.Len(t, ve.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, ve.Fields, f)
			}
		})
	}
}

func TestValidate_ConditionalGoalFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(context.Background(), models.GoalRequest{SiteID: "s", Name: "Signup", Type: models.GoalEvent})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "event_name")
	assert.NotContains(t, ve.Fields, "pattern")

	assert.NoError(t, v.Validate(context.Background(), &models.GoalRequest{
		SiteID: "s", Name: "Pricing", Type: models.GoalPageview, Pattern: "/pricing*",
	}))
}

func TestValidate_TrackCoordinates(t *testing.T) {
	v := NewValidator()
	x := 1.5

	err := v.Validate(context.Background(), models.TrackRequest{SiteID: "s", URL: "https://a.io/", X: &x})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "x must be less than or equal to 1", ve.Fields["x"])
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewValidator()

	err := v.Validate(context.Background(), models.Credentials{Email: "a@b.io"}, "Email")
	assert.NoError(t, err)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)

	var nilReq *models.Credentials
	assert.ErrorIs(t, v.Validate(context.Background(), nilReq), ErrUnsupportedType)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "b is required", "a": "a is required"}}
	assert.Equal(t, "validation failed: a is required; b is required", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidData))
	assert.Equal(t, "validation failed", (&ValidationError{}).Error())
}
