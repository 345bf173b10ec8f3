package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisly/beauty-store/internal/apperr"
)

type sample struct {
	Name   string   `json:"name" validate:"required,notblank,max=10"`
	Email  string   `json:"email" validate:"omitempty,email"`
	Score  *float64 `json:"score,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amount int      `json:"amount" validate:"gte=0"`
}

func ptr(f float64) *float64 { return &f }

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{"valid", sample{Name: "Labial", Email: "a@b.co", Score: ptr(4)}, ""},
		{"nil optional score", sample{Name: "Labial"}, ""},
		{"missing name", sample{}, "name is required"},
		{"blank name", sample{Name: "   "}, "name is required"},
		{"name too long", sample{Name: "abcdefghijk"}, "name must be at most 10 characters"},
		{"bad email", sample{Name: "x", Email: "nope"}, "email must be a valid email address"},
		{"score too low", sample{Name: "x", Score: ptr(0)}, "score must be greater than or equal to 1"},
		{"score too high", sample{Name: "x", Score: ptr(6)}, "score must be less than or equal to 5"},
		{"negative amount", sample{Name: "x", Amount: -1}, "amount must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStructJoinsMessages(t *testing.T) {
	err := Struct(sample{Amount: -2})
	require.Error(t, err)
	assert.Equal(t, "name is required; amount must be greater than or equal to 0", err.Error())
}
