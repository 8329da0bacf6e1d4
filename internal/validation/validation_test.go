package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Size   string `validate:"omitempty,pizzasize"`
	Status string `validate:"omitempty,orderstatus"`
}

func TestCustomRules(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	testCases := []struct {
		name  string
		input sample
		valid bool
	}{
		{name: "known size and status", input: sample{Size: "Large", Status: "On the way"}, valid: true},
		{name: "empty fields are skipped", input: sample{}, valid: true},
		{name: "unknown size", input: sample{Size: "XXL"}, valid: false},
		{name: "status is case-sensitive", input: sample{Status: "delivered"}, valid: false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
