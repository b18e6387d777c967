package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(sampleRequest{Email: "a@x.com", Name: "a"})
	assert.Empty(t, errs)

	errs = ValidateStruct(sampleRequest{Email: "not-an-email"})
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "This field is required", errs["Name"])
}
