package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=8"`
	Username string `json:"username,omitempty" validate:"min=3"`
}

type dataPairsQuery struct {
	MembershipID string `query:"membership_id" validate:"required"`
	Offset       int    `query:"offset" validate:"min=0"`
}

func TestValidate(t *testing.T) {
	v := InitValidator()

	errs := v.Validate(registerForm{Email: "nope", Password: "short", Username: "ab"})
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "username")

	assert.Empty(t, v.Validate(registerForm{Email: "u@x.com", Password: "longenough", Username: "abc"}))
}

func TestValidate_QueryTagNames(t *testing.T) {
	errs := InitValidator().Validate(dataPairsQuery{Offset: -1})

	assert.Contains(t, errs, "membership_id")
	assert.Contains(t, errs, "offset")
}

func TestValidate_NonStruct(t *testing.T) {
	errs := InitValidator().Validate("not a struct")
	assert.Contains(t, errs, "_")
}
