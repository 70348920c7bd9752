package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signupForm struct {
	Name     string `json:"name"     validate:"required,min=2,max=10"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,regex=[0-9],regex=[A-Za-z]"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(signupForm{Name: "Asha", Email: "asha@example.com", Password: "secret123"})
	assert.Empty(t, errs)
}

func TestRequired(t *testing.T) {
	errs := Struct(signupForm{})
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestEmail(t *testing.T) {
	errs := Struct(signupForm{Name: "Asha", Email: "not-an-email", Password: "secret123"})
	assert.Contains(t, errs, "email")
}

func TestMinMaxOnStrings(t *testing.T) {
	errs := Struct(signupForm{Name: "A", Email: "a@b.co", Password: "secret123"})
	assert.Contains(t, errs, "name")

	errs = Struct(signupForm{Name: "much too long name", Email: "a@b.co", Password: "secret123"})
	assert.Contains(t, errs, "name")
}

func TestPasswordNeedsLetterAndDigit(t *testing.T) {
	errs := Struct(signupForm{Name: "Asha", Email: "a@b.co", Password: "lettersonly"})
	assert.Contains(t, errs, "password")

	errs = Struct(signupForm{Name: "Asha", Email: "a@b.co", Password: "12345678"})
	assert.Contains(t, errs, "password")
}

type reviewForm struct {
	Rating  int    `json:"rating"  validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"nullable,min=3"`
}

func TestNumericBounds(t *testing.T) {
	assert.Empty(t, Struct(reviewForm{Rating: 3}))
	assert.Contains(t, Struct(reviewForm{Rating: 6}), "rating")
	assert.Contains(t, Struct(reviewForm{Rating: 0}), "rating", "zero fails required for numbers")
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	assert.Empty(t, Struct(reviewForm{Rating: 4, Comment: ""}))
	assert.Contains(t, Struct(reviewForm{Rating: 4, Comment: "ab"}), "comment")
}

type statusForm struct {
	Status string `json:"status" validate:"required,in=Processing,Shipped,Delivered"`
}

func TestInRuleWithCommaValues(t *testing.T) {
	assert.Empty(t, Struct(statusForm{Status: "Shipped"}))
	assert.Contains(t, Struct(statusForm{Status: "Cancelled"}), "status")
}

type confirmForm struct {
	Password             string `json:"password" validate:"required,confirmed"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func TestConfirmed(t *testing.T) {
	assert.Empty(t, Struct(confirmForm{Password: "x1y2z3", PasswordConfirmation: "x1y2z3"}))
	assert.Contains(t, Struct(confirmForm{Password: "x1y2z3", PasswordConfirmation: "other"}), "password")
}

func TestErrorsKeyByJSONName(t *testing.T) {
	type form struct {
		FullName string `json:"fullName" validate:"required"`
	}
	errs := Struct(form{})
	assert.Contains(t, errs, "fullName")
}
