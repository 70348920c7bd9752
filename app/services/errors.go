// Package services holds the business-logic layer between the HTTP
// controllers and the repositories.
package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("services: invalid credentials")

	// ErrDuplicateEmail is returned when signup hits an existing address.
	ErrDuplicateEmail = errors.New("services: email already registered")

	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("services: cart is empty")

	// ErrServiceUnavailable means a required external service is not
	// configured or not reachable.
	ErrServiceUnavailable = errors.New("services: service unavailable")
)
