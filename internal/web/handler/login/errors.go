// Package login provides HTTP handlers and helpers for admin authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidCredentials is returned when the provided username and/or password
	// do not match the admin account. One generic message covers both cases so the
	// response never reveals which field was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInternalServerError is returned for unexpected failures during the login
	// process.
	ErrInternalServerError = errors.New("internal server error")
)
