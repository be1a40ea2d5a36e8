package domain

import "errors"

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user with this email already exists")
var ErrInvalidPassword = errors.New("invalid password")
var ErrInvalidInput = errors.New("invalid input")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many sign-in attempts")

// Token integrity faults. Always fatal to the current request, never retried.
var ErrTokenSigning = errors.New("failed to sign token")
var ErrInvalidToken = errors.New("invalid token")
