package storage

import "errors"

var (
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrNoBillingProfile   = errors.New("billing profile not found")
	ErrNoProfiles         = errors.New("no billing profiles found")
	ErrNoOrders           = errors.New("no orders found")
)
