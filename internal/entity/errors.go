package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyFinanced   = errors.New("already financed")
	ErrAlreadyPaid       = errors.New("already paid")
	ErrExpired           = errors.New("expired")
	ErrDuplicateBid      = errors.New("duplicate bid")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
