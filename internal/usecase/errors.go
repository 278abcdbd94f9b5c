package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyMessage    = errors.New("empty message")
	ErrMalformedID     = errors.New("malformed identifier")
	ErrNoIdentity      = errors.New("employer identity not resolved")
	ErrNoJobSelected   = errors.New("no job selected")
	ErrAlreadyProposed = errors.New("already proposed")
	ErrBusy            = errors.New("action already in flight")
	ErrUpstream        = errors.New("upstream request failed")
)
