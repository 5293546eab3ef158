package domain

import "errors"

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrScheduleNotFound      = errors.New("no published schedule matches the requested screening")
	ErrSeatUnavailable       = errors.New("seat(s) are already occupied for this screening")
	ErrInvalidSeat           = errors.New("seat number is outside the screen capacity")
	ErrInvalidSeatTransition = errors.New("seat status does not permit the requested transition")
	ErrSeatHeld              = errors.New("seat(s) are held by another session")
	ErrEditConflict          = errors.New("edit conflict")
)
