package utils

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrDatabaseError     = errors.New("database error")
	ErrProviderError     = errors.New("place provider error")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrPlaceNotFound     = errors.New("place not found")
	ErrDataIntegrity     = errors.New("data integrity error")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrAIUnavailable     = errors.New("ai service unavailable")
)
