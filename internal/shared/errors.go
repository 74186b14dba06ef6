package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Remote catalog errors
	ErrNetworkFailure    = fmt.Errorf("network failure")
	ErrServerFailure     = fmt.Errorf("server failure")
	ErrMalformedResponse = fmt.Errorf("malformed response")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrInvalidRating   = fmt.Errorf("invalid rating")
	ErrInvalidSort     = fmt.Errorf("invalid sort order")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
