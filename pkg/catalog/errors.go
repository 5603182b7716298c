package catalog

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid catalog client config")

	// ErrBadStatus is returned when the endpoint answers with a non-2xx status
	ErrBadStatus = errors.New("catalog endpoint returned non-success status")

	// ErrMalformedBody is returned when the response body is not a JSON product array
	ErrMalformedBody = errors.New("catalog response body is malformed")
)
