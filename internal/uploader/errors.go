package uploader

import "errors"

var (
	// ErrFileAccess is returned when the image cannot be read. No request is sent in that case.
	ErrFileAccess = errors.New("image file is not readable")
	// ErrTransport is returned when the request never produced a response.
	ErrTransport = errors.New("vectors endpoint unreachable")
	// ErrUnexpectedStatus is returned for any non 2xx response. The body is not
	// parsed, even when it carries a "vector" key.
	ErrUnexpectedStatus = errors.New("vectors endpoint returned unexpected status")
	// ErrMalformedResponse is returned when the response body is not a JSON object.
	ErrMalformedResponse = errors.New("vectors endpoint returned malformed json")
	// ErrMissingVector is returned when the response object has no "vector" key.
	ErrMissingVector = errors.New(`response has no "vector" key`)
	// ErrMalformedVector is returned by Vector.Floats when the value is not a numeric array.
	ErrMalformedVector = errors.New("vector is not an array of numbers")
)
