package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// DescribeDecodeErr turns a json decoding error into a short human readable reason.
func DescribeDecodeErr(err error) string {
	var (
		syntaxErr      *json.SyntaxError
		unmarshalError *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("malformed json at position %v", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "malformed json"
	case errors.As(err, &unmarshalError):
		return fmt.Sprintf("invalid value %v at position %v", unmarshalError.Value, unmarshalError.Offset)
	case errors.Is(err, io.EOF):
		return "body must not be empty"
	default:
		return fmt.Sprintf("failed to decode json: %v", err)
	}
}
