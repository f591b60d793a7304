package utils

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	internal_errors "github.com/itchan-dev/signflow/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeValidate decodes a JSON body and checks its validate tags. Both
// failures are reported as ErrUnexpectedResponse.
func DecodeValidate(r io.Reader, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		return fmt.Errorf("%w: %v", internal_errors.ErrUnexpectedResponse, err)
	}
	return nil
}

func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return fmt.Errorf("%w: body is invalid json: %v", internal_errors.ErrUnexpectedResponse, err)
	}
	return nil
}

// NewRequestID returns a value for the X-Request-Id header of outgoing calls.
func NewRequestID() string { return "req_" + uuid.NewString() }

// Truncate returns at most n leading bytes of b as a string.
func Truncate(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return string(b)
}
