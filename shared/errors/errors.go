package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigurationMissing is returned before any I/O when a required value is absent.
	ErrConfigurationMissing = errors.New("configuration missing")
	// ErrConfigurationInvalid is returned when a configured value is present but malformed.
	ErrConfigurationInvalid = errors.New("configuration invalid")
	// ErrUnexpectedResponse is returned when an upstream response lacks an expected field.
	ErrUnexpectedResponse = errors.New("unexpected response format")
	// ErrUpstreamCall marks transport failures and platform-reported errors.
	ErrUpstreamCall = errors.New("upstream call failed")
	// ErrInvalidPDF is returned when a downloaded document does not start with %PDF.
	ErrInvalidPDF = errors.New("response is not a valid PDF")
)

// UpstreamError describes a failed call to one of the external services.
// StatusCode is zero for transport errors and for platform errors reported in a 2xx body.
type UpstreamError struct {
	Service    string
	Operation  string
	StatusCode int
	Detail     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s", e.Service, e.Operation)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrUpstreamCall) match every UpstreamError.
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamCall
}

// RenderError wraps every failure of the document rendering step.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "carbone API error: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// StageError is what the pipeline returns when one of its stages fails.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
