package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ErrInvalidTimes is the client-side rejection for a shift whose
// window is empty or inverted. It is raised before any remote call.
var ErrInvalidTimes = errors.New("start time must be before end time")

// validateTimes enforces startTime < endTime. Equal timestamps are
// rejected on submission even though derivation tolerates them.
func validateTimes(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidTimes
	}
	return nil
}

// validateStruct runs the validator tags on a request payload.
func validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
