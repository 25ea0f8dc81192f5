// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDrawing is returned when the user drawing has no usable stroke.
	ErrEmptyDrawing = errors.New("evaluate: user drawing has no strokes with points")

	// ErrEmptyTemplate is returned when the template has no stroke with a segment.
	ErrEmptyTemplate = errors.New("evaluate: template has no strokes with at least two points")
)

// AttemptError ties a failure in ScoreBatch to the index of the attempt.
type AttemptError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *AttemptError) Error() string {
	return fmt.Sprintf("evaluate: attempt %d: %v", e.Index, e.Err)
}

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *AttemptError) Unwrap() error {
	return e.Err
}
