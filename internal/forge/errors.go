/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus   = errors.New("unexpected http status from forge")
	ErrFailedToCallForge  = errors.New("failed to call forge")
	ErrFailedToDecodeBody = errors.New("failed to decode forge response")
	ErrEmptyCommandName   = errors.New("command name must not be empty")
)

// APIError is returned when the command service answers with a non-2xx
// status. Body holds the raw response entity so callers can log what the
// server complained about.
type APIError struct {
	Op         string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: %v", e.Op, e.Status)
	}
	return fmt.Sprintf("%v: %v: %v", e.Op, e.Status, summarizeBody(e.Body))
}

func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// summarizeBody truncates large entities for error strings; the full body
// stays available on APIError.Body.
func summarizeBody(s string) string {
	const maxLen = 200
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
