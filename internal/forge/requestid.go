/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this package for license terms
 */

package forge

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDHeader is sent on every call so server side logs for a single
// wizard run can be correlated with ours.
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// GetRequestID extracts the request ID from the context, if present.
func GetRequestID(ctx context.Context) (string, bool) {
	if v := ctx.Value(requestIDKey{}); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// EnsureRequestID returns a context that is guaranteed to carry a request
// ID, and the ID itself. An existing ID is reused; otherwise a new UUID is
// attached.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestID(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return context.WithValue(ctx, requestIDKey{}, id), id
}
