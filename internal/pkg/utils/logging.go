package utils

import (
	"context"
	"mediboard-service/internal/pkg/constvars"
)

// RequestIDFromContext pulls the request ID placed by the middleware; empty
// when the call did not originate from an HTTP request.
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}
