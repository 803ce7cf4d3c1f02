package exceptions

import (
	"fmt"
	"mediboard-service/internal/pkg/constvars"
)

// Errors raised while talking to the remote hospital backend.
var (
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnreachable, constvars.ErrDevFailedToSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnreachable, constvars.ErrDevFailedToReadResponseBody)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevFailedToDecodeResponse, resource))
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeds)
	}
)

// ErrBackendRejected carries the backend-supplied message to the client when
// one is present, so the console can surface it as-is in an error toast.
func ErrBackendRejected(statusCode int, backendMessage, resource string) *CustomError {
	clientMessage := backendMessage
	if clientMessage == "" {
		clientMessage = constvars.ErrClientSomethingWrongWithApplication
	}
	return BuildNewCustomError(nil, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendRejectedRequest, resource, statusCode))
}
