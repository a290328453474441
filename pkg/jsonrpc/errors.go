package jsonrpc

import (
	"errors"
	"fmt"
	"net/http"
)

// JSON-RPC error codes used by SDK services.
const (
	// ErrCodeParseError indicates invalid JSON was received.
	ErrCodeParseError = -32700

	// ErrCodeInvalidRequest indicates the JSON is not a valid request envelope.
	ErrCodeInvalidRequest = -32600

	// ErrCodeMethodNotFound indicates the method does not exist.
	ErrCodeMethodNotFound = -32601

	// ErrCodeInvalidParams indicates invalid method parameters.
	ErrCodeInvalidParams = -32602

	// ErrCodeInternalError indicates an internal JSON-RPC error.
	ErrCodeInternalError = -32603

	// ErrCodeServerError is returned when the service implementation raised.
	ErrCodeServerError = -32500

	// ErrCodeUnauthorized is used for credential failures. It is never sent by
	// the service; the caller assigns it for 401/403 responses and local
	// auth precondition failures.
	ErrCodeUnauthorized = -32400
)

// Sentinel causes for local authorization failures.
var (
	// ErrNoToken is returned when a method requires auth and no token is set.
	ErrNoToken = errors.New("RPC method requires authentication but credentials were not provided")

	// ErrInsecureAuth is returned when a token would be sent over plain http.
	ErrInsecureAuth = errors.New("RPC method requires authentication but the service URL is insecure http; allow insecure connections to proceed")
)

// TransportError reports a failure to reach the service or read its reply.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("calling %s at %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RPCError reports a JSON-RPC level failure: an error object returned by the
// service, an unparseable reply, or rejected credentials.
type RPCError struct {
	Method     string
	Name       string
	Code       int
	Message    string
	Data       string // server side detail, often a stack trace
	HTTPStatus int

	cause error
}

func (e *RPCError) Error() string {
	return e.Message
}

func (e *RPCError) Unwrap() error {
	return e.cause
}

// Unauthorized reports whether the failure was a credential problem.
func (e *RPCError) Unauthorized() bool {
	return e.Code == ErrCodeUnauthorized ||
		e.HTTPStatus == http.StatusUnauthorized ||
		e.HTTPStatus == http.StatusForbidden
}

// IsUnauthorized reports whether err is an unauthorized RPCError.
func IsUnauthorized(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Unauthorized()
}

// NewRPCError creates an RPCError from a decoded error object.
func NewRPCError(method string, obj *ErrorObject, httpStatus int) *RPCError {
	return &RPCError{
		Method:     method,
		Name:       obj.Name,
		Code:       obj.Code,
		Message:    obj.Message,
		Data:       obj.Error,
		HTTPStatus: httpStatus,
	}
}

// UnauthorizedError creates an unauthorized RPCError wrapping cause.
func UnauthorizedError(method string, cause error, httpStatus int) *RPCError {
	return &RPCError{
		Method:     method,
		Name:       "UnauthorizedException",
		Code:       ErrCodeUnauthorized,
		Message:    cause.Error(),
		HTTPStatus: httpStatus,
		cause:      cause,
	}
}

// MalformedResponseError creates an RPCError for a reply that could not be
// understood.
func MalformedResponseError(method string, httpStatus int, detail string) *RPCError {
	return &RPCError{
		Method:     method,
		Name:       "JSONRPCError",
		Code:       ErrCodeParseError,
		Message:    fmt.Sprintf("malformed response from %s (HTTP %d): %s", method, httpStatus, detail),
		HTTPStatus: httpStatus,
	}
}
