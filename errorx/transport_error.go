package errorx

import "fmt"

// TransportErrorf creates an Error with type ErrorTypeTransport wrapping cause.
// Connection, DNS, TLS, timeout and cancellation failures all land here.
func TransportErrorf(cause error, format string, args ...any) *Error {
	return newWithStack(
		ErrorTypeTransport,
		fmt.Sprintf(format, args...),
	).WithCause(cause)
}

func IsTransportError(e error) bool {
	return isType(e, ErrorTypeTransport)
}
