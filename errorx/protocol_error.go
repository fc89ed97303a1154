package errorx

import "fmt"

// ProtocolErrorf creates an Error with type ErrorTypeProtocol, used when a
// response arrived but could not be interpreted as HTTP.
func ProtocolErrorf(cause error, format string, args ...any) *Error {
	return newWithStack(
		ErrorTypeProtocol,
		fmt.Sprintf(format, args...),
	).WithCause(cause)
}

func IsProtocolError(e error) bool {
	return isType(e, ErrorTypeProtocol)
}
