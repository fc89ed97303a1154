package errorx

import "fmt"

// LocalReadErrorf creates an Error with type ErrorTypeLocalRead and a formatted message.
// It marks a file that could not be read from the local filesystem.
func LocalReadErrorf(cause error, format string, args ...any) *Error {
	return newWithStack(
		ErrorTypeLocalRead,
		fmt.Sprintf(format, args...),
	).WithCause(cause)
}

func IsLocalReadError(e error) bool {
	return isType(e, ErrorTypeLocalRead)
}
