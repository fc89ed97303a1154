package errorx

import (
	"errors"
	"fmt"
	"regexp"

	pkgerrors "github.com/pkg/errors"
)

// Error is the single error type returned by the upload packages. The Type
// tells callers which failure branch they are on; StatusCode and Body are only
// set for ErrorTypeServer.
type Error struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"statusCode,omitempty"`
	Body       string    `json:"body,omitempty"`

	OriginalError error `json:"-"` // Not returned to clients

	stack Callers
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Type.String(), e.Message, e.OriginalError.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

func (e *Error) Unwrap() error {
	return e.OriginalError
}

// StackTrace returns the callers captured when the error was created.
func (e *Error) StackTrace() Callers {
	return e.stack
}

// WithCause attaches the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.OriginalError = err
	return e
}

func newWithStack(t ErrorType, msg string) *Error {
	return &Error{
		Type:    t,
		Message: msg,
		stack:   callers(2),
	}
}

var messageRegexp = regexp.MustCompile(`^\[(.*?)\] (.*)$`)

// NewErrorFromMessage parses the "[TYPE] message" form produced by Error.
func NewErrorFromMessage(msg string) (*Error, error) {
	m := messageRegexp.FindStringSubmatch(msg)
	if m == nil {
		return nil, fmt.Errorf("%q is not a valid error type", msg)
	}

	eT, err := ParseErrorType(m[1])
	if err != nil {
		return nil, err
	}

	return &Error{
		Type:    eT,
		Message: m[2],
	}, nil
}

// IsError reports whether e (or something it wraps) is an *Error of a known type.
func IsError(e error) (*Error, bool) {
	if e == nil {
		return nil, false
	}

	var mE *Error
	if !errors.As(e, &mE) {
		// errors created with pkg/errors before Unwrap support only expose Cause
		c, ok := pkgerrors.Cause(e).(*Error)
		if !ok {
			return nil, false
		}
		mE = c
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return mE, true
}

func isType(e error, t ErrorType) bool {
	mE, ok := IsError(e)
	if !ok {
		return false
	}

	return mE.Type == t
}
