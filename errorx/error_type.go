package errorx

type ErrorType string

const (
	// The Invalid type should not be used, only useful to assert whether or not an error is an Error during cast
	ErrorTypeUnspecified     = ErrorType("")
	ErrorTypeInvalidArgument = ErrorType("INVALID_ARGUMENT")
	ErrorTypeLocalRead       = ErrorType("LOCAL_READ")
	ErrorTypeTransport       = ErrorType("TRANSPORT")
	ErrorTypeProtocol        = ErrorType("PROTOCOL")
	ErrorTypeServer          = ErrorType("SERVER")
)

func ParseErrorType(s string) (ErrorType, error) {
	e := ErrorType(s)
	if err := e.Validate(); err != nil {
		return ErrorTypeUnspecified, err
	}

	return e, nil
}

func (e ErrorType) String() string {
	return string(e)
}

func (e ErrorType) Validate() error {
	switch e {
	case ErrorTypeInvalidArgument,
		ErrorTypeLocalRead,
		ErrorTypeTransport,
		ErrorTypeProtocol,
		ErrorTypeServer:
		return nil
	default:
		return InvalidArgumentErrorf("invalid error type: %s", e)
	}
}
