package errorx

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// maxMessageBody caps how much of a response body ends up in Error().
const maxMessageBody = 256

// ServerError creates an Error with type ErrorTypeServer for a well formed
// non-2xx response. Body keeps the full text; the message holds a quoted,
// single line excerpt.
func ServerError(statusCode int, body string) *Error {
	e := newWithStack(
		ErrorTypeServer,
		fmt.Sprintf("server returned %d: %s", statusCode, quoteExcerpt(body)),
	)
	e.StatusCode = statusCode
	e.Body = body
	return e
}

func IsServerError(e error) bool {
	return isType(e, ErrorTypeServer)
}

func quoteExcerpt(s string) string {
	if len(s) <= maxMessageBody {
		return strconv.Quote(s)
	}
	cut := maxMessageBody
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strconv.Quote(s[:cut]) + "..."
}
