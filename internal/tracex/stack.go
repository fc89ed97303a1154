package internaltracex

import (
	"fmt"
	"runtime"
	"strings"
)

const (
	maxFrames     = 16
	maxTraceBytes = 2048
)

// GetStackTrace formats the current goroutine stack as "func\n\tfile:line"
// pairs. skipLevels is passed to runtime.Callers, so 0 is runtime.Callers
// itself and 1 is GetStackTrace. The output is cut after maxTraceBytes.
func GetStackTrace(skipLevels int) string {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skipLevels, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		fr, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", fr.Function, fr.File, fr.Line)
		if !more || sb.Len() > maxTraceBytes {
			return sb.String()
		}
	}
}
