package errorx

import (
	"runtime"
	"strconv"
	"strings"
)

const stackTraceDepth = 32

type Frame struct {
	File     string
	Line     int
	Function string
}

// String renders the frame as "\tat pkg.Func (file:line)".
func (f Frame) String() string {
	var sb strings.Builder
	f.write(&sb)
	return sb.String()
}

func (f Frame) write(sb *strings.Builder) {
	sb.WriteString("\tat ")
	sb.WriteString(shortname(f.Function))
	sb.WriteString(" (")
	sb.WriteString(f.File)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(f.Line))
	sb.WriteByte(')')
}

// Callers holds the program counters captured when an Error is created.
type Callers []uintptr

func (c Callers) Frames() []Frame {
	if len(c) == 0 {
		return nil
	}
	frames := make([]Frame, 0, len(c))
	it := runtime.CallersFrames(c)
	for {
		fr, more := it.Next()
		frames = append(frames, Frame{File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			return frames
		}
	}
}

// String renders one frame per line, innermost first.
func (c Callers) String() string {
	var sb strings.Builder
	for _, f := range c.Frames() {
		f.write(&sb)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// callers skips itself and runtime.Callers on top of skip.
func callers(skip int) Callers {
	pcs := make([]uintptr, stackTraceDepth)
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

func shortname(name string) string {
	return name[strings.LastIndex(name, "/")+1:]
}
