package stacktrace

import (
	"runtime"
	"strings"
)

const (
	maxFrames = 32
)

// Frame is one call site, split into package and function for log indexing.
type Frame struct {
	Line    int    `json:"line"`
	Func    string `json:"func"`
	File    string `json:"file"`
	Package string `json:"package"`
}

// NewStackTrace captures the caller's stack, skipping skip frames and every
// frame that belongs to the runtime itself.
func NewStackTrace(skip int) []Frame {
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(skip, pcs)
	callers := runtime.CallersFrames(pcs[:n])

	var frames []Frame
	for {
		rf, more := callers.Next()

		if f := toFrame(rf); f.Package != "runtime" {
			frames = append(frames, f)
		}

		if !more {
			return frames
		}
	}
}

func toFrame(rf runtime.Frame) Frame {
	pkg, fn := SplitFunctionName(rf.Function)

	return Frame{
		Line:    rf.Line,
		Func:    fn,
		File:    rf.File,
		Package: pkg,
	}
}

// SplitFunctionName splits "github.com/a/b.(*T).M" into "github.com/a/b" and "(*T).M".
// Linker generated symbols ("go.", "type.") have no package.
func SplitFunctionName(name string) (string, string) {
	if strings.HasPrefix(name, "go.") || strings.HasPrefix(name, "type.") {
		return "", name
	}

	slash := strings.LastIndex(name, "/")
	if slash < 0 {
		slash = 0
	}

	dot := strings.Index(name[slash:], ".")
	if dot < 0 {
		return "", name
	}

	return name[:slash+dot], name[slash+dot+1:]
}
