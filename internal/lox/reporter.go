package lox

import (
	"fmt"
	"io"
)

// Reporter collects diagnostics produced by any phase of the pipeline and
// tracks whether a compile-phase or runtime-phase error has occurred, so the
// driver can pick the right process exit code without inspecting error
// values itself.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadRuntimeError() bool
	Reset()
}

// SimpleReporter writes every reported error, one per line, to an underlying
// writer (typically os.Stderr).
type SimpleReporter struct {
	writer        io.Writer
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a Reporter that writes to writer.
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

func (r *SimpleReporter) Report(err error) {
	fmt.Fprintln(r.writer, err)
	if _, ok := err.(*RuntimeError); ok {
		r.hadRuntimeErr = true
		return
	}
	r.hadErr = true
}

func (r *SimpleReporter) HadError() bool {
	return r.hadErr
}

func (r *SimpleReporter) HadRuntimeError() bool {
	return r.hadRuntimeErr
}

// Reset clears the error flags between REPL lines; a runtime error does not
// carry over into the next line any more than a compile error does.
func (r *SimpleReporter) Reset() {
	r.hadErr = false
	r.hadRuntimeErr = false
}
