package minilang

import (
	"fmt"
	"io"
)

// Reporter is implemented by structures that can display errors to the
// user. It separates error reporting from error rendering so the driver
// decides how diagnostics reach the terminal.
type Reporter interface {
	Report(err error)
	HadError() bool
}

// SimpleReporter writes each error as-is to the inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

// NewSimpleReporter creates a reporter writing to the given writer.
func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

func (r *SimpleReporter) Report(err error) {
	r.hadErr = true
	fmt.Fprintln(r.writer, err)
}

func (r *SimpleReporter) HadError() bool {
	return r.hadErr
}
