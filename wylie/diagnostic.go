package wylie

import (
	"fmt"
	"strconv"
)

// Diagnostic is an advisory message about the input, together with the
// (1-based) input line it refers to.
type Diagnostic struct {
	Line    int    `json:"line" msgpack:"line"`
	Message string `json:"message" msgpack:"message"`
}

func (d Diagnostic) String() string {
	return "line " + strconv.Itoa(d.Line) + ": " + d.Message
}

// warn appends a diagnostic to diags, which may be nil.
func (conv *Converter) warn(diags *[]Diagnostic, line int, format string, args ...interface{}) {
	d := Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)}
	if diags != nil {
		*diags = append(*diags, d)
	}
	if conv.opts.PrintWarnings {
		T().Infof("%s", d)
	}
}
