package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"csv-serializer/internal/common"
)

// Code identifies the kind of a finding. The code alone decides its severity.
type Code string

const (
	CodeMissingDeclaration Code = "missing-declaration" // member has no type at all
	CodeUnrecognizedMember Code = "unrecognized-member" // a union member was dropped
	CodeUnsupportedType    Code = "unsupported-type"    // nothing in the declaration could be classified
	CodeClassified         Code = "classified"
)

// Severity orders findings from informational to fatal.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Severity returns the severity findings with code c are reported at.
func (c Code) Severity() Severity {
	switch c {
	case CodeMissingDeclaration:
		return SeverityError
	case CodeUnrecognizedMember, CodeUnsupportedType:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// Diagnostic is one finding about a destination member.
type Diagnostic struct {
	Code    Code
	Message string
	Owner   string // record the member belongs to, may be empty
	Member  string

	// Declared is the declared name the finding is about, empty when it concerns the whole member.
	Declared string
	// Suggestion is the keyword Declared was probably meant to be.
	Suggestion string
}

func (d Diagnostic) Severity() Severity {
	return d.Code.Severity()
}

// String renders "[owner] member: [code] message (did you mean `x`?)", leaving out empty parts.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Owner != "" {
		fmt.Fprintf(&b, "[%s] ", d.Owner)
	}
	if d.Member != "" {
		fmt.Fprintf(&b, "%s: ", d.Member)
	}
	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if d.Suggestion != "" {
		fmt.Fprintf(&b, " (did you mean `%s`?)", d.Suggestion)
	}

	return b.String()
}

// Diagnostics groups findings by severity, each group in insertion order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files diag under the severity of its code.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity() {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// Merge appends every finding of other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Err joins the error findings into one error, one line each, or returns nil.
func (d *Diagnostics) Err() error {
	errs := make([]error, 0, len(d.Errors))
	for _, e := range d.Errors {
		errs = append(errs, errors.New(e.String()))
	}

	return errors.Join(errs...)
}
