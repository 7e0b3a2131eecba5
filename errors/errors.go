package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseResolve  Phase = "resolve"  // library discovery and symbol binding
	PhaseValidate Phase = "validate" // caller-side input validation
	PhaseInvoke   Phase = "invoke"   // native entry-point invocation
)

// Kind categorizes the error
type Kind string

const (
	KindLibraryNotFound Kind = "library_not_found"
	KindLoadFailed      Kind = "load_failed"
	KindSymbolMissing   Kind = "symbol_missing"
	KindInputNotFound   Kind = "input_not_found"
	KindInvalidInput    Kind = "invalid_input"
	KindTranscodeFailed Kind = "transcode_failed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Library string
	Path    string
	Detail  string
	Code    int32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Library != "" {
		b.WriteString(" library ")
		b.WriteString(strconv.Quote(e.Library))
	}
	if e.Path != "" {
		b.WriteString(" path ")
		b.WriteString(strconv.Quote(e.Path))
	}
	if e.Kind == KindTranscodeFailed {
		b.WriteString(" code ")
		b.WriteString(strconv.FormatInt(int64(e.Code), 10))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// NativeCode extracts the raw native return code from err. ok is false if
// err does not carry a native transcode failure.
func NativeCode(err error) (code int32, ok bool) {
	for err != nil {
		if e, isStructured := err.(*Error); isStructured && e.Kind == KindTranscodeFailed {
			return e.Code, true
		}
		u, unwraps := err.(interface{ Unwrap() error })
		if !unwraps {
			return 0, false
		}
		err = u.Unwrap()
	}
	return 0, false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Library sets the library file involved
func (b *Builder) Library(name string) *Builder {
	b.err.Library = name
	return b
}

// Path sets the offending file path
func (b *Builder) Path(p string) *Builder {
	b.err.Path = p
	return b
}

// Code sets the raw native return code
func (b *Builder) Code(code int32) *Builder {
	b.err.Code = code
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors

// LibraryNotFound reports that no search-path candidate contained the
// expected library binary.
func LibraryNotFound(filename string) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindLibraryNotFound,
		Library: filename,
		Detail:  "no candidate path contains the transcoder library",
	}
}

// LoadFailed reports that a located library binary could not be loaded.
func LoadFailed(path string, cause error) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindLoadFailed,
		Library: path,
		Detail:  "load shared library",
		Cause:   cause,
	}
}

// SymbolMissing reports that a loaded library does not export the expected
// entry point.
func SymbolMissing(path, symbol string, cause error) *Error {
	return &Error{
		Phase:   PhaseResolve,
		Kind:    KindSymbolMissing,
		Library: path,
		Detail:  fmt.Sprintf("symbol %q not exported", symbol),
		Cause:   cause,
	}
}

// InputNotFound reports a missing input file, detected before crossing the
// FFI boundary.
func InputNotFound(path string) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInputNotFound,
		Path:   path,
		Detail: "input file does not exist",
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Transcode wraps a nonzero native return code. The code is opaque and
// passed through unmodified.
func Transcode(code int32) *Error {
	return &Error{
		Phase:  PhaseInvoke,
		Kind:   KindTranscodeFailed,
		Code:   code,
		Detail: "native transcoder reported failure",
	}
}
