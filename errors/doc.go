// Package errors provides structured error types for the draco-transcoder
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes context relevant to the FFI
// boundary: the library file involved, the offending path, the raw native
// return code, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseResolve, errors.KindLoadFailed).
//		Library("libdraco_transcoder_shared.so").
//		Detail("dlopen failed").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LibraryNotFound("libdraco_transcoder_shared.so")
//	err := errors.Transcode(-4)
//
// All errors implement the standard error interface and support
// errors.Is/As. Native return codes are opaque: the native library does not
// publish their meanings, so this package surfaces them verbatim and
// attaches no semantics beyond "failure".
package errors
