// Package transcoder invokes the native Draco transcode entry point.
//
// A Transcoder wraps a bound entry point and performs the per-call work:
// caller-side input validation, NUL-terminated UTF-8 path marshaling, the
// native call itself, and mapping of the integer result. The input file's
// existence is checked before crossing the FFI boundary so the native side
// is never handed a path it might not validate robustly.
//
// Calls are synchronous and blocking; there is no cancellation, timeout,
// or retry. A call either fully succeeds (native return code 0) or fails
// as a whole.
package transcoder
