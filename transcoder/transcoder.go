package transcoder

import (
	"os"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/errors"
	"github.com/wippyai/draco-transcoder/loader"
)

// Transcoder invokes a bound transcode entry point. It holds no per-call
// state and is safe for concurrent use provided the underlying entry point
// is reentrant.
type Transcoder struct {
	fn dracotranscoder.TranscodeFunc
}

// New returns a Transcoder calling fn. Tests substitute stub functions
// here; production code usually goes through NewFromLibrary or the
// package-level Transcode.
func New(fn dracotranscoder.TranscodeFunc) *Transcoder {
	return &Transcoder{fn: fn}
}

// NewFromLibrary returns a Transcoder bound to a resolved library handle.
func NewFromLibrary(lib *loader.Library) *Transcoder {
	return &Transcoder{fn: lib.Func()}
}

// Transcode compresses the glTF scene at inputPath into outputPath using
// the given options. File contents are opaque to the wrapper; the native
// library owns parsing, encoding, and output-file creation.
//
// The native entry point is only called with validated, non-empty paths.
// A nonzero native return code is surfaced verbatim as a transcode_failed
// error; the wrapper attaches no meaning to specific codes.
func (t *Transcoder) Transcode(inputPath, outputPath string, opts dracotranscoder.Options) error {
	if t.fn == nil {
		return errors.InvalidInput(errors.PhaseInvoke, "no entry point bound")
	}
	if inputPath == "" {
		return errors.InvalidInput(errors.PhaseValidate, "input path is empty")
	}
	if outputPath == "" {
		return errors.InvalidInput(errors.PhaseValidate, "output path is empty")
	}
	if _, err := os.Stat(inputPath); err != nil {
		return errors.InputNotFound(inputPath)
	}

	code := t.fn(cstring(inputPath), cstring(outputPath), &opts)
	if code != 0 {
		return errors.Transcode(code)
	}
	return nil
}

// Transcode compresses inputPath into outputPath using the process-wide
// library handle, resolving it on first use.
func Transcode(inputPath, outputPath string, opts dracotranscoder.Options) error {
	lib, err := loader.Default()
	if err != nil {
		return err
	}
	return NewFromLibrary(lib).Transcode(inputPath, outputPath, opts)
}

// cstring copies s into a NUL-terminated byte buffer. The path bytes cross
// the boundary exactly as Go holds them (UTF-8), with no transcoding or
// truncation.
func cstring(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}
