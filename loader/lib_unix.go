//go:build darwin || linux || freebsd

package loader

import (
	"github.com/ebitengine/purego"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/errors"
)

// open loads the shared library at path and binds the transcode entry
// point via dlopen/dlsym.
func open(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.LoadFailed(path, err)
	}

	addr, err := purego.Dlsym(handle, dracotranscoder.Symbol)
	if err != nil {
		return nil, errors.SymbolMissing(path, dracotranscoder.Symbol, err)
	}

	var fn dracotranscoder.TranscodeFunc
	purego.RegisterFunc(&fn, addr)

	return &Library{path: path, fn: fn}, nil
}
