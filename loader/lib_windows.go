//go:build windows

package loader

import (
	"github.com/ebitengine/purego"
	"golang.org/x/sys/windows"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/errors"
)

// open loads the DLL at path and binds the transcode entry point via
// LoadLibrary/GetProcAddress.
func open(path string) (*Library, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return nil, errors.LoadFailed(path, err)
	}

	addr, err := windows.GetProcAddress(handle, dracotranscoder.Symbol)
	if err != nil {
		return nil, errors.SymbolMissing(path, dracotranscoder.Symbol, err)
	}

	var fn dracotranscoder.TranscodeFunc
	purego.RegisterFunc(&fn, addr)

	return &Library{path: path, fn: fn}, nil
}
