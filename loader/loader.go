package loader

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/errors"
)

// baseName is the logical library name; platform prefix/suffix conventions
// are applied on top of it.
const baseName = "draco_transcoder_shared"

// buildDirs are the conventional build-output locations searched after the
// current working directory, in order.
var buildDirs = []string{
	"build",
	"cmake-build-release",
	"cmake-build-debug",
	filepath.Join("..", "draco_build"),
	filepath.Join("..", "build"),
}

// LibraryName returns the platform binary filename for the transcoder
// library on the given GOOS.
func LibraryName(goos string) string {
	switch goos {
	case "windows":
		return baseName + ".dll"
	case "darwin":
		return "lib" + baseName + ".dylib"
	default:
		return "lib" + baseName + ".so"
	}
}

// SearchPaths returns every candidate path for filename, in the order they
// are checked: the bare filename (current working directory) first, then
// each build directory.
func SearchPaths(filename string) []string {
	paths := make([]string, 0, len(buildDirs)+1)
	paths = append(paths, filename)
	for _, dir := range buildDirs {
		paths = append(paths, filepath.Join(dir, filename))
	}
	return paths
}

// locate returns the first candidate path that exists on disk. The search
// short-circuits: once a candidate exists it is chosen even if a later one
// also exists.
func locate(filename string) (string, bool) {
	for _, path := range SearchPaths(filename) {
		if _, err := os.Stat(path); err != nil {
			Logger().Debug("library candidate not found", zap.String("path", path))
			continue
		}
		return path, true
	}
	return "", false
}

// Library is a handle to the loaded native transcoder: the resolved binary
// path and the bound entry point. It is immutable after Resolve and safe to
// share between goroutines. The underlying shared library stays mapped for
// the process lifetime and is never unloaded.
type Library struct {
	path string
	fn   dracotranscoder.TranscodeFunc
}

// Path returns the binary path the library was loaded from.
func (l *Library) Path() string {
	return l.path
}

// Func returns the bound native entry point.
func (l *Library) Func() dracotranscoder.TranscodeFunc {
	return l.fn
}

// Resolve locates the transcoder binary for the host platform, loads it,
// and binds the draco_transcode_gltf entry point. It returns a
// library_not_found error if no search-path candidate exists.
func Resolve() (*Library, error) {
	filename := LibraryName(runtime.GOOS)

	path, ok := locate(filename)
	if !ok {
		return nil, errors.LibraryNotFound(filename)
	}

	lib, err := open(path)
	if err != nil {
		return nil, err
	}

	Logger().Info("loaded transcoder library", zap.String("path", path))
	return lib, nil
}

var (
	defaultLib  *Library
	defaultErr  error
	defaultOnce sync.Once
)

// Default returns the process-wide library handle, resolving it on first
// use. The result, success or failure, is fixed for the process lifetime.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Resolve()
	})
	return defaultLib, defaultErr
}
