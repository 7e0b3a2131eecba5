// Package dracotranscoder provides Go bindings for the Draco glTF
// transcoder shared library.
//
// The library wraps the native draco_transcoder_shared binary, which owns
// all mesh encoding, attribute quantization, and entropy coding. This
// package only locates the binary, binds its exported entry point, and
// marshals the options record across the FFI boundary.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	draco-transcoder/    Root package with the Options record and entry-point signature
//	├── loader/          Platform library discovery and symbol binding
//	├── transcoder/      Per-call invocation, path marshaling, result mapping
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Compress a glTF file with the default quantization settings:
//
//	err := transcoder.Transcode("scene.gltf", "scene.draco.gltf",
//	    dracotranscoder.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Or resolve the library explicitly and reuse the bound handle:
//
//	lib, err := loader.Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tc := transcoder.NewFromLibrary(lib)
//	err = tc.Transcode("scene.gltf", "scene.draco.gltf", opts)
//
// # Thread Safety
//
// The resolved library handle is immutable after initialization and safe to
// share between goroutines. Whether concurrent Transcode calls are safe
// depends on the native entry point being reentrant; the wrapper assumes it
// is and adds no locking. Callers linking a non-reentrant build of the
// native library must serialize their calls.
//
// # Lifecycle
//
// The native library is loaded once, on first use, and stays mapped for the
// process lifetime. It is never unloaded.
package dracotranscoder
