// Package loader locates and loads the native Draco transcoder shared
// library and binds its exported entry point.
//
// Discovery is deterministic: the platform-specific filename is computed
// for the fixed logical name draco_transcoder_shared, then candidates are
// checked in a fixed order (current working directory, then a short list
// of conventional build-output directories). The first existing candidate
// wins; later candidates are never checked.
//
// Loading a shared library has process-wide side effects: it mutates the
// process symbol table and may run static initializers in the library.
// That is inherent to the FFI boundary and accepted here.
package loader
