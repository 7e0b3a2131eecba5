package dracotranscoder

// Symbol is the C symbol exported by the native library and bound by the
// loader package.
const Symbol = "draco_transcode_gltf"

// Options mirrors the native DracoOptions record.
//
// The native side reads this as a C struct of eight consecutive 4-byte
// signed integers. Field order and widths are part of the ABI contract and
// must not change; all fields share the same width, so the layout carries
// no padding on any supported platform.
//
// Quantization bit depths are meaningful in [0, 30] and the compression
// level in [0, 10]. The wrapper does not range-check them: the native
// library validates its own inputs and rejects out-of-range values through
// its return code.
type Options struct {
	PositionBits     int32
	TexCoordBits     int32
	NormalBits       int32
	ColorBits        int32
	TangentBits      int32
	WeightBits       int32
	GenericBits      int32
	CompressionLevel int32
}

// DefaultOptions returns the upstream draco_transcoder defaults. The exact
// values are a compatibility contract with the native tool and must be
// preserved.
func DefaultOptions() Options {
	return Options{
		PositionBits:     11,
		TexCoordBits:     10,
		NormalBits:       8,
		ColorBits:        8,
		TangentBits:      8,
		WeightBits:       8,
		GenericBits:      8,
		CompressionLevel: 7,
	}
}

// TranscodeFunc is the Go-side signature of the native entry point:
//
//	int draco_transcode_gltf(const char *input, const char *output,
//	                         DracoOptions *options);
//
// input and output point to NUL-terminated UTF-8 path bytes. A zero return
// means success; any other value is an opaque native error code.
type TranscodeFunc func(input, output *byte, options *Options) int32
