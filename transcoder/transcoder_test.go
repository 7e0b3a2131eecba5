package transcoder

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	trerrors "github.com/wippyai/draco-transcoder/errors"
)

// goString reads a NUL-terminated byte sequence the way the native side
// would, so tests observe exactly what crosses the boundary.
func goString(p *byte) string {
	var out []byte
	for i := 0; ; i++ {
		c := *(*byte)(unsafe.Add(unsafe.Pointer(p), i))
		if c == 0 {
			return string(out)
		}
		out = append(out, c)
	}
}

// writeInput creates a dummy input file and returns its path.
func writeInput(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("glTF"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscode_Success(t *testing.T) {
	input := writeInput(t, "scene.gltf")

	calls := 0
	tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
		calls++
		return 0
	})

	if err := tc.Transcode(input, "out.gltf", dracotranscoder.DefaultOptions()); err != nil {
		t.Fatalf("Transcode failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("entry point called %d times, want 1", calls)
	}
}

func TestTranscode_InputNotFound(t *testing.T) {
	calls := 0
	tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
		calls++
		return 0
	})

	err := tc.Transcode(filepath.Join(t.TempDir(), "missing.gltf"), "out.gltf", dracotranscoder.DefaultOptions())
	if err == nil {
		t.Fatal("Transcode succeeded with missing input")
	}

	var structured *trerrors.Error
	if !errors.As(err, &structured) {
		t.Fatalf("error is not structured: %v", err)
	}
	if structured.Kind != trerrors.KindInputNotFound {
		t.Errorf("error kind = %q, want %q", structured.Kind, trerrors.KindInputNotFound)
	}
	if calls != 0 {
		t.Errorf("entry point called %d times before validation, want 0", calls)
	}
}

func TestTranscode_EmptyPaths(t *testing.T) {
	input := writeInput(t, "scene.gltf")

	calls := 0
	tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
		calls++
		return 0
	})

	tests := []struct {
		name   string
		input  string
		output string
	}{
		{"empty input", "", "out.gltf"},
		{"empty output", input, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tc.Transcode(tt.input, tt.output, dracotranscoder.DefaultOptions())
			var structured *trerrors.Error
			if !errors.As(err, &structured) || structured.Kind != trerrors.KindInvalidInput {
				t.Fatalf("want invalid_input error, got %v", err)
			}
		})
	}

	if calls != 0 {
		t.Errorf("entry point called %d times with empty paths, want 0", calls)
	}
}

func TestTranscode_NativeCodePreserved(t *testing.T) {
	input := writeInput(t, "scene.gltf")

	for _, code := range []int32{-4, -1, 1, 2, 255, -2147483648} {
		tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
			return code
		})

		err := tc.Transcode(input, "out.gltf", dracotranscoder.DefaultOptions())
		if err == nil {
			t.Fatalf("code %d: Transcode reported success", code)
		}

		got, ok := trerrors.NativeCode(err)
		if !ok {
			t.Fatalf("code %d: error carries no native code: %v", code, err)
		}
		if got != code {
			t.Errorf("native code = %d, want %d", got, code)
		}
	}
}

func TestTranscode_OptionsPassedThrough(t *testing.T) {
	input := writeInput(t, "scene.gltf")

	var seen dracotranscoder.Options
	tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
		seen = *opts
		return 0
	})

	want := dracotranscoder.Options{
		PositionBits:     14,
		TexCoordBits:     12,
		NormalBits:       10,
		ColorBits:        8,
		TangentBits:      8,
		WeightBits:       8,
		GenericBits:      8,
		CompressionLevel: 10,
	}
	if err := tc.Transcode(input, "out.gltf", want); err != nil {
		t.Fatal(err)
	}
	if seen != want {
		t.Errorf("native side saw %+v, want %+v", seen, want)
	}
}

func TestTranscode_PathBytesRoundTrip(t *testing.T) {
	// Non-ASCII path bytes must reach the native side unmodified.
	input := writeInput(t, "sène-模型.gltf")
	output := filepath.Join(t.TempDir(), "出力-ü.gltf")

	var seenIn, seenOut string
	tc := New(func(in, out *byte, opts *dracotranscoder.Options) int32 {
		seenIn = goString(in)
		seenOut = goString(out)
		return 0
	})

	if err := tc.Transcode(input, output, dracotranscoder.DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	if seenIn != input {
		t.Errorf("input bytes = %q, want %q", seenIn, input)
	}
	if seenOut != output {
		t.Errorf("output bytes = %q, want %q", seenOut, output)
	}
}

func TestTranscode_NoEntryPoint(t *testing.T) {
	input := writeInput(t, "scene.gltf")

	err := New(nil).Transcode(input, "out.gltf", dracotranscoder.DefaultOptions())
	var structured *trerrors.Error
	if !errors.As(err, &structured) || structured.Kind != trerrors.KindInvalidInput {
		t.Fatalf("want invalid_input error for unbound transcoder, got %v", err)
	}
}
