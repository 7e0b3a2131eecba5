package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	dracotranscoder "github.com/wippyai/draco-transcoder"
	"github.com/wippyai/draco-transcoder/loader"
	"github.com/wippyai/draco-transcoder/transcoder"
)

func main() {
	defaults := dracotranscoder.DefaultOptions()

	var (
		qp          = flag.Int("qp", int(defaults.PositionBits), "Position quantization bits [0-30]")
		qt          = flag.Int("qt", int(defaults.TexCoordBits), "Texture coordinate quantization bits [0-30]")
		qn          = flag.Int("qn", int(defaults.NormalBits), "Normal quantization bits [0-30]")
		qc          = flag.Int("qc", int(defaults.ColorBits), "Color quantization bits [0-30]")
		qtg         = flag.Int("qtg", int(defaults.TangentBits), "Tangent quantization bits [0-30]")
		qw          = flag.Int("qw", int(defaults.WeightBits), "Weight quantization bits [0-30]")
		qg          = flag.Int("qg", int(defaults.GenericBits), "Generic attribute quantization bits [0-30]")
		cl          = flag.Int("cl", int(defaults.CompressionLevel), "Compression level [0-10]")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Usage: transcode [flags] <input.gltf> <output.gltf>")
		fmt.Fprintln(os.Stderr, "       transcode -i <input.gltf> <output.gltf>  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer log.Sync()
		loader.SetLogger(log)
	}

	opts := dracotranscoder.Options{
		PositionBits:     int32(*qp),
		TexCoordBits:     int32(*qt),
		NormalBits:       int32(*qn),
		ColorBits:        int32(*qc),
		TangentBits:      int32(*qtg),
		WeightBits:       int32(*qw),
		GenericBits:      int32(*qg),
		CompressionLevel: int32(*cl),
	}

	input, output := flag.Arg(0), flag.Arg(1)

	if *interactive {
		if err := runInteractive(input, output, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := transcoder.Transcode(input, output, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Compressed %s to %s\n", input, output)
}
