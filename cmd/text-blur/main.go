package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/text-blur/internal/detection"
	"github.com/ironsheep/text-blur/internal/imaging"
	"github.com/ironsheep/text-blur/internal/ocr"
	"github.com/ironsheep/text-blur/internal/redact"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Fprintln(os.Stderr, "text-blur - find specific text in an image and blur it")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Usage: text-blur [options] <image> <text> [text...]")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Environment variables:")
	fmt.Fprintln(os.Stderr, "  TEXT_BLUR_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("text-blur %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	var (
		output     string
		mode       string
		confidence int
		strength   int
		quality    int
		debug      bool
	)

	flag.StringVar(&output, "output", "", "path to save the output image (default <name>_blurred<ext>)")
	flag.StringVar(&output, "o", "", "shorthand for -output")
	flag.StringVar(&mode, "mode", detection.ModeAggressive, "preprocessing mode: default, aggressive or all")
	flag.StringVar(&mode, "m", detection.ModeAggressive, "shorthand for -mode")
	flag.IntVar(&confidence, "confidence", 60, "minimum OCR confidence score (0-100)")
	flag.IntVar(&confidence, "c", 60, "shorthand for -confidence")
	flag.IntVar(&strength, "blur", 51, "blur strength; even values are rounded up to odd")
	flag.IntVar(&strength, "b", 51, "shorthand for -blur")
	flag.IntVar(&quality, "quality", imaging.DefaultJPEGQuality, "JPEG quality for the output image (1-100)")
	flag.BoolVar(&debug, "debug", false, "also write a <name>_regions<ext> overlay of detected regions")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	// All pipeline output goes to stderr; stdout carries only the result path.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if os.Getenv("TEXT_BLUR_LOG_LEVEL") == "debug" {
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Printf("text-blur v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	outPath, err := redact.Run(context.Background(), ocr.NewClient(), redact.Options{
		ImagePath:     args[0],
		Phrases:       args[1:],
		OutputPath:    output,
		Mode:          mode,
		MinConfidence: float64(confidence),
		BlurStrength:  strength,
		JPEGQuality:   quality,
		Debug:         debug,
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Println(outPath)
}
