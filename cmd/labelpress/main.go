package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/golang/freetype/truetype"

	"github.com/stickerfactory/labelpress"
	"github.com/stickerfactory/labelpress/printer"
	"github.com/stickerfactory/labelpress/qr"
	"github.com/stickerfactory/labelpress/raster"
	"github.com/stickerfactory/labelpress/server"
	"github.com/stickerfactory/labelpress/text"
	"github.com/stickerfactory/labelpress/webcam"
)

func main() {
	inputFile := flag.String("input", "",
		"Path to an input image for one-shot processing")
	outputFile := flag.String("output", "",
		"Path to save the one-shot result (required with -input)")
	textContent := flag.String("text", "",
		"Render this text instead of reading an input image")
	qrURL := flag.String("qr", "",
		"Append a QR code for this URL below rendered text")
	mode := flag.String("mode", "dither",
		"One-shot output: dither or gray")
	mediaName := flag.String("media", "62",
		"Label media width in mm: "+fmt.Sprint(printer.MediaNames()))
	dpi := flag.Int("dpi", labelpress.DefaultDPI,
		"Printer resolution in dots per inch")
	widthMM := flag.Float64("mm", 0,
		"Physical target width in mm (0 fills the label)")
	fontPath := flag.String("font", "",
		"Path to a TTF font for text rendering (embedded default if empty)")
	fontSize := flag.Float64("fontsize", 0,
		"Font size in points (0 auto-fits the label width)")
	spoolDir := flag.String("spool", "",
		"Spool prepared labels as PNG files in this directory")
	deviceID := flag.Int("device", -1,
		"Webcam device ID for the capture endpoint (-1 disables it)")
	listen := flag.String("listen", "",
		"Serve the HTTP API on this address (e.g. :8080)")
	flag.Parse()

	media, err := printer.MediaByName(*mediaName)
	if err != nil {
		log.Fatalf("labelpress: %v", err)
	}

	var ttf *truetype.Font
	if *fontPath != "" {
		data, err := os.ReadFile(*fontPath)
		if err != nil {
			log.Fatalf("labelpress: failed to read font: %v", err)
		}
		ttf, err = text.ParseFont(data)
		if err != nil {
			log.Fatalf("labelpress: %v", err)
		}
	}

	var backend printer.Printer
	if *spoolDir != "" {
		backend, err = printer.NewFilePrinter(*spoolDir)
		if err != nil {
			log.Fatalf("labelpress: %v", err)
		}
		defer backend.Close()
	}

	if *listen != "" {
		cfg := server.Config{
			Media:   media,
			DPI:     *dpi,
			Printer: backend,
			Font:    ttf,
		}
		if *deviceID >= 0 {
			id := *deviceID
			cfg.Capture = func() (image.Image, error) {
				return webcam.Capture(id)
			}
		}
		if err := server.New(cfg).Run(*listen); err != nil {
			log.Fatalf("labelpress: %v", err)
		}
		return
	}

	if *inputFile == "" && *textContent == "" {
		fmt.Println("Provide an image with -input, text with -text, or an address with -listen")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if *outputFile == "" && backend == nil {
		fmt.Println("Provide -output or a -spool directory for the result")
		flag.PrintDefaults()
		os.Exit(1)
	}

	src, err := loadSource(*inputFile, *textContent, *qrURL, media.Dots, ttf, *fontSize)
	if err != nil {
		log.Fatalf("labelpress: %v", err)
	}

	if *widthMM > 0 {
		sized, err := labelpress.ResizeToWidthMM(src, *widthMM, media.Dots, *dpi)
		if err != nil {
			log.Fatalf("labelpress: %v", err)
		}
		src = sized
	}

	gray, dithered, err := labelpress.Prepare(src, media.Dots)
	if err != nil {
		log.Fatalf("labelpress: %v", err)
	}

	var out image.Image = dithered
	if *mode == "gray" {
		out = gray.Gray
	}

	if *outputFile != "" {
		if err := raster.SaveImage(out, *outputFile); err != nil {
			log.Fatalf("labelpress: %v", err)
		}
		log.Printf("labelpress: wrote %dx%d label to %s",
			out.Bounds().Dx(), out.Bounds().Dy(), *outputFile)
	}
	if backend != nil {
		if err := backend.Print(out); err != nil {
			log.Fatalf("labelpress: %v", err)
		}
	}
}

// loadSource produces the raw label content: either a decoded image file
// or rendered text, optionally with a QR block appended.
func loadSource(inputFile, content, qrURL string, labelWidth int, ttf *truetype.Font, size float64) (image.Image, error) {
	if inputFile != "" {
		return raster.LoadImage(inputFile)
	}

	rendered, err := text.Render(content, labelWidth, text.Options{
		Font:     ttf,
		FontSize: size,
		Align:    text.AlignCenter,
	})
	if err != nil {
		return nil, err
	}
	if qrURL == "" {
		return rendered, nil
	}

	code, err := qr.Image(qrURL, labelWidth)
	if err != nil {
		return nil, err
	}
	return labelpress.ConcatV(rendered, code, labelWidth)
}
