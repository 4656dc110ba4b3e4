package printer

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/stickerfactory/labelpress/raster"
)

// FilePrinter spools prepared labels to PNG files in a directory. It
// stands in for a hardware driver during development and in tests.
type FilePrinter struct {
	dir string
	seq atomic.Uint64
}

// NewFilePrinter creates the spool directory if needed.
func NewFilePrinter(dir string) (*FilePrinter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("printer: failed to create spool dir: %w", err)
	}
	return &FilePrinter{dir: dir}, nil
}

// Print writes the image as a uniquely named PNG in the spool directory.
func (p *FilePrinter) Print(img image.Image) error {
	n := p.seq.Add(1)
	name := fmt.Sprintf("label_%d_%04d.png", time.Now().Unix(), n)
	path := filepath.Join(p.dir, name)

	if err := raster.SaveImage(img, path); err != nil {
		return fmt.Errorf("printer: failed to spool label: %w", err)
	}
	log.Printf("printer: spooled %dx%d label to %s",
		img.Bounds().Dx(), img.Bounds().Dy(), path)
	return nil
}

// Close implements Printer. The file backend holds no connection.
func (p *FilePrinter) Close() error { return nil }
