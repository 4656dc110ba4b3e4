// Package printer defines the boundary between the label pipeline and a
// physical printer driver: the Printer interface, the label media table,
// and packed-raster encoding. Actual transport and status polling belong
// to the driver behind the interface.
package printer

import (
	"fmt"
	"image"
)

// Printer accepts prepared label buffers for output. Implementations own
// their transport; Print blocks until the image is spooled.
type Printer interface {
	Print(img image.Image) error
	Close() error
}

// Media describes a continuous or die-cut label roll: its physical width
// and the printable width in dots at the printer's native resolution.
type Media struct {
	Name    string
	WidthMM float64
	Dots    int
}

// mediaTable lists the supported Brother QL label widths and their
// printable dot counts.
var mediaTable = []Media{
	{Name: "12", WidthMM: 12, Dots: 106},
	{Name: "29", WidthMM: 29, Dots: 306},
	{Name: "38", WidthMM: 38, Dots: 413},
	{Name: "50", WidthMM: 50, Dots: 554},
	{Name: "54", WidthMM: 54, Dots: 590},
	{Name: "62", WidthMM: 62, Dots: 696},
	{Name: "102", WidthMM: 102, Dots: 1164},
}

// MediaByName looks up a label media by its millimeter name ("62", "102").
func MediaByName(name string) (Media, error) {
	for _, m := range mediaTable {
		if m.Name == name {
			return m, nil
		}
	}
	return Media{}, fmt.Errorf("printer: unknown label media %q", name)
}

// MediaNames returns the supported media names in width order.
func MediaNames() []string {
	names := make([]string, len(mediaTable))
	for i, m := range mediaTable {
		names[i] = m.Name
	}
	return names
}
