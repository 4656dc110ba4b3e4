package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stickerfactory/labelpress"
	"github.com/stickerfactory/labelpress/qr"
	"github.com/stickerfactory/labelpress/raster"
	"github.com/stickerfactory/labelpress/text"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"media":  s.cfg.Media.Name,
		"dots":   s.cfg.Media.Dots,
	})
}

// decodeUpload reads the multipart "image" field into a pixel buffer.
func decodeUpload(c *gin.Context) (*raster.RGBAImage, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, fmt.Errorf("missing image upload: %w", err)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	return raster.Decode(f)
}

// respondPNG encodes img and writes it with an image/png content type.
func respondPNG(c *gin.Context, img image.Image) {
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// fail maps pipeline errors onto status codes: caller mistakes are 400,
// everything else 500.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, labelpress.ErrInvalidRange) || errors.Is(err, labelpress.ErrInvalidDimensions) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return v, nil
}

// preparedUpload decodes the upload, applies the optional mm sizing, and
// runs the standard prepare step.
func (s *Server) preparedUpload(c *gin.Context) (*raster.GrayImage, *raster.Bitmap, error) {
	img, err := decodeUpload(c)
	if err != nil {
		return nil, nil, err
	}

	var src image.Image = img.RGBA
	if raw := c.Query("mm"); raw != "" {
		mm, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid mm %q", raw)
		}
		sized, err := labelpress.ResizeToWidthMM(img, mm, s.cfg.Media.Dots, s.cfg.DPI)
		if err != nil {
			return nil, nil, err
		}
		src = sized.RGBA
	}

	return labelpress.Prepare(src, s.cfg.Media.Dots)
}

// handlePrepare returns the grayscale or dithered rendition of an upload
// at label width. mode=dither (default) or mode=gray.
func (s *Server) handlePrepare(c *gin.Context) {
	gray, dithered, err := s.preparedUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	if c.DefaultQuery("mode", "dither") == "gray" {
		respondPNG(c, gray.Gray)
		return
	}
	respondPNG(c, dithered)
}

func (s *Server) handleThreshold(c *gin.Context) {
	cutoff, err := queryInt(c, "cutoff", 128)
	if err != nil || cutoff < 0 || cutoff > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cutoff must be 0..255"})
		return
	}

	img, err := decodeUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	gray := raster.ToGrayscale(raster.CompositeOnWhite(img))
	respondPNG(c, labelpress.Threshold(gray, uint8(cutoff)))
}

func (s *Server) handleLevels(c *gin.Context) {
	black, err := queryInt(c, "black", 0)
	if err != nil || black < 0 || black > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "black must be 0..255"})
		return
	}
	white, err := queryInt(c, "white", 255)
	if err != nil || white < 0 || white > 255 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "white must be 0..255"})
		return
	}

	img, err := decodeUpload(c)
	if err != nil {
		fail(c, err)
		return
	}
	gray := raster.ToGrayscale(raster.CompositeOnWhite(img))

	var out *raster.GrayImage
	if c.Query("equalize") == "true" {
		out, err = labelpress.LevelsEqualize(gray, uint8(black), uint8(white))
	} else {
		out, err = labelpress.Levels(gray, uint8(black), uint8(white))
	}
	if err != nil {
		fail(c, err)
		return
	}
	respondPNG(c, out.Gray)
}

func (s *Server) handleBorder(c *gin.Context) {
	width, err := queryInt(c, "width", 1)
	if err != nil || width < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width must be >= 1"})
		return
	}

	img, err := decodeUpload(c)
	if err != nil {
		fail(c, err)
		return
	}
	respondPNG(c, labelpress.Border(raster.CompositeOnWhite(img), width).RGBA)
}

func (s *Server) handleTiles(c *gin.Context) {
	img, err := decodeUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	rows := labelpress.TileRows(img, s.cfg.Media.Dots)
	tiles, err := labelpress.SplitTiles(img, s.cfg.Media.Dots, rows)
	if err != nil {
		fail(c, err)
		return
	}

	info := make([]gin.H, len(tiles))
	for i, tile := range tiles {
		info[i] = gin.H{"width": tile.Width(), "height": tile.Height()}
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows, "tiles": info})
}

func (s *Server) handleTilePreview(c *gin.Context) {
	img, err := decodeUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	rows := labelpress.TileRows(img, s.cfg.Media.Dots)
	tiles, err := labelpress.SplitTiles(img, s.cfg.Media.Dots, rows)
	if err != nil {
		fail(c, err)
		return
	}
	preview, err := labelpress.TilePreview(tiles, s.cfg.Media.Dots)
	if err != nil {
		fail(c, err)
		return
	}
	respondPNG(c, preview.RGBA)
}

// handleText renders posted text at label width; an optional qr form
// field appends a QR code block below it.
func (s *Server) handleText(c *gin.Context) {
	content := c.PostForm("text")
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing text"})
		return
	}

	align := text.AlignCenter
	switch c.PostForm("align") {
	case "left":
		align = text.AlignLeft
	case "right":
		align = text.AlignRight
	}

	size := 0.0
	if raw := c.PostForm("size"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
			return
		}
		size = v
	}

	img, err := text.Render(content, s.cfg.Media.Dots, text.Options{
		Font:     s.cfg.Font,
		FontSize: size,
		Align:    align,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if url := c.PostForm("qr"); url != "" {
		code, err := qr.Image(url, s.cfg.Media.Dots)
		if err != nil {
			fail(c, err)
			return
		}
		img, err = labelpress.ConcatV(img, code, s.cfg.Media.Dots)
		if err != nil {
			fail(c, err)
			return
		}
	}

	respondPNG(c, img.RGBA)
}

func (s *Server) handleQR(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url"})
		return
	}
	side, err := queryInt(c, "size", s.cfg.Media.Dots)
	if err != nil || side < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid size"})
		return
	}

	code, err := qr.Image(url, side)
	if err != nil {
		fail(c, err)
		return
	}
	respondPNG(c, code)
}

// handlePrint prepares the upload and sends it to the configured printer
// backend: mode=dither (default) or mode=gray.
func (s *Server) handlePrint(c *gin.Context) {
	if s.cfg.Printer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no printer configured"})
		return
	}

	gray, dithered, err := s.preparedUpload(c)
	if err != nil {
		fail(c, err)
		return
	}

	var out image.Image = dithered
	if c.DefaultQuery("mode", "dither") == "gray" {
		out = gray.Gray
	}

	if err := s.cfg.Printer.Print(out); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"printed": true,
		"width":   out.Bounds().Dx(),
		"height":  out.Bounds().Dy(),
	})
}

// handleWebcam grabs a frame from the configured capture source and
// returns its prepared preview.
func (s *Server) handleWebcam(c *gin.Context) {
	if s.cfg.Capture == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no capture device configured"})
		return
	}

	frame, err := s.cfg.Capture()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	gray, dithered, err := labelpress.Prepare(frame, s.cfg.Media.Dots)
	if err != nil {
		fail(c, err)
		return
	}

	if c.DefaultQuery("mode", "dither") == "gray" {
		respondPNG(c, gray.Gray)
		return
	}
	respondPNG(c, dithered)
}
