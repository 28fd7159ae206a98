//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads binary cell data into an RGBA image drawn at a fixed
// pixels-per-cell scale, so pointer positions divide back into cells.
type GridPainter struct {
	rows, cols int
	scale      int
	img        *ebiten.Image
	cellBuf    []uint8
	cellRGBA   []byte
	buf        []byte
	line       color.Color
}

// NewGridPainter allocates a painter for a rows x cols grid.
func NewGridPainter(rows, cols, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gp := &GridPainter{
		rows:     rows,
		cols:     cols,
		scale:    scale,
		cellRGBA: make([]byte, 4*rows*cols),
		buf:      make([]byte, 4*rows*cols*scale*scale),
		line:     color.Gray{Y: 128},
	}
	gp.img = ebiten.NewImage(cols*scale, rows*scale)
	return gp
}

// Blit copies the sim's cells into the painter image and draws it at the
// top-left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color) {
	if len(cells) != gp.rows*gp.cols {
		return
	}
	fillBinaryRGBA(gp.cellRGBA, cells, on, off)
	scaleRGBA(gp.buf, gp.cellRGBA, gp.rows, gp.cols, gp.scale)
	gridLines(gp.buf, gp.rows, gp.cols, gp.scale, gp.line)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the painted area in pixels.
func (gp *GridPainter) Size() (int, int) { return gp.cols * gp.scale, gp.rows * gp.scale }
