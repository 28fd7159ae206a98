package render

import (
	"image/color"
	"testing"

	"threshold-life/internal/config"
	"threshold-life/internal/sims/life"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.Black, color.White)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, expected %d", i, buf[i], want[i])
		}
	}
}

func TestScaleAndGridLines(t *testing.T) {
	src := []byte{
		10, 10, 10, 255, 20, 20, 20, 255,
	}
	dst := make([]byte, 4*1*2*4*4)
	scaleRGBA(dst, src, 1, 2, 4)
	// (y=1, x=5) falls in the second cell.
	if got := dst[(1*8+5)*4]; got != 20 {
		t.Fatalf("expected second cell color, got %d", got)
	}
	gridLines(dst, 1, 2, 4, color.Gray{Y: 7})
	if got := dst[(0*8+3)*4]; got != 7 {
		t.Fatalf("expected outline at cell edge, got %d", got)
	}
	if got := dst[(1*8+1)*4]; got != 10 {
		t.Fatalf("cell interior must keep its color, got %d", got)
	}
}

func TestText(t *testing.T) {
	cfg, err := config.New(3, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	b := life.New(cfg)
	b.SetCell(0, 0, life.Alive)
	b.SetCell(4, 5, life.Alive)

	want := "#.....\n" +
		"......\n" +
		"......\n" +
		"......\n" +
		".....#\n"
	if got := Text(b); got != want {
		t.Fatalf("unexpected text rendering:\n%s", got)
	}
}
