package termgrid

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"
)

// Display buffer access. The cell buffer is owned by the driver and can be
// reallocated whenever a resize event is observed, so dimensions are queried
// fresh from the driver on every call and the width*height extent is
// re-derived each time instead of cached.

// Size returns the current buffer dimensions, or (0, 0) after Close.
func (s *Session) Size() (width, height int) {
	if s.drv == nil {
		return 0, 0
	}
	return s.drv.Width(), s.drv.Height()
}

// Width returns the current buffer width, or 0 after Close.
func (s *Session) Width() int {
	w, _ := s.Size()
	return w
}

// Height returns the current buffer height, or 0 after Close.
func (s *Session) Height() int {
	_, h := s.Size()
	return h
}

// CellBuffer returns the driver's cell buffer limited to exactly
// width*height cells. Mutations through the returned slice take effect on
// the next Present. The slice is invalidated by Clear, Close, and any event
// retrieval that observes a resize; callers must not retain it across those.
func (s *Session) CellBuffer() ([]Cell, error) {
	if s.drv == nil {
		return nil, ErrClosed
	}
	w, h := s.drv.Width(), s.drv.Height()
	n, err := bufferExtent(w, h)
	if err != nil {
		return nil, err
	}
	raw := s.drv.CellBuffer()
	if n > len(raw) {
		return nil, fmt.Errorf("driver reports %dx%d cells but buffer holds %d", w, h, len(raw))
	}
	return raw[:n], nil
}

// bufferExtent computes width*height with an overflow check. The dimensions
// come from the terminal and cannot be trusted to multiply safely.
func bufferExtent(w, h int) (int, error) {
	if w < 0 || h < 0 {
		return 0, fmt.Errorf("invalid buffer dimensions %dx%d", w, h)
	}
	if h != 0 && w > math.MaxInt/h {
		return 0, fmt.Errorf("buffer dimensions %dx%d overflow", w, h)
	}
	return w * h, nil
}

// Blit copies a w×h rectangle of cells from src (row-major, at least w*h
// cells) into the buffer at (x, y). The rectangle is clipped against the
// current buffer bounds: rows and columns falling outside are skipped, and a
// rectangle that is empty or lies entirely offscreen writes nothing. A src
// shorter than w*h is a caller contract violation and returns an error
// before any cell is written. Blit on a closed session is a no-op.
func (s *Session) Blit(x, y, w, h int, src []Cell) error {
	if w > 0 && h > 0 && len(src) < w*h {
		return fmt.Errorf("blit source holds %d cells, need %d", len(src), w*h)
	}
	if s.drv == nil {
		return nil
	}

	// Validate against current dimensions on every call; a resize can
	// shrink the buffer between calls.
	bw, bh := s.drv.Width(), s.drv.Height()
	if w < 1 || h < 1 || x+w <= 0 || y+h <= 0 || x >= bw || y >= bh {
		return nil
	}
	n, err := bufferExtent(bw, bh)
	if err != nil {
		return err
	}
	raw := s.drv.CellBuffer()
	if n > len(raw) {
		return fmt.Errorf("driver reports %dx%d cells but buffer holds %d", bw, bh, len(raw))
	}
	dst := raw[:n]

	minX, minY := 0, 0
	if x < 0 {
		minX = -x
	}
	if y < 0 {
		minY = -y
	}
	maxX := min(x+w, bw) - x
	maxY := min(y+h, bh) - y

	for cy := minY; cy < maxY; cy++ {
		srcIndex := cy*w + minX
		dstIndex := (y+cy)*bw + x + minX
		copy(dst[dstIndex:dstIndex+maxX-minX], src[srcIndex:srcIndex+maxX-minX])
	}
	return nil
}

// ChangeCell writes one cell at (x, y). Out-of-bounds coordinates and closed
// sessions are safe no-ops.
func (s *Session) ChangeCell(x, y int, ch rune, fg, bg Attribute) {
	if s.drv != nil {
		s.drv.ChangeCell(x, y, ch, fg, bg)
	}
}

// PutCell writes one cell value at (x, y). Out-of-bounds coordinates and
// closed sessions are safe no-ops.
func (s *Session) PutCell(x, y int, cell Cell) {
	if s.drv != nil {
		s.drv.PutCell(x, y, cell)
	}
}

// SetString writes s starting at (x, y), advancing by each rune's display
// width and stopping at the right edge of the buffer.
func (s *Session) SetString(x, y int, msg string, fg, bg Attribute) {
	if s.drv == nil {
		return
	}
	width := s.drv.Width()
	for _, ch := range msg {
		if x >= width {
			break
		}
		s.drv.ChangeCell(x, y, ch, fg, bg)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		x += w
	}
}
