package model

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const clearScreenSeq = "\x1b[H\x1b[2J"

// Renderer receives a grid one glyph at a time, row by row
type Renderer interface {
	Glyph(g rune)
	EndRow()
}

// StreamRenderer writes glyphs straight to an output stream
type StreamRenderer struct {
	w   *bufio.Writer
	err error
}

func NewStreamRenderer(w io.Writer) *StreamRenderer {
	return &StreamRenderer{w: bufio.NewWriter(w)}
}

func (r *StreamRenderer) Glyph(g rune) {
	if _, err := r.w.WriteRune(g); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *StreamRenderer) EndRow() {
	r.WriteString("\n")
}

// WriteString writes free text (status lines) between frames
func (r *StreamRenderer) WriteString(s string) {
	if _, err := r.w.WriteString(s); err != nil && r.err == nil {
		r.err = err
	}
}

// Clear moves the cursor home and clears the terminal screen
func (r *StreamRenderer) Clear() {
	r.WriteString(clearScreenSeq)
}

// Flush pushes buffered output to the stream, reporting the first write error seen
func (r *StreamRenderer) Flush() error {
	if err := r.w.Flush(); err != nil && r.err == nil {
		r.err = err
	}
	if r.err != nil {
		return errors.Wrap(r.err, "[StreamRenderer.Flush] failed to write frame")
	}
	return nil
}

// CaptureRenderer collects every emitted glyph for later inspection
type CaptureRenderer struct {
	Glyphs []rune
	Rows   int

	rowEnds []int
}

func (r *CaptureRenderer) Glyph(g rune) {
	r.Glyphs = append(r.Glyphs, g)
}

func (r *CaptureRenderer) EndRow() {
	r.Rows++
	r.rowEnds = append(r.rowEnds, len(r.Glyphs))
}

// Lines reassembles the captured glyphs into one string per completed row
func (r *CaptureRenderer) Lines() []string {
	lines := make([]string, 0, len(r.rowEnds))
	start := 0
	for _, end := range r.rowEnds {
		lines = append(lines, string(r.Glyphs[start:end]))
		start = end
	}
	return lines
}
