package model

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EmptyGrid(t *testing.T) {
	g := New(5, 5)
	var capture CaptureRenderer

	g.Render(&capture)

	require.Len(t, capture.Glyphs, 25)
	assert.Equal(t, 5, capture.Rows)
	for _, glyph := range capture.Glyphs {
		assert.Equal(t, DeadGlyph, glyph)
	}
}

func TestRender_NonSquareOrder(t *testing.T) {
	g := New(2, 3)
	g.SetAlive(0, 1)
	g.SetAlive(1, 2)
	var capture CaptureRenderer

	g.Render(&capture)

	want := []string{"*@*", "**@"}
	if diff := cmp.Diff(want, capture.Lines()); diff != "" {
		t.Errorf("rendered lines mismatch (-want +got):\n%s", diff)
	}
	wantGlyphs := []rune{DeadGlyph, AliveGlyph, DeadGlyph, DeadGlyph, DeadGlyph, AliveGlyph}
	if diff := cmp.Diff(wantGlyphs, capture.Glyphs); diff != "" {
		t.Errorf("glyph order mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_DoesNotMutate(t *testing.T) {
	g := New(6, 6)
	g.SetAlive(2, 2)
	g.SetAlive(2, 3)
	before := g.Hash()

	g.Render(&CaptureRenderer{})
	g.Render(&CaptureRenderer{})

	assert.Equal(t, before, g.Hash())
}

func TestStreamRenderer_WritesFrame(t *testing.T) {
	var buf bytes.Buffer
	r := NewStreamRenderer(&buf)
	g := New(2, 2)
	g.SetAlive(1, 1)

	r.Clear()
	g.Render(r)
	require.NoError(t, r.Flush())

	assert.Equal(t, clearScreenSeq+"**\n*@\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestStreamRenderer_FlushReportsWriteError(t *testing.T) {
	r := NewStreamRenderer(failingWriter{})
	New(3, 3).Render(r)

	err := r.Flush()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to write frame"))
	assert.Equal(t, io.ErrClosedPipe, errors.Cause(err))
}
