package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/ray-caster/frame"
)

// WriterDisplay writes each frame as newline-terminated text
type WriterDisplay struct {
	w io.Writer
}

// NewWriterDisplay creates a display over w
func NewWriterDisplay(w io.Writer) *WriterDisplay {
	return &WriterDisplay{w: w}
}

// Present writes the frame rows followed by a trailing newline
func (d *WriterDisplay) Present(f *frame.Frame) error {
	bw := bufio.NewWriter(d.w)
	if _, err := bw.WriteString(f.String()); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}
