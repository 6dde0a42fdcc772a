package layout

import "io"

// Emitter writes finished output lines to a sink, in strict order.
// Both stdout-concatenation mode and in-place mode (which buffers into
// a *bytes.Buffer before the atomic rename) share this type -- the
// sink is the only thing that differs.
type Emitter struct {
	w io.Writer
}

// NewEmitter wraps w for sequential line emission.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// WriteLine writes one already-wrapped logical line (or a bare blank
// newline) verbatim.
func (e *Emitter) WriteLine(s string) error {
	_, err := io.WriteString(e.w, s)
	return err
}
