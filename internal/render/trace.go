// Package render draws gravity snapshots for the terminal. It is display
// only: everything here consumes the (position, mass) pairs the simulator
// already produces and owns no simulation state.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/avela/gravibeat/internal/gravity"
)

// DefaultWidth is the number of columns in a trace line.
const DefaultWidth = 80

// Mass tier boundaries for the marker runes. Low-mass bodies render as '.',
// mid-mass as 'o', high-mass as '@'.
const (
	lowMassMax = 1e5
	midMassMax = 7.5e5
)

func markerFor(mass float64) rune {
	switch {
	case mass < lowMassMax:
		return '.'
	case mass < midMassMax:
		return 'o'
	default:
		return '@'
	}
}

// Tracer renders one fixed-width line per tick: a marker rune per surviving
// body at its scaled, rounded position, followed by the tick index.
type Tracer struct {
	out   io.Writer
	width int
	scale float64 // position units per column
}

// NewTracer sizes the line so that positions up to maxPos fit the width.
func NewTracer(out io.Writer, maxPos float64) *Tracer {
	scale := maxPos / float64(DefaultWidth-1)
	if scale < 1 {
		scale = 1
	}
	return &Tracer{out: out, width: DefaultWidth, scale: scale}
}

// Line renders the snapshot's bodies onto a single row. Bodies that have
// drifted off the visible range are skipped.
func (t *Tracer) Line(snap gravity.Snapshot) string {
	cells := make([]rune, t.width)
	for i := range cells {
		cells[i] = ' '
	}
	for _, b := range snap.Bodies {
		col := int(math.Round(b.Position / t.scale))
		if col < 0 || col >= t.width {
			continue
		}
		cells[col] = markerFor(b.Mass)
	}
	return string(cells)
}

// OnTick lets a Tracer observe a batch run directly.
func (t *Tracer) OnTick(snap gravity.Snapshot) {
	fmt.Fprintf(t.out, "%s %d\n", t.Line(snap), snap.Tick)
}

// Trace adapts OnTick to the traced-mode callback signature.
func (t *Tracer) Trace(snap gravity.Snapshot) bool {
	t.OnTick(snap)
	return true
}

// Summary formats the terminal offsets for plain CLI output.
func Summary(offsets []float64) string {
	if len(offsets) == 0 {
		return "no surviving bodies"
	}
	parts := make([]string, len(offsets))
	for i, off := range offsets {
		parts[i] = fmt.Sprintf("%.3f", off)
	}
	return strings.Join(parts, " ")
}
