// Package pitch converts between MIDI note numbers, frequencies, note names
// and rhythmic offsets. All frequency math assumes twelve-tone equal
// temperament around A4 = 440 Hz.
package pitch

import (
	"fmt"
	"math"
)

const (
	A4Freq = 440.0
	A4Note = 69
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteToFreq converts a (possibly fractional) MIDI note number to Hz.
func NoteToFreq(note float64) float64 {
	return A4Freq * math.Pow(2, (note-A4Note)/12)
}

// FreqToNote converts a frequency in Hz to a fractional MIDI note number.
func FreqToNote(freq float64) float64 {
	return A4Note + 12*math.Log2(freq/A4Freq)
}

// NearestNote rounds a frequency to the closest MIDI note, clamped to the
// 0..127 range.
func NearestNote(freq float64) uint8 {
	n := math.Round(FreqToNote(freq))
	if n < 0 {
		return 0
	}
	if n > 127 {
		return 127
	}
	return uint8(n)
}

// Name renders a MIDI note as scientific pitch notation, e.g. 60 -> "C4".
func Name(note uint8) string {
	octave := int(note)/12 - 1
	return fmt.Sprintf("%s%d", noteNames[note%12], octave)
}

// MsToTicks converts a millisecond offset to MIDI ticks at the given tempo
// (quarter notes per minute) and resolution (ticks per quarter note).
func MsToTicks(ms, tempo float64, ppq uint32) uint32 {
	if ms <= 0 {
		return 0
	}
	quarterMs := 60000.0 / tempo
	return uint32(math.Round(ms / quarterMs * float64(ppq)))
}
