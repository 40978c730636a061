// Package chord manipulates pitch collections for the composition layer.
package chord

import (
	"fmt"
	"sort"
)

// Chord is an ordered collection of MIDI note numbers, low to high.
type Chord []uint8

// New copies and sorts the notes into a chord.
func New(notes ...uint8) Chord {
	c := make(Chord, len(notes))
	copy(c, notes)
	sort.Slice(c, func(i, j int) bool { return c[i] < c[j] })
	return c
}

// Key renders the chord as a stable lookup key, e.g. "60-64-67".
func (c Chord) Key() string {
	sorted := New(c...)
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// Rotate inverts the chord n times: each inversion lifts the lowest note an
// octave and moves it to the end. Rotating by the chord length restores the
// same pitch classes one octave up on every note that wrapped.
func (c Chord) Rotate(n int) Chord {
	if len(c) == 0 {
		return Chord{}
	}
	res := make(Chord, len(c))
	copy(res, c)
	for ; n > 0; n-- {
		first := res[0] + 12
		copy(res, res[1:])
		res[len(res)-1] = first
	}
	return res
}

// Expand widens the chord by appending octave-shifted copies of every note,
// one copy per octave.
func (c Chord) Expand(octaves int) Chord {
	res := make(Chord, 0, len(c)*(octaves+1))
	res = append(res, c...)
	for oct := 1; oct <= octaves; oct++ {
		for _, note := range c {
			res = append(res, note+uint8(12*oct))
		}
	}
	return res
}

// Intervals returns the distance in semitones between successive notes.
func (c Chord) Intervals() []uint8 {
	if len(c) < 2 {
		return nil
	}
	res := make([]uint8, len(c)-1)
	for i := 1; i < len(c); i++ {
		res[i-1] = c[i] - c[i-1]
	}
	return res
}
