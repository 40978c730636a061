// Package midifile renders simulated rhythm offsets and a chord into a
// Standard MIDI File.
package midifile

import (
	"bytes"
	"errors"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/avela/gravibeat/internal/chord"
	"github.com/avela/gravibeat/internal/pitch"
)

const (
	ppq      = 960
	channel  = 0
	velocity = 100
)

var (
	ErrEmptyChord   = errors.New("midifile: chord has no notes")
	ErrInvalidTempo = errors.New("midifile: tempo must be positive")
)

// Write strikes the chord once at every offset (milliseconds from the start)
// and writes a single-track SMF. Offsets are sorted first; a run that drifted
// into negative positions is shifted so the earliest onset lands on zero.
// Each strike lasts until the next onset, capped at one quarter note.
func Write(path string, notes chord.Chord, offsets []float64, tempo float64) error {
	events, err := build(notes, offsets, tempo)
	if err != nil {
		return err
	}
	return events.WriteFile(path)
}

func build(notes chord.Chord, offsets []float64, tempo float64) (*smf.SMF, error) {
	if len(notes) == 0 {
		return nil, ErrEmptyChord
	}
	if tempo <= 0 {
		return nil, ErrInvalidTempo
	}

	onsets := onsetTicks(offsets, tempo)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ppq)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempo))

	cursor := uint32(0)
	for i, onset := range onsets {
		delta := onset - cursor
		for j, note := range notes {
			if j > 0 {
				delta = 0
			}
			tr.Add(delta, midi.NoteOn(channel, note, velocity))
		}

		dur := uint32(ppq)
		if i+1 < len(onsets) {
			if gap := onsets[i+1] - onset; gap < dur {
				dur = gap
			}
		}

		delta = dur
		for j, note := range notes {
			if j > 0 {
				delta = 0
			}
			tr.Add(delta, midi.NoteOff(channel, note))
		}
		cursor = onset + dur
	}

	tr.Close(0)
	s.Add(tr)
	return s, nil
}

// onsetTicks turns millisecond offsets into sorted, deduplicated absolute
// tick positions.
func onsetTicks(offsets []float64, tempo float64) []uint32 {
	ms := make([]float64, len(offsets))
	copy(ms, offsets)
	sort.Float64s(ms)

	if len(ms) > 0 && ms[0] < 0 {
		shift := -ms[0]
		for i := range ms {
			ms[i] += shift
		}
	}

	ticks := make([]uint32, 0, len(ms))
	for _, m := range ms {
		t := pitch.MsToTicks(m, tempo, ppq)
		if n := len(ticks); n > 0 && ticks[n-1] == t {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// Read loads an SMF from disk. The gomidi parser can panic on malformed
// files, so the recover here turns that into an error.
func Read(path string) (s *smf.SMF, err error) {
	defer func() {
		if r, ok := recover().(string); ok {
			err = errors.New(r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return smf.ReadFrom(bytes.NewReader(data))
}
