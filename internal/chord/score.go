package chord

import "sort"

// consonance weights per interval class (semitones mod 12). Unison and the
// perfect consonances rank highest, the tritone lowest.
var consonance = [12]float64{
	0:  1.0,
	1:  0.2,
	2:  0.4,
	3:  0.65,
	4:  0.7,
	5:  0.8,
	6:  0.1,
	7:  0.9,
	8:  0.6,
	9:  0.6,
	10: 0.4,
	11: 0.2,
}

// Score rates a chord's consonance as the mean weight over every note pair.
// Single notes and empty chords score zero: there is no interval to rate.
func Score(c Chord) float64 {
	if len(c) < 2 {
		return 0
	}
	var sum float64
	var pairs int
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			interval := int(c[j]) - int(c[i])
			if interval < 0 {
				interval = -interval
			}
			sum += consonance[interval%12]
			pairs++
		}
	}
	return sum / float64(pairs)
}

// RankSort orders chords by descending consonance score, stable so equally
// scored chords keep their input order.
func RankSort(chords []Chord) {
	sort.SliceStable(chords, func(i, j int) bool {
		return Score(chords[i]) > Score(chords[j])
	})
}
