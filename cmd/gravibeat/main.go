package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/avela/gravibeat/internal/chord"
	"github.com/avela/gravibeat/internal/config"
	"github.com/avela/gravibeat/internal/gravity"
	"github.com/avela/gravibeat/internal/midifile"
	"github.com/avela/gravibeat/internal/pitch"
	"github.com/avela/gravibeat/internal/render"
	"github.com/avela/gravibeat/internal/storage"
)

var (
	dataDir    string
	positions  string
	masses     string
	ticks      int
	dt         float64
	configFile string
	preset     string
	frameRate  int
	rotations  int
	octaves    int
	chordNotes string
	tempo      float64
	outFile    string
	freq       float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravibeat",
		Short: "gravity-derived rhythm and chord toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravibeat", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a rhythm simulation and store the result",
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "run with a per-tick ASCII trace",
		RunE:  traceScenario,
	}
	addScenarioFlags(traceCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "replay a simulation in a live terminal view",
		RunE:  liveScenario,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored body offsets over ticks",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	chordCmd := &cobra.Command{
		Use:   "chord",
		Short: "chord transformations and scoring",
	}

	rotateCmd := &cobra.Command{
		Use:   "rotate [notes]",
		Short: "invert a chord n times",
		Args:  cobra.ExactArgs(1),
		RunE:  rotateChord,
	}
	rotateCmd.Flags().IntVar(&rotations, "n", 1, "number of inversions")

	expandCmd := &cobra.Command{
		Use:   "expand [notes]",
		Short: "widen a chord by octave copies",
		Args:  cobra.ExactArgs(1),
		RunE:  expandChord,
	}
	expandCmd.Flags().IntVar(&octaves, "octaves", 1, "octaves to add")

	scoreCmd := &cobra.Command{
		Use:   "score [notes] ...",
		Short: "rank chords by consonance",
		Args:  cobra.MinimumNArgs(1),
		RunE:  scoreChords,
	}
	chordCmd.AddCommand(rotateCmd, expandCmd, scoreCmd)

	midiCmd := &cobra.Command{
		Use:   "midi [run_id]",
		Short: "render a stored run's offsets to a MIDI file",
		Args:  cobra.ExactArgs(1),
		RunE:  renderMidi,
	}
	midiCmd.Flags().StringVar(&chordNotes, "chord", "60,64,67", "chord notes")
	midiCmd.Flags().Float64Var(&tempo, "tempo", config.DefaultTempo, "tempo in bpm")
	midiCmd.Flags().StringVar(&outFile, "out", "rhythm.mid", "output file")

	pitchCmd := &cobra.Command{
		Use:   "pitch [note]",
		Short: "convert between notes and frequencies",
		Args:  cobra.MaximumNArgs(1),
		RunE:  convertPitch,
	}
	pitchCmd.Flags().Float64Var(&freq, "freq", 0, "frequency in Hz to convert to a note")

	rootCmd.AddCommand(runCmd, traceCmd, liveCmd, plotCmd, listCmd, exportCmd, presetsCmd, chordCmd, midiCmd, pitchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&positions, "positions", "", "initial positions, comma separated")
	cmd.Flags().StringVar(&masses, "masses", "", "initial masses, comma separated")
	cmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "tick count")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "step size")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// resolveScenario builds the effective scenario: defaults, then preset, then
// config file, then explicit flags, later sources winning.
func resolveScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("positions") {
		vals, err := parseFloats(positions)
		if err != nil {
			return nil, fmt.Errorf("bad --positions: %w", err)
		}
		cfg.Positions = vals
	}
	if cmd.Flags().Changed("masses") {
		vals, err := parseFloats(masses)
		if err != nil {
			return nil, fmt.Errorf("bad --masses: %w", err)
		}
		cfg.Masses = vals
	}
	if cmd.Flags().Changed("ticks") {
		cfg.Ticks = ticks
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	return cfg, nil
}

type snapshotCollector struct {
	snaps []gravity.Snapshot
}

func (c *snapshotCollector) OnTick(snap gravity.Snapshot) {
	c.snaps = append(c.snaps, snap)
}

func (c *snapshotCollector) Trace(snap gravity.Snapshot) bool {
	c.snaps = append(c.snaps, snap)
	return true
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	sim, err := gravity.New(cfg.Positions, cfg.Masses)
	if err != nil {
		return err
	}
	collector := &snapshotCollector{}
	sim.AddObserver(collector)

	fmt.Printf("running %d bodies for %d ticks...\n", len(cfg.Positions), cfg.Ticks)
	start := time.Now()

	result, err := sim.Run(context.Background(), gravity.Config{Ticks: cfg.Ticks, Dt: cfg.Dt})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(cfg.Dt, len(cfg.Positions), result, collector.snaps)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("survivors: %d of %d\n", result.Survivors, len(cfg.Positions))
	fmt.Printf("offsets: %s\n", render.Summary(result.Offsets))
	return nil
}

func traceScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	sim, err := gravity.New(cfg.Positions, cfg.Masses)
	if err != nil {
		return err
	}

	tracer := render.NewTracer(os.Stdout, maxPosition(cfg.Positions))
	return sim.RunTraced(context.Background(), gravity.Config{Ticks: cfg.Ticks, Dt: cfg.Dt}, tracer.Trace)
}

func liveScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	sim, err := gravity.New(cfg.Positions, cfg.Masses)
	if err != nil {
		return err
	}

	collector := &snapshotCollector{}
	if err := sim.RunTraced(context.Background(), gravity.Config{Ticks: cfg.Ticks, Dt: cfg.Dt}, collector.Trace); err != nil {
		return err
	}

	model := render.NewLiveModel(collector.snaps, maxPosition(cfg.Positions), frameRate)
	_, err = tea.NewProgram(model).Run()
	return err
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tickRows, offsetRows, err := st.LoadTicks(args[0])
	if err != nil {
		return err
	}
	if len(offsetRows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(tickRows))

	numBodies := len(offsetRows[0])
	maxPlots := 6
	if numBodies > maxPlots {
		numBodies = maxPlots
	}

	for body := 0; body < numBodies; body++ {
		data := make([]float64, 0, len(offsetRows))
		for _, row := range offsetRows {
			if body < len(row) {
				data = append(data, row[body])
			}
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("body %d offset vs tick", body)),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tTICKS\tDT\tBODIES\tSURVIVORS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Dt,
			run.Bodies,
			run.Survivors,
		)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func rotateChord(cmd *cobra.Command, args []string) error {
	notes, err := parseNotes(args[0])
	if err != nil {
		return err
	}
	printChord(chord.New(notes...).Rotate(rotations))
	return nil
}

func expandChord(cmd *cobra.Command, args []string) error {
	notes, err := parseNotes(args[0])
	if err != nil {
		return err
	}
	printChord(chord.New(notes...).Expand(octaves))
	return nil
}

func scoreChords(cmd *cobra.Command, args []string) error {
	chords := make([]chord.Chord, 0, len(args))
	for _, arg := range args {
		notes, err := parseNotes(arg)
		if err != nil {
			return err
		}
		chords = append(chords, chord.New(notes...))
	}

	chord.RankSort(chords)
	for _, c := range chords {
		fmt.Printf("%.4f  %s  (%s)\n", chord.Score(c), c.Key(), noteNames(c))
	}
	return nil
}

func renderMidi(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	notes, err := parseNotes(chordNotes)
	if err != nil {
		return err
	}

	if err := midifile.Write(outFile, chord.New(notes...), meta.Offsets, tempo); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d onsets at %.0f bpm\n", outFile, len(meta.Offsets), tempo)
	return nil
}

func convertPitch(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("freq") {
		note := pitch.NearestNote(freq)
		fmt.Printf("%.2f Hz -> %s (note %d, %.2f Hz)\n", freq, pitch.Name(note), note, pitch.NoteToFreq(float64(note)))
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("pass a note number or --freq")
	}
	n, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("bad note: %w", err)
	}
	fmt.Printf("%s (note %d) = %.2f Hz\n", pitch.Name(uint8(n)), n, pitch.NoteToFreq(float64(n)))
	return nil
}

func printChord(c chord.Chord) {
	fmt.Printf("%s  (%s)\n", c.Key(), noteNames(c))
}

func noteNames(c chord.Chord) string {
	names := make([]string, len(c))
	for i, n := range c {
		names[i] = pitch.Name(n)
	}
	return strings.Join(names, " ")
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func parseNotes(s string) ([]uint8, error) {
	parts := strings.Split(s, ",")
	notes := make([]uint8, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return nil, err
		}
		notes = append(notes, uint8(v))
	}
	return notes, nil
}

func maxPosition(positions []float64) float64 {
	max := 1.0
	for _, p := range positions {
		if p > max {
			max = p
		}
	}
	return max
}
