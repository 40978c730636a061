package storage

import (
	"testing"

	"github.com/avela/gravibeat/internal/gravity"
)

func testResult() *gravity.Result {
	return &gravity.Result{
		Offsets:   []float64{0, 299.5},
		Ticks:     50,
		Survivors: 2,
	}
}

func testSnaps() []gravity.Snapshot {
	return []gravity.Snapshot{
		{Tick: 0, Time: 0, Bodies: []gravity.BodyState{
			{Position: 0, Mass: 1e6}, {Position: 1, Mass: 1e6}, {Position: 300, Mass: 1e6},
		}},
		{Tick: 1, Time: 20, Bodies: []gravity.BodyState{
			{Position: 0, Mass: 1e6}, {Position: 300, Mass: 1e6},
		}},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(20, 3, testResult(), testSnaps())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("meta ID = %s, want %s", meta.ID, runID)
	}
	if meta.Bodies != 3 || meta.Survivors != 2 || meta.Ticks != 50 {
		t.Errorf("metadata did not round-trip: %+v", meta)
	}
	if len(meta.Offsets) != 2 || meta.Offsets[1] != 299.5 {
		t.Errorf("offsets did not round-trip: %v", meta.Offsets)
	}
}

func TestLoadTicksRaggedRows(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(20, 3, testResult(), testSnaps())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	ticks, positions, err := st.LoadTicks(runID)
	if err != nil {
		t.Fatalf("load ticks failed: %v", err)
	}
	if len(ticks) != 2 {
		t.Fatalf("got %d tick rows, want 2", len(ticks))
	}
	if len(positions[0]) != 3 || len(positions[1]) != 2 {
		t.Errorf("row widths = %d, %d; want 3, 2", len(positions[0]), len(positions[1]))
	}
	if positions[1][1] != 300 {
		t.Errorf("positions[1][1] = %g, want 300", positions[1][1])
	}
}

func TestSaveWithoutSnapshots(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(20, 3, testResult(), nil)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, _, err := st.LoadTicks(runID); err == nil {
		t.Error("expected error loading ticks for a run saved without snapshots")
	}
}

func TestListRuns(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	if _, err := st.Save(20, 3, testResult(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(10, 2, testResult(), nil); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}

func TestListEmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/never-created")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
