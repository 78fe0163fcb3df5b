package metrics

import (
	"runtime/debug"
	"testing"
)

func TestNewGCController_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode   string
		n      int
		active bool
	}{
		{GCModePaused, 10, true},
		{GCModeAuto, GCAutoThreshold, true},
		{GCModeAuto, GCAutoThreshold - 10, false},
		{GCModeEnabled, 1_000_000, false},
		{"unknown", 1_000_000, false},
	}
	for _, tt := range tests {
		if got := NewGCController(tt.mode, tt.n, nil).Active(); got != tt.active {
			t.Errorf("NewGCController(%q, %d).Active() = %v, want %v", tt.mode, tt.n, got, tt.active)
		}
	}

	var nilController *GCController
	if nilController.Active() {
		t.Error("nil controller should be inactive")
	}
}

// Not parallel: the GC percentage is process-wide.
func TestGCController_BeginEnd(t *testing.T) {
	original := debug.SetGCPercent(100)
	defer debug.SetGCPercent(original)

	gc := NewGCController(GCModePaused, 10, nil)
	gc.Begin()
	gc.Begin() // nested Begin is ignored

	if got := debug.SetGCPercent(-1); got != -1 {
		t.Errorf("GC percent during Begin = %d, want -1", got)
	}

	sink = make([]float64, 1<<16)
	gc.End()

	if got := debug.SetGCPercent(100); got != 100 {
		t.Errorf("GC percent after End = %d, want 100", got)
	}
	if stats := gc.Stats(); stats.TotalAlloc < 8*(1<<16) {
		t.Errorf("Stats().TotalAlloc = %d, want at least %d", stats.TotalAlloc, 8*(1<<16))
	}

	gc.End() // End without Begin is a no-op
}

func TestGCController_InactiveLeavesSettings(t *testing.T) {
	original := debug.SetGCPercent(100)
	defer debug.SetGCPercent(original)

	gc := NewGCController(GCModeEnabled, 1_000_000, nil)
	gc.Begin()
	if got := debug.SetGCPercent(100); got != 100 {
		t.Errorf("GC percent = %d, want 100", got)
	}
	gc.End()
}

func TestGCController_RestoresMemoryLimit(t *testing.T) {
	const userLimit = 512 << 20
	original := debug.SetMemoryLimit(userLimit)
	defer debug.SetMemoryLimit(original)

	gc := NewGCController(GCModePaused, 10, nil)
	gc.Begin()
	if got := debug.SetMemoryLimit(-1); got > userLimit {
		t.Errorf("memory limit during Begin = %d, want at most %d", got, userLimit)
	}
	gc.End()

	if got := debug.SetMemoryLimit(-1); got != userLimit {
		t.Errorf("memory limit after End = %d, want %d", got, userLimit)
	}
}
