package format

import (
	"testing"
	"time"
)

func TestSparkline(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   []time.Duration
		want string
	}{
		{"empty", nil, ""},
		{"single", []time.Duration{5}, "▄"},
		{"flat", []time.Duration{7, 7, 7}, "▄▄▄"},
		{"rising", []time.Duration{0, 100, 200, 300, 400, 500, 600, 700}, "▁▂▃▄▅▆▇█"},
		{"extremes", []time.Duration{300, 100, 300}, "█▁█"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sparkline(tt.in); got != tt.want {
				t.Errorf("Sparkline(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
