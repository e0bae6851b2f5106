package labelkit

import "testing"

func TestIndexMappingRoundTrip(t *testing.T) {
	for _, noneEnabled := range []bool{false, true} {
		for logical := -1; logical < 50; logical++ {
			if !noneEnabled && logical == -1 {
				continue
			}
			display := DisplayIndex(logical, noneEnabled)
			if got := LogicalIndex(display, noneEnabled); got != logical {
				t.Errorf("noneEnabled=%t: LogicalIndex(DisplayIndex(%d)) = %d", noneEnabled, logical, got)
			}
		}
	}
}

func TestIndexMapping(t *testing.T) {
	tests := []struct {
		logical     int
		noneEnabled bool
		display     int
	}{
		{logical: 0, noneEnabled: false, display: 0},
		{logical: 2, noneEnabled: false, display: 2},
		{logical: -1, noneEnabled: true, display: 0},
		{logical: 0, noneEnabled: true, display: 1},
		{logical: 2, noneEnabled: true, display: 3},
	}

	for _, tt := range tests {
		if got := DisplayIndex(tt.logical, tt.noneEnabled); got != tt.display {
			t.Errorf("DisplayIndex(%d, %t) = %d, want %d", tt.logical, tt.noneEnabled, got, tt.display)
		}
		if got := LogicalIndex(tt.display, tt.noneEnabled); got != tt.logical {
			t.Errorf("LogicalIndex(%d, %t) = %d, want %d", tt.display, tt.noneEnabled, got, tt.logical)
		}
	}
}
