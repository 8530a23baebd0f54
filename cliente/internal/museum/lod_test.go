package museum

import "testing"

func TestHiddenAtLOD(t *testing.T) {
	tests := []struct {
		detail     DetailLevel
		normalized float32
		want       bool
	}{
		{DetailHigh, 0.0, false},
		{DetailHigh, 0.69, false},
		{DetailHigh, 0.7, true},
		{DetailHigh, 0.95, true},
		{DetailHigh, 1.0, true},
		{DetailMedium, 0.7, false},
		{DetailMedium, 0.89, false},
		{DetailMedium, 0.9, true},
		{DetailMedium, 0.95, true},
		{DetailLow, 0.95, false},
		{DetailLow, 1.0, false},
	}

	for _, tt := range tests {
		got := HiddenAtLOD(tt.detail, tt.normalized)
		if got != tt.want {
			t.Errorf("HiddenAtLOD(%v, %v) = %v, want %v", tt.detail, tt.normalized, got, tt.want)
		}
	}
}

func TestHiddenAtLODMonotonic(t *testing.T) {
	for _, detail := range []DetailLevel{DetailLow, DetailMedium, DetailHigh} {
		hidden := false
		for step := 0; step <= 100; step++ {
			n := float32(step) / 100
			now := HiddenAtLOD(detail, n)
			if hidden && !now {
				t.Errorf("detalhe %v reapareceu na distância %v", detail, n)
			}
			hidden = now
		}
	}
}
