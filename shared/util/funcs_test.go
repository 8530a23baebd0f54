package util

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end, amount, want float32
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, 10, 0.5, 5},
		{10, 0, 0.25, 7.5},
		{-5, 5, 0.5, 0},
	}

	for _, tt := range tests {
		got := Lerp(tt.start, tt.end, tt.amount)
		if got != tt.want {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.amount, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		got := Clamp(tt.v, tt.lo, tt.hi)
		if got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapDeg(t *testing.T) {
	tests := []struct {
		deg, want float32
	}{
		{0, 0},
		{359, 359},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
	}

	for _, tt := range tests {
		got := WrapDeg(tt.deg)
		if got != tt.want {
			t.Errorf("WrapDeg(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		yaw  float32
		want string
	}{
		{0, "N"},
		{44, "N"},
		{45, "L"},
		{90, "L"},
		{135, "S"},
		{180, "S"},
		{225, "O"},
		{270, "O"},
		{314, "O"},
		{315, "N"},
		{-90, "O"},
		{450, "L"},
	}

	for _, tt := range tests {
		got := CompassPoint(tt.yaw)
		if got != tt.want {
			t.Errorf("CompassPoint(%v) = %q, want %q", tt.yaw, got, tt.want)
		}
	}
}
