package gamemath

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	player := Rect{X: 100, Y: 100, W: 180, H: 180}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"disjoint left", Rect{X: 0, Y: 100, W: 50, H: 50}, false},
		{"disjoint below", Rect{X: 100, Y: 400, W: 160, H: 160}, false},
		{"touching right edge", Rect{X: 280, Y: 100, W: 160, H: 160}, false},
		{"touching bottom edge", Rect{X: 100, Y: 280, W: 160, H: 160}, false},
		{"touching corner", Rect{X: 280, Y: 280, W: 10, H: 10}, false},
		{"one unit inside", Rect{X: 279, Y: 279, W: 160, H: 160}, true},
		{"contained", Rect{X: 150, Y: 150, W: 10, H: 10}, true},
		{"containing", Rect{X: 0, Y: 0, W: 1080, H: 1920}, true},
		{"identical", player, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(player); got != tt.want {
				t.Errorf("Overlaps not symmetric: reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	x := 0.0
	x = Approach(x, 100, 0.2)
	if x != 20 {
		t.Errorf("first step = %v, want 20", x)
	}
	x = Approach(x, 100, 0.2)
	if x != 36 {
		t.Errorf("second step = %v, want 36", x)
	}
	for i := 0; i < 200; i++ {
		x = Approach(x, 100, 0.2)
	}
	if math.Abs(x-100) > 1e-6 {
		t.Errorf("did not converge: %v", x)
	}
}

func TestClampInside(t *testing.T) {
	tests := []struct {
		x, y         float64
		wantX, wantY float64
	}{
		{-50, -50, 0, 0},
		{2000, 3000, 900, 1740},
		{400, 800, 400, 800},
	}
	for _, tt := range tests {
		x, y := ClampInside(tt.x, tt.y, 180, 180, 1080, 1920)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("ClampInside(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestFitViewport_Letterbox(t *testing.T) {
	// Landscape window: pillarboxed left and right.
	v := FitViewport(1920, 1080, 1080, 1920)
	if math.Abs(v.Scale-0.5625) > 1e-9 {
		t.Errorf("Scale = %v, want 0.5625", v.Scale)
	}
	if v.OffsetY != 0 {
		t.Errorf("OffsetY = %v, want 0", v.OffsetY)
	}
	wantOffsetX := (1920 - 1080*0.5625) / 2
	if math.Abs(v.OffsetX-wantOffsetX) > 1e-9 {
		t.Errorf("OffsetX = %v, want %v", v.OffsetX, wantOffsetX)
	}

	// Round trip of the playfield centre.
	sx, sy := v.ToScreen(540, 960)
	if math.Abs(sx-960) > 1e-9 || math.Abs(sy-540) > 1e-9 {
		t.Errorf("ToScreen(centre) = (%v, %v), want (960, 540)", sx, sy)
	}
	px, py := v.ToPlayfield(sx, sy)
	if math.Abs(px-540) > 1e-9 || math.Abs(py-960) > 1e-9 {
		t.Errorf("ToPlayfield round trip = (%v, %v)", px, py)
	}
}

func TestFitViewport_Degenerate(t *testing.T) {
	v := FitViewport(0, 0, 1080, 1920)
	if v.Scale != 1 {
		t.Errorf("Scale = %v, want 1 for empty screen", v.Scale)
	}
}

func TestShakeOffset(t *testing.T) {
	if x, y := ShakeOffset(0, 20, 0.6); x != 0 || y != 0 {
		t.Errorf("expired shake = (%v, %v), want zero", x, y)
	}
	for remaining := 1; remaining <= 20; remaining++ {
		x, y := ShakeOffset(remaining, 20, 0.6)
		if math.Abs(math.Hypot(x, y)-20) > 1e-9 {
			t.Fatalf("offset (%v, %v) at %d is not on the intensity circle", x, y, remaining)
		}
	}
}

func TestPulseRange(t *testing.T) {
	for phase := 0.0; phase < 10; phase += 0.07 {
		p := Pulse(phase)
		if p < 0 || p > 1 {
			t.Fatalf("Pulse(%v) = %v outside [0, 1]", phase, p)
		}
	}
}
