package gamemath

// Viewport maps a logical playfield onto a physical screen. The playfield is
// scaled uniformly and centred, leaving letterbox bars on the long axis.
type Viewport struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitViewport computes the largest uniform scale at which a logicalW x
// logicalH playfield fits within an outW x outH screen.
func FitViewport(outW, outH, logicalW, logicalH float64) Viewport {
	if outW <= 0 || outH <= 0 || logicalW <= 0 || logicalH <= 0 {
		return Viewport{Scale: 1}
	}
	scale := outW / logicalW
	if s := outH / logicalH; s < scale {
		scale = s
	}
	return Viewport{
		Scale:   scale,
		OffsetX: (outW - logicalW*scale) / 2,
		OffsetY: (outH - logicalH*scale) / 2,
	}
}

// ToPlayfield converts screen coordinates into playfield coordinates.
func (v Viewport) ToPlayfield(screenX, screenY float64) (float64, float64) {
	if v.Scale == 0 {
		return screenX, screenY
	}
	return (screenX - v.OffsetX) / v.Scale, (screenY - v.OffsetY) / v.Scale
}

// ToScreen converts playfield coordinates into screen coordinates.
func (v Viewport) ToScreen(x, y float64) (float64, float64) {
	return x*v.Scale + v.OffsetX, y*v.Scale + v.OffsetY
}
