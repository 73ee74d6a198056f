package motion

// Rect is a vertical extent in document coordinates (pixels from the top of
// the document).
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns the lower edge of r.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Viewport is the visible window of the document. Top equals the scroll offset.
type Viewport struct {
	Top    float64
	Height float64
}

// Intersects reports whether rect overlaps the viewport grown by margin on
// both edges. A negative margin shrinks the viewport, so a section must be
// that far inside before it counts as visible.
func Intersects(rect Rect, vp Viewport, margin float64) bool {
	top := vp.Top - margin
	bottom := vp.Top + vp.Height + margin
	if bottom <= top {
		return false
	}
	return rect.Top < bottom && rect.Bottom() > top
}

// Progress maps the scroll position to the section's travel through the
// viewport: 0 when its top edge meets the bottom of the viewport, 1 when its
// bottom edge leaves through the top. The result is clamped to [0, 1].
func Progress(rect Rect, vp Viewport) float64 {
	span := rect.Height + vp.Height
	if span <= 0 {
		return 0
	}
	p := (vp.Top + vp.Height - rect.Top) / span
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
