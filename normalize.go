package dense

// Frame is an ego-centred coordinate frame: a map-frame origin plus a yaw.
// Apply takes map-frame points into the frame (translate the origin to
// zero, then rotate by yaw); Invert is the exact inverse. Both have
// variants for slices of points and slices of polylines so callers can
// transform whole maps while preserving shape.
type Frame struct {
	X   float64
	Y   float64
	Yaw float64

	// The map origin as seen from inside the frame, precomputed for
	// Invert.
	ox, oy float64
}

// NewFrame returns the frame centred at (x, y) with heading yaw.
func NewFrame(x, y, yaw float64) Frame {
	ox, oy := Rotate(-x, -y, yaw)
	return Frame{X: x, Y: y, Yaw: yaw, ox: ox, oy: oy}
}

// Apply transforms a map-frame point into the frame.
func (f Frame) Apply(pt Point) Point {
	x, y := Rotate(pt.X-f.X, pt.Y-f.Y, f.Yaw)
	return Pt(x, y)
}

// Invert transforms a frame-relative point back into the map frame.
func (f Frame) Invert(pt Point) Point {
	x, y := Rotate(pt.X-f.ox, pt.Y-f.oy, -f.Yaw)
	return Pt(x, y)
}

// ApplyAll transforms a slice of points, returning a new slice.
func (f Frame) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = f.Apply(p)
	}
	return out
}

// InvertAll is the inverse of ApplyAll.
func (f Frame) InvertAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = f.Invert(p)
	}
	return out
}

// ApplyPolylines applies the transform one level down, to every point of
// every polyline.
func (f Frame) ApplyPolylines(pls []Polyline) []Polyline {
	out := make([]Polyline, len(pls))
	for i, pl := range pls {
		out[i] = Polyline(f.ApplyAll(pl))
	}
	return out
}

// InvertPolylines is the inverse of ApplyPolylines.
func (f Frame) InvertPolylines(pls []Polyline) []Polyline {
	out := make([]Polyline, len(pls))
	for i, pl := range pls {
		out[i] = Polyline(f.InvertAll(pl))
	}
	return out
}
