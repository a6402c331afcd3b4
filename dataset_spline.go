package wplot

import "image/color"

// markerRadius is the control point marker radius in pixels.
const markerRadius = 3.0

// SplineDataset draws a natural cubic spline through its control points.
// The sampled polyline is cached per pixel width, one sample per four
// pixels across the X axis display range, and dropped when the points
// change or the plot width does.
type SplineDataset struct {
	Dataset

	markerLine color.RGBA
	markerFill color.RGBA
	markers    bool

	cache      []Point
	cacheWidth int
}

// NewSplineDataset returns an empty spline dataset with markers off.
func NewSplineDataset() *SplineDataset {
	s := &SplineDataset{
		Dataset:    *NewDataset(),
		markerLine: White,
		markerFill: Gray,
	}
	s.onInvalidate = s.dropCache
	return s
}

func (s *SplineDataset) dropCache() {
	s.cache = nil
	s.cacheWidth = 0
}

// Markers returns whether control point markers are drawn.
func (s *SplineDataset) Markers() bool { return s.markers }

// SetMarkers toggles circular markers at the control points.
func (s *SplineDataset) SetMarkers(markers bool) {
	if markers == s.markers {
		return
	}
	s.markers = markers
	s.update.Notify()
}

// MarkerColors returns the marker stroke and fill colors.
func (s *SplineDataset) MarkerColors() (line, fill color.RGBA) {
	return s.markerLine, s.markerFill
}

// SetMarkerColors sets the marker stroke and fill colors.
func (s *SplineDataset) SetMarkerColors(line, fill color.RGBA) {
	if line == s.markerLine && fill == s.markerFill {
		return
	}
	s.markerLine, s.markerFill = line, fill
	s.update.Notify()
}

// Draw strokes the interpolated spline and, when enabled, the control point
// markers. It is a no-op without points or with either axis unset.
func (s *SplineDataset) Draw(r Renderer, width, height int) {
	if len(s.points) == 0 || s.xAxis == nil || s.yAxis == nil {
		return
	}
	if len(s.points) < 2 {
		// a single point has no spline, fall back to the base polyline
		s.Dataset.Draw(r, width, height)
		return
	}

	if s.cache == nil || s.cacheWidth != width {
		minX, maxX := s.xAxis.DisplayRange()
		s.cache = SplinePoints(s.points, minX, maxX, width/4+1)
		s.cacheWidth = width
	}

	s.polyline(r, s.cache, width, height)
	s.strokeLine(r)

	if s.markers {
		for _, p := range s.points {
			x := s.xAxis.Project(p.X, width)
			y := s.yAxis.Project(p.Y, -height)
			r.Circle(x, y, markerRadius)
			r.SetFillColor(s.markerFill)
			r.SetStrokeColor(s.markerLine)
			r.SetLineWidth(1.0)
			r.SetDash(nil)
			r.FillStroke()
		}
	}
}
