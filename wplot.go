// Package wplot is a small 2D plotting library with an injected vector
// drawing context. A Plot composes axes and datasets into a single canvas:
// axes project data coordinates to device pixels (linearly or
// logarithmically), datasets render either straight polylines or smoothed
// natural cubic splines, and the plot lays everything out and draws it
// through the Renderer interface. Backends for go-chart, svgo and gonum/plot
// live under renderers/.
package wplot
