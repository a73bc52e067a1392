package dock

// Metrics holds the fixed cell dimensions used by layout and hit testing
type Metrics struct {
	Gutter        int // Resize bar thickness between split children
	TabHeight     int // Rows reserved for a leaf's tab strip
	TargetW       int // Drop target square width
	TargetH       int // Drop target square height
	MinExtent     int // Smallest child extent an interactive resize may produce
	DragThreshold int // Pointer travel in cells before a pressed tab starts dragging
}

// DefaultMetrics returns terminal-friendly defaults
func DefaultMetrics() Metrics {
	return Metrics{
		Gutter:        1,
		TabHeight:     1,
		TargetW:       5,
		TargetH:       3,
		MinExtent:     1,
		DragThreshold: 1,
	}
}

// normalized returns a copy with out-of-range values replaced by defaults
func (m Metrics) normalized() Metrics {
	d := DefaultMetrics()
	if m.Gutter < 0 {
		m.Gutter = d.Gutter
	}
	if m.TabHeight < 1 {
		m.TabHeight = d.TabHeight
	}
	if m.TargetW < 1 {
		m.TargetW = d.TargetW
	}
	if m.TargetH < 1 {
		m.TargetH = d.TargetH
	}
	if m.MinExtent < 1 {
		m.MinExtent = d.MinExtent
	}
	if m.DragThreshold < 0 {
		m.DragThreshold = d.DragThreshold
	}
	return m
}
