package telemetry

// FrameSample is what one particle-field frame reports to the collector.
type FrameSample struct {
	Links          int
	PointerLinks   int
	PointerPresent bool
	RipplesExpired int
	DrawCalls      int
}

// Collector accumulates frame samples within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for current window
	resizes        int
	clicks         int
	ripplesExpired int
	pointerFrames  int

	links        []float64
	pointerLinks []float64
	drawCalls    []float64
}

// NewCollector creates a new stats collector.
// windowTicks: how many frames each stats window covers.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks:  int32(windowTicks),
		links:        make([]float64, 0, windowTicks),
		pointerLinks: make([]float64, 0, windowTicks),
		drawCalls:    make([]float64, 0, windowTicks),
	}
}

// RecordResize records a viewport resize.
func (c *Collector) RecordResize() {
	c.resizes++
}

// RecordClick records a click that spawned a ripple.
func (c *Collector) RecordClick() {
	c.clicks++
}

// RecordFrame records the counts of one frame.
func (c *Collector) RecordFrame(s FrameSample) {
	c.links = append(c.links, float64(s.Links))
	c.pointerLinks = append(c.pointerLinks, float64(s.PointerLinks))
	c.drawCalls = append(c.drawCalls, float64(s.DrawCalls))
	c.ripplesExpired += s.RipplesExpired
	if s.PointerPresent {
		c.pointerFrames++
	}
}

// ShouldFlush returns true if the current window is complete.
func (c *Collector) ShouldFlush(tick int32) bool {
	return tick-c.windowStartTick >= c.windowTicks
}

// Flush produces WindowStats for the current window and starts a new one.
// particles and ripples are the live counts at window end.
func (c *Collector) Flush(tick int32, particles, ripples int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   tick,
		Frames:          len(c.links),
		Particles:       particles,
		Ripples:         ripples,
		Resizes:         c.resizes,
		Clicks:          c.clicks,
		RipplesExpired:  c.ripplesExpired,
	}

	stats.LinksMean, stats.LinksStd, stats.LinksP50, stats.LinksP90 = ComputeCountStats(c.links)
	stats.PointerLinksMean, _, _, _ = ComputeCountStats(c.pointerLinks)
	stats.DrawCallsMean, _, _, _ = ComputeCountStats(c.drawCalls)
	if stats.Frames > 0 {
		stats.PointerPresence = float64(c.pointerFrames) / float64(stats.Frames)
	}

	c.windowStartTick = tick
	c.resizes = 0
	c.clicks = 0
	c.ripplesExpired = 0
	c.pointerFrames = 0
	c.links = c.links[:0]
	c.pointerLinks = c.pointerLinks[:0]
	c.drawCalls = c.drawCalls[:0]

	return stats
}
