package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`
	Frames          int   `csv:"frames"`

	// Population at window end
	Particles int `csv:"particles"`
	Ripples   int `csv:"ripples"`

	// Events during window
	Resizes        int `csv:"resizes"`
	Clicks         int `csv:"clicks"`
	RipplesExpired int `csv:"ripples_expired"`

	// Links per frame
	LinksMean float64 `csv:"links_mean"`
	LinksStd  float64 `csv:"links_std"`
	LinksP50  float64 `csv:"links_p50"`
	LinksP90  float64 `csv:"links_p90"`

	PointerLinksMean float64 `csv:"pointer_links_mean"`
	PointerPresence  float64 `csv:"pointer_presence"` // fraction of frames with the pointer inside
	DrawCallsMean    float64 `csv:"draw_calls_mean"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeCountStats calculates population mean, std, and percentiles of per-frame counts.
func ComputeCountStats(values []float64) (mean, std, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("frames", s.Frames),
		slog.Int("particles", s.Particles),
		slog.Int("ripples", s.Ripples),
		slog.Int("resizes", s.Resizes),
		slog.Int("clicks", s.Clicks),
		slog.Int("ripples_expired", s.RipplesExpired),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_std", s.LinksStd),
		slog.Float64("links_p50", s.LinksP50),
		slog.Float64("links_p90", s.LinksP90),
		slog.Float64("pointer_links_mean", s.PointerLinksMean),
		slog.Float64("pointer_presence", s.PointerPresence),
		slog.Float64("draw_calls_mean", s.DrawCallsMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
