package game

import "log/slog"

// flushTelemetry checks if the stats window should be flushed and writes it.
func (f *Field) flushTelemetry() {
	if !f.collector.ShouldFlush(f.tick) {
		return
	}

	stats := f.collector.Flush(f.tick, f.particles.Count(), f.lastRipples)
	perfStats := f.perf.Stats()

	if f.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if f.outputManager != nil {
		if err := f.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := f.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
