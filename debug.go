package flywheel

import (
	"log/slog"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when the compositor runs in debug mode.
type debugStats struct {
	pageTime      time.Duration
	compositeTime time.Duration
	visibleItems  int
	bands         int
	gradientHits  int
	gradientMiss  int
}

// debugLog logs the frame stats at debug level.
func (c *Compositor) debugLog(stats debugStats) {
	if !c.debug || c.logger == nil {
		return
	}
	c.logger.Debug("frame",
		slog.Duration("page", stats.pageTime),
		slog.Duration("composite", stats.compositeTime),
		slog.Duration("total", stats.pageTime+stats.compositeTime),
		slog.Int("visible", stats.visibleItems),
		slog.Int("bands", stats.bands),
		slog.Int("gradient_hits", stats.gradientHits),
		slog.Int("gradient_misses", stats.gradientMiss),
	)
}

// debugMaxItems is the item count above which a warning is logged once;
// every visible item is drawn each frame and large lists scan linearly.
const debugMaxItems = 1000

// debugCheckItemCount warns once when the registry grows past debugMaxItems.
func (c *Compositor) debugCheckItemCount(n int) {
	if !c.debug || c.warnedItems || n <= debugMaxItems {
		return
	}
	c.warnedItems = true
	c.logger.Warn("item count exceeds threshold",
		slog.Int("items", n), slog.Int("threshold", debugMaxItems))
}
