package falling

import (
	"fmt"
	"os"
)

// debugLog prints per-frame stats to stderr.
func (s *Scene) debugLog(stats FrameStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[falling] frame %d | spawned: %d | removed: %d | culled: %d | live: %d | render: %v\n",
		stats.Frame, stats.Spawned, stats.Removed, stats.Culled, stats.Live, stats.Elapsed)
}

// debugCheckLiveCount warns once on stderr when the live set grows past the
// threshold, which usually means the scene was never resized.
const debugMaxLiveCount = 10000

func (s *Scene) debugCheckLiveCount() {
	if !s.debug || s.warnedLive || len(s.particles) <= debugMaxLiveCount {
		return
	}
	s.warnedLive = true
	_, _ = fmt.Fprintf(os.Stderr, "[falling] warning: %d live particles exceeds %d (stage %vx%v)\n",
		len(s.particles), debugMaxLiveCount, s.stageWidth, s.stageHeight)
}
