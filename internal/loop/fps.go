package loop

import "time"

// fpsWindow is the number of frame samples averaged per estimate.
const fpsWindow = 10

// FPSEstimator derives a frames-per-second value from fixed windows of
// frame durations. The reported value only changes when a window fills,
// which absorbs single-frame spikes from scheduler jitter. The zero value
// is ready to use.
type FPSEstimator struct {
	count int
	total time.Duration
	fps   int
}

// Record adds one frame duration sample. When the sample count reaches
// the window size, the estimate becomes floor(count * 1s / total) and the
// window resets. A window whose total is zero resets without touching the
// previous estimate.
func (e *FPSEstimator) Record(sample time.Duration) {
	e.count++
	e.total += sample
	if e.count < fpsWindow {
		return
	}
	if e.total > 0 {
		e.fps = int(time.Duration(e.count) * time.Second / e.total)
	}
	e.count = 0
	e.total = 0
}

// Current returns the latest estimate, or 0 before the first full window.
func (e *FPSEstimator) Current() int {
	return e.fps
}
