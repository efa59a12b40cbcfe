package loop

import "time"

// Advance integrates position by velocity over dt and wraps to the origin
// once position exceeds bound. The wrap snaps to exactly 0 instead of
// carrying the overshoot, so every sweep restarts from the same edge.
// Positions and velocities stay float64; callers truncate to cells only
// when drawing.
func Advance(position, velocity float64, dt time.Duration, bound float64) float64 {
	position += velocity * dt.Seconds()
	if position > bound {
		position = 0
	}
	return position
}
