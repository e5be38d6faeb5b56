// Package simclock tracks wall-clock frame timing for the engine's
// scheduler and debug statistics, independent of the fixed simulation
// timestep it drives.
//
// Grounded on _examples/original_source/src/Timer.h and Timer.cpp,
// ported from std::chrono::high_resolution_clock to Go's time package.
package simclock

import "time"

// Clock measures the delta and total wall time elapsed across calls to
// Tick, and derives frames-per-second figures from it.
type Clock struct {
	last      time.Time
	deltaTime float32
	totalTime float32
}

// New returns a Clock whose clock starts now.
func New() *Clock {
	return &Clock{last: time.Now()}
}

// Tick records the elapsed time since the previous Tick (or since New,
// on the first call), returning it as the new delta time in seconds.
func (c *Clock) Tick() float32 {
	now := time.Now()
	elapsed := float32(now.Sub(c.last).Seconds())
	c.deltaTime = elapsed
	c.totalTime += elapsed
	c.last = now
	return elapsed
}

// Reset zeroes accumulated time and restarts the clock at now.
func (c *Clock) Reset() {
	c.last = time.Now()
	c.deltaTime = 0
	c.totalTime = 0
}

// DeltaTime returns the delta recorded by the most recent Tick.
func (c *Clock) DeltaTime() float32 { return c.deltaTime }

// TotalTime returns the wall time elapsed across all Tick calls since
// the last New or Reset.
func (c *Clock) TotalTime() float32 { return c.totalTime }

// FPS returns the instantaneous frame rate implied by the most recent
// delta time, or 0 if no tick has occurred yet.
func (c *Clock) FPS() float32 {
	if c.deltaTime <= 0 {
		return 0
	}
	return 1 / c.deltaTime
}

// AverageFPS returns the frame rate averaged over frameCount frames of
// total elapsed time, or 0 if frameCount is non-positive or no time has
// elapsed yet.
func (c *Clock) AverageFPS(frameCount int) float32 {
	if frameCount <= 0 || c.totalTime <= 0 {
		return 0
	}
	return float32(frameCount) / c.totalTime
}
