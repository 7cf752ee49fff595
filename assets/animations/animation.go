package animations

// Animation steps through a frame range on a sheet at a fixed rate.
// Time is supplied by the caller in seconds.
type Animation struct {
	First     int
	Last      int
	FrameRate float64 // frames per second
	Frames    int     // total frames on the sheet
	elapsed   float64
	frame     int
}

// Animated reports whether Update can ever change the frame.
func (a *Animation) Animated() bool {
	return a.Frames > 1 && a.FrameRate > 0 && a.First != a.Last
}

func (a *Animation) Update(dt float64) {
	if !a.Animated() {
		return
	}

	a.elapsed += dt
	if a.elapsed < 1/a.FrameRate {
		return
	}
	a.elapsed = 0

	a.frame++
	if a.frame > a.Last || a.frame >= a.Frames {
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to frame without touching the accumulator.
func (a *Animation) SetFrame(frame int) {
	a.frame = frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
}

// NewAnimation starts at first. Frames is the sheet size used to bound wrap-around.
func NewAnimation(first, last, frames int, frameRate float64) *Animation {
	return &Animation{
		First:     first,
		Last:      last,
		FrameRate: frameRate,
		Frames:    frames,
		frame:     first,
	}
}
