package world

// InputSnapshot is the player input for one frame.
// Left and right are level-triggered; fire is an edge and is true only on
// the frame the fire key went down.
type InputSnapshot struct {
	LeftHeld    bool
	RightHeld   bool
	FirePressed bool
}

// EdgeDetector turns a held/not-held signal into press edges by remembering
// the previous frame's raw state.
type EdgeDetector struct {
	prev bool
}

// Update feeds the raw state for this frame and reports whether it is a
// not-pressed to pressed transition.
func (e *EdgeDetector) Update(held bool) bool {
	pressed := held && !e.prev
	e.prev = held
	return pressed
}

// Reset forgets the previous state.
func (e *EdgeDetector) Reset() {
	e.prev = false
}
