package app

import "klondike/internal/domain"

// Frame is one history entry: the table after an accepted action together
// with the counters that undo restores alongside it.
type Frame struct {
	Snapshot        domain.Snapshot
	Score           int
	PassesRemaining int
}

// History is the undo stack. The last frame always mirrors the live game.
type History struct {
	frames []Frame
}

// Push records f as the current frame.
func (h *History) Push(f Frame) {
	h.frames = append(h.frames, f)
}

// Current returns the latest frame.
func (h *History) Current() (Frame, bool) {
	if len(h.frames) == 0 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-1], true
}

// Previous returns the frame Undo would go back to.
func (h *History) Previous() (Frame, bool) {
	if len(h.frames) <= 1 {
		return Frame{}, false
	}
	return h.frames[len(h.frames)-2], true
}

// Undo drops the current frame and returns the one before it. The first
// frame of a game is never dropped.
func (h *History) Undo() (Frame, bool) {
	if len(h.frames) <= 1 {
		return Frame{}, false
	}
	h.frames[len(h.frames)-1] = Frame{}
	h.frames = h.frames[:len(h.frames)-1]
	return h.frames[len(h.frames)-1], true
}

// Reset discards every frame and starts over from f.
func (h *History) Reset(f Frame) {
	clear(h.frames)
	h.frames = append(h.frames[:0], f)
}

// Len is the number of recorded frames.
func (h *History) Len() int {
	return len(h.frames)
}
