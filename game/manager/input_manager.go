package manager

import "github.com/arisgz/snake/game/types"

// InputManager buffers up to types.MaxPending direction changes between ticks.
type InputManager struct {
	queue []types.Direction
}

func NewInputManager() *InputManager {
	return &InputManager{queue: make([]types.Direction, 0, types.MaxPending)}
}

// Enqueue appends dir unless it repeats or reverses the last queued
// direction (or current when the queue is empty), or the queue is full.
func (im *InputManager) Enqueue(dir, current types.Direction) bool {
	if im.Len() >= types.MaxPending {
		return false
	}

	last := current
	if n := len(im.queue); n > 0 {
		last = im.queue[n-1]
	}
	if dir == last || dir.IsOpposite(last) {
		return false
	}

	im.queue = append(im.queue, dir)
	return true
}

// Next pops the front of the queue.
func (im *InputManager) Next() (types.Direction, bool) {
	if len(im.queue) == 0 {
		return 0, false
	}
	dir := im.queue[0]
	copy(im.queue, im.queue[1:])
	im.queue = im.queue[:len(im.queue)-1]
	return dir, true
}

// Pending returns a copy of the queued directions, front first.
func (im *InputManager) Pending() []types.Direction {
	out := make([]types.Direction, len(im.queue))
	copy(out, im.queue)
	return out
}

// Len returns the number of queued directions.
func (im *InputManager) Len() int {
	return len(im.queue)
}
