package entity

import "github.com/arisgz/snake/game/types"

// Segment is one body cell. Heading is the direction of travel when the
// segment was the head; Bend is set once the path turns at it.
type Segment struct {
	X, Y    int
	Heading types.Direction
	Bend    types.Bend
}

// NewSegment creates a straight segment.
func NewSegment(p types.Point, heading types.Direction) Segment {
	return Segment{X: p.X, Y: p.Y, Heading: heading}
}

// Position returns the cell the segment occupies.
func (s Segment) Position() types.Point {
	return types.Point{X: s.X, Y: s.Y}
}

// IsBend reports whether the segment is a turning point.
func (s Segment) IsBend() bool {
	return s.Bend != types.BendNone
}

// Snake is the body deque. Body[0] is the head, the last element the tail.
type Snake struct {
	Body []Segment
}

// NewSnake lays out length segments straight behind head, opposite to heading.
func NewSnake(head types.Point, heading types.Direction, length int) *Snake {
	s := &Snake{Body: make([]Segment, 0, length)}
	back := heading.Opposite().ToPoint()
	p := head
	for i := 0; i < length; i++ {
		s.Body = append(s.Body, NewSegment(p, heading))
		p = p.Add(back)
	}
	return s
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Head returns a pointer to the head so its heading and bend can be updated in place.
func (s *Snake) Head() *Segment {
	return &s.Body[0]
}

// Tail returns the oldest segment.
func (s *Snake) Tail() Segment {
	return s.Body[len(s.Body)-1]
}

// Move pushes a new head to the front.
func (s *Snake) Move(newHead Segment) {
	s.Body = append(s.Body, Segment{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

// RemoveTail pops the oldest segment. The last segment is never removed.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part.Position() == p {
			return true
		}
	}
	return false
}
