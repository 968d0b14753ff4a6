package types

// Bend marks the rounded corner of a segment where the path turned.
type Bend int

const (
	BendNone Bend = iota
	BendTopLeft
	BendTopRight
	BendBottomLeft
	BendBottomRight
)

var bendNames = [...]string{"none", "top_left", "top_right", "bottom_left", "bottom_right"}

func (b Bend) String() string {
	if b < BendNone || b > BendBottomRight {
		return "invalid"
	}
	return bendNames[b]
}

// ParseBend maps a name produced by String back to a Bend.
func ParseBend(s string) (Bend, bool) {
	for i, name := range bendNames {
		if name == s {
			return Bend(i), true
		}
	}
	return BendNone, false
}

// bendTable is indexed [previous heading][new heading].
// Same and opposite pairs stay BendNone.
var bendTable = [4][4]Bend{
	Up:    {Left: BendTopRight, Right: BendTopLeft},
	Down:  {Left: BendBottomRight, Right: BendBottomLeft},
	Left:  {Up: BendBottomLeft, Down: BendTopLeft},
	Right: {Up: BendBottomRight, Down: BendTopRight},
}

// BendFor returns the corner a segment takes when the heading changes from prev to next.
func BendFor(prev, next Direction) Bend {
	if prev < Left || prev > Down || next < Left || next > Down {
		return BendNone
	}
	return bendTable[prev][next]
}
