package core

// Direction is a cardinal heading on the grid
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// directionCount is the number of cardinal headings
const directionCount = 4

var directionNames = [directionCount]string{"up", "right", "down", "left"}

// Inverse returns the 180° opposite heading
func (d Direction) Inverse() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return DirRight
	}
}

// Coords returns the unit vector of the heading (Y grows downward)
func (d Direction) Coords() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	default:
		return -1, 0
	}
}

// DirectionFromIndex maps any integer onto a heading
func DirectionFromIndex(i int) Direction {
	if i < 0 {
		i = -i
	}
	return Direction(i % directionCount)
}

func (d Direction) String() string {
	if int(d) < directionCount {
		return directionNames[d]
	}
	return "invalid"
}
