package core

import "fmt"

// Direction is a unit vector on the grid along a single axis.
// The zero value means "no movement" and is never a legal facing.
type Direction struct {
	DX, DY int
}

// The four legal facings.
var (
	Up    = Direction{DY: -1}
	Down  = Direction{DY: +1}
	Left  = Direction{DX: -1}
	Right = Direction{DX: +1}
)

// Directions lists the four legal facings in a stable order.
var Directions = []Direction{Up, Down, Left, Right}

// IsOpposite returns true if the two directions cancel out,
// i.e. their vector sum is zero. A 180° turn request is rejected
// with exactly this test.
func (d Direction) IsOpposite(other Direction) bool {
	return d.DX+other.DX == 0 && d.DY+other.DY == 0 && d != (Direction{})
}

// Valid returns true for the four unit vectors.
func (d Direction) Valid() bool {
	return Abs(d.DX)+Abs(d.DY) == 1
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
	}
}

// DirectionFromName parses a direction name used in configuration files.
func DirectionFromName(name string) (Direction, error) {
	switch name {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Direction{}, fmt.Errorf("core: unknown direction %q", name)
	}
}
