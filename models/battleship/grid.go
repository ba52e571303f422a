package battleship

import (
	"fmt"
	"strings"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type Orientation uint8

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return 0, cerr.ErrInvalidOrientation(s)
	}
}

func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// step returns the unit offset along the orientation axis.
// Any value outside the two declared orientations is a bug
// in the caller.
func (o Orientation) step() (dx, dy int) {
	switch o {
	case OrientationHorizontal:
		return 1, 0
	case OrientationVertical:
		return 0, 1
	default:
		panic(fmt.Sprintf("battleship: invalid ship orientation %d", uint8(o)))
	}
}

// Coordinates are 1-based. Used as the occupancy key, so
// (11, 1) and (1, 11) are always distinct cells.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func NewCoordinates(x, y int) Coordinates {
	return Coordinates{X: x, Y: y}
}
