package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Ship is a straight run of cells starting at (x, y). It only
// counts hits; which cells were hit is tracked by the Board.
type Ship struct {
	x      int
	y      int
	length int
	hits   int
}

func NewShip(x, y, length int) (*Ship, error) {
	if x <= 0 || y <= 0 || length <= 0 {
		return nil, cerr.ErrShipArguments(x, y, length)
	}

	return &Ship{
		x:      x,
		y:      y,
		length: length,
	}, nil
}

func (sh *Ship) X() int {
	return sh.x
}

func (sh *Ship) Y() int {
	return sh.y
}

func (sh *Ship) Length() int {
	return sh.length
}

func (sh *Ship) Hits() int {
	return sh.hits
}

// Hits are not capped at length. Board never reports the same
// cell twice, so over-counting only happens when called directly.
func (sh *Ship) RegisterHit() {
	sh.hits++
}

func (sh *Ship) IsSunk() bool {
	return sh.hits >= sh.length
}

// Negative once RegisterHit has been called more than length times.
func (sh *Ship) RemainingActiveCells() int {
	return sh.length - sh.hits
}
