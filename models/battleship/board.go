package battleship

import (
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

// Board tracks which ship occupies each cell of a fixed size grid.
// A Board is not safe for concurrent use; see Game.
type Board struct {
	horizontalLength int
	verticalLength   int
	grid             map[Coordinates]*Ship
	totalShips       int
	totalShipsSunk   int
}

func NewBoard(horizontalLength, verticalLength int) (*Board, error) {
	if horizontalLength <= 0 || verticalLength <= 0 {
		return nil, cerr.ErrBoardDimensions(horizontalLength, verticalLength)
	}

	return &Board{
		horizontalLength: horizontalLength,
		verticalLength:   verticalLength,
		grid:             make(map[Coordinates]*Ship),
	}, nil
}

func (b *Board) HorizontalLength() int {
	return b.horizontalLength
}

func (b *Board) VerticalLength() int {
	return b.verticalLength
}

func (b *Board) TotalShips() int {
	return b.totalShips
}

func (b *Board) TotalShipsSunk() int {
	return b.totalShipsSunk
}

// Number of cells still holding an un-hit part of a ship.
func (b *Board) OccupiedCells() int {
	return len(b.grid)
}

// PlaceShip puts the ship on the board starting at its origin and
// extending along orientation. It returns false, leaving the board
// untouched, if the ship would cross the board edge or overlap a
// cell that is already occupied.
func (b *Board) PlaceShip(ship *Ship, orientation Orientation) bool {
	if ship == nil {
		return false
	}

	dx, dy := orientation.step()

	// Cells left from the origin to the board edge, origin included.
	// Compared against length directly so huge lengths cannot overflow.
	// Lower bounds are guaranteed by NewShip.
	roomX := b.horizontalLength - ship.x + 1
	roomY := b.verticalLength - ship.y + 1
	if roomX <= 0 || roomY <= 0 {
		return false
	}
	if (dx == 1 && ship.length > roomX) || (dy == 1 && ship.length > roomY) {
		return false
	}

	cells := make([]Coordinates, 0, ship.length)
	for i := 0; i < ship.length; i++ {
		cell := NewCoordinates(ship.x+dx*i, ship.y+dy*i)
		if _, prs := b.grid[cell]; prs {
			return false
		}
		cells = append(cells, cell)
	}

	for _, cell := range cells {
		b.grid[cell] = ship
	}
	b.totalShips++

	return true
}

func (b *Board) HasShipAt(x, y int) bool {
	_, prs := b.grid[NewCoordinates(x, y)]
	return prs
}

// Strike resolves an attack on (x, y) and returns the ship that
// was hit, if any. The cell is cleared on a hit so that the same
// cell can never be hit twice.
func (b *Board) Strike(x, y int) (*Ship, bool) {
	cell := NewCoordinates(x, y)

	ship, prs := b.grid[cell]
	if !prs {
		return nil, false
	}

	wasSunk := ship.IsSunk()
	ship.RegisterHit()
	delete(b.grid, cell)

	// Count the transition only, never a ship that was already sunk
	if !wasSunk && ship.IsSunk() {
		b.totalShipsSunk++
	}

	return ship, true
}

// Attack reports whether (x, y) was a hit. Misses, repeats and
// coordinates off the board all return false.
func (b *Board) Attack(x, y int) bool {
	_, hit := b.Strike(x, y)
	return hit
}

func (b *Board) IsShipSunk(ship *Ship) bool {
	if ship == nil {
		return false
	}
	return ship.IsSunk()
}

// A board with no ships placed is never considered defeated.
// Sinks are counted only when a strike moves a ship into the sunk
// state, so a ship already sunk through direct RegisterHit calls is
// never counted and AllShipsSunk stays false for that board.
func (b *Board) AllShipsSunk() bool {
	return len(b.grid) == 0 &&
		b.totalShipsSunk > 0 &&
		b.totalShipsSunk == b.totalShips
}
