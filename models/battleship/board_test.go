package battleship

import (
	"errors"
	"math"
	"testing"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

func mustBoard(t *testing.T, h, v int) *Board {
	t.Helper()
	board, err := NewBoard(h, v)
	if err != nil {
		t.Fatal(err)
	}
	return board
}

func mustShip(t *testing.T, x, y, length int) *Ship {
	t.Helper()
	ship, err := NewShip(x, y, length)
	if err != nil {
		t.Fatal(err)
	}
	return ship
}

func TestNewBoard(t *testing.T) {
	tests := []struct {
		name      string
		h, v      int
		expectErr bool
	}{
		{name: "valid board", h: 12, v: 15},
		{name: "single cell", h: 1, v: 1},
		{name: "negative horizontal", h: -1, v: 10, expectErr: true},
		{name: "negative vertical", h: 10, v: -10, expectErr: true},
		{name: "zero horizontal", h: 0, v: 10, expectErr: true},
		{name: "zero vertical", h: 10, v: 0, expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board, err := NewBoard(test.h, test.v)
			if test.expectErr {
				if !errors.Is(err, cerr.ErrInvalidDimensions) {
					t.Fatalf("expected error: %v\tgot: %v", cerr.ErrInvalidDimensions, err)
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if board.HorizontalLength() != test.h || board.VerticalLength() != test.v {
				t.Fatalf("expected dimensions: %dx%d\tgot: %dx%d", test.h, test.v, board.HorizontalLength(), board.VerticalLength())
			}
		})
	}
}

func TestPlaceShip(t *testing.T) {
	tests := []struct {
		name        string
		h, v        int
		x, y, len   int
		orientation Orientation
		expected    bool
		occupied    []Coordinates
		empty       []Coordinates
	}{
		{
			name: "vertical within bounds",
			h:    20, v: 20, x: 11, y: 10, len: 5,
			orientation: OrientationVertical,
			expected:    true,
			occupied:    []Coordinates{{11, 10}, {11, 12}, {11, 14}},
			empty:       []Coordinates{{11, 15}, {12, 10}, {11, 9}},
		},
		{
			name: "horizontal within bounds",
			h:    10, v: 10, x: 2, y: 3, len: 4,
			orientation: OrientationHorizontal,
			expected:    true,
			occupied:    []Coordinates{{2, 3}, {3, 3}, {4, 3}, {5, 3}},
			empty:       []Coordinates{{6, 3}, {2, 4}, {1, 3}},
		},
		{
			name: "single cell at far corner",
			h:    10, v: 10, x: 10, y: 10, len: 1,
			orientation: OrientationVertical,
			expected:    true,
			occupied:    []Coordinates{{10, 10}},
		},
		{
			name: "too long vertically",
			h:    10, v: 10, x: 10, y: 10, len: 2,
			orientation: OrientationVertical,
			empty:       []Coordinates{{10, 10}, {10, 11}},
		},
		{
			name: "too long horizontally",
			h:    10, v: 10, x: 8, y: 1, len: 4,
			orientation: OrientationHorizontal,
			empty:       []Coordinates{{8, 1}, {9, 1}, {10, 1}},
		},
		{
			name: "huge horizontal length",
			h:    10, v: 10, x: 2, y: 1, len: math.MaxInt,
			orientation: OrientationHorizontal,
			empty:       []Coordinates{{2, 1}, {3, 1}, {10, 1}},
		},
		{
			name: "huge vertical length",
			h:    10, v: 10, x: 3, y: 3, len: math.MaxInt - 1,
			orientation: OrientationVertical,
			empty:       []Coordinates{{3, 3}, {3, 4}, {3, 10}},
		},
		{
			name: "horizontal row below board",
			h:    10, v: 5, x: 1, y: 6, len: 2,
			orientation: OrientationHorizontal,
			empty:       []Coordinates{{1, 6}, {2, 6}},
		},
		{
			name: "origin outside board",
			h:    10, v: 10, x: 11, y: 11, len: 5,
			orientation: OrientationVertical,
			empty:       []Coordinates{{11, 11}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustBoard(t, test.h, test.v)
			ship := mustShip(t, test.x, test.y, test.len)

			if got := board.PlaceShip(ship, test.orientation); got != test.expected {
				t.Fatalf("expected placed: %t\tgot: %t", test.expected, got)
			}

			for _, c := range test.occupied {
				if !board.HasShipAt(c.X, c.Y) {
					t.Fatalf("expected ship at (%d, %d)", c.X, c.Y)
				}
			}
			for _, c := range test.empty {
				if board.HasShipAt(c.X, c.Y) {
					t.Fatalf("expected no ship at (%d, %d)", c.X, c.Y)
				}
			}

			expectedShips := 0
			if test.expected {
				expectedShips = 1
			}
			if board.TotalShips() != expectedShips {
				t.Fatalf("expected total ships: %d\tgot: %d", expectedShips, board.TotalShips())
			}
		})
	}
}

func TestPlaceShipCollision(t *testing.T) {
	board := mustBoard(t, 10, 10)
	shipA := mustShip(t, 5, 3, 5)
	shipB := mustShip(t, 3, 5, 5)

	if !board.PlaceShip(shipA, OrientationVertical) {
		t.Fatal("expected first ship to be placed")
	}
	if board.PlaceShip(shipB, OrientationHorizontal) {
		t.Fatal("expected crossing ship to be rejected")
	}

	// (5, 5) belongs to shipA; the rest of shipB's path must be clear
	for _, x := range []int{3, 4, 6, 7} {
		if board.HasShipAt(x, 5) {
			t.Fatalf("rejected ship left a cell at (%d, 5)", x)
		}
	}
	if board.TotalShips() != 1 {
		t.Fatalf("expected total ships: 1\tgot: %d", board.TotalShips())
	}
	if board.OccupiedCells() != 5 {
		t.Fatalf("expected occupied cells: 5\tgot: %d", board.OccupiedCells())
	}
}

func TestPlaceSameShipTwice(t *testing.T) {
	board := mustBoard(t, 10, 10)
	ship := mustShip(t, 1, 1, 3)

	if !board.PlaceShip(ship, OrientationHorizontal) {
		t.Fatal("expected first placement to succeed")
	}
	if board.PlaceShip(ship, OrientationHorizontal) {
		t.Fatal("expected duplicate placement to fail")
	}
	if board.PlaceShip(nil, OrientationHorizontal) {
		t.Fatal("expected nil ship placement to fail")
	}
	if board.TotalShips() != 1 {
		t.Fatalf("expected total ships: 1\tgot: %d", board.TotalShips())
	}
}

func TestAttack(t *testing.T) {
	board := mustBoard(t, 20, 20)
	ship := mustShip(t, 10, 10, 9)
	if !board.PlaceShip(ship, OrientationVertical) {
		t.Fatal("expected placement to succeed")
	}

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{name: "hit origin", x: 10, y: 10, expected: true},
		{name: "miss above", x: 10, y: 9},
		{name: "repeat origin", x: 10, y: 10},
		{name: "hit middle", x: 10, y: 13, expected: true},
		{name: "hit end", x: 10, y: 18, expected: true},
		{name: "miss below end", x: 10, y: 19},
		{name: "miss beside", x: 11, y: 10},
		{name: "miss far", x: 19, y: 18},
		{name: "negative x", x: -10, y: 10},
		{name: "negative y", x: 10, y: -10},
		{name: "off board", x: 100, y: 100},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := board.Attack(test.x, test.y); got != test.expected {
				t.Fatalf("attack (%d, %d) expected: %t\tgot: %t", test.x, test.y, test.expected, got)
			}
		})
	}

	if ship.Hits() != 3 {
		t.Fatalf("expected ship hits: 3\tgot: %d", ship.Hits())
	}
	if board.IsShipSunk(ship) {
		t.Fatal("ship must not be sunk after 3 of 9 hits")
	}
}

func TestStrikeReturnsShip(t *testing.T) {
	board := mustBoard(t, 5, 5)
	ship := mustShip(t, 2, 2, 2)
	board.PlaceShip(ship, OrientationHorizontal)

	struck, hit := board.Strike(3, 2)
	if !hit || struck != ship {
		t.Fatalf("expected strike to return placed ship, got: %v %t", struck, hit)
	}

	struck, hit = board.Strike(3, 2)
	if hit || struck != nil {
		t.Fatalf("expected repeat strike to miss, got: %v %t", struck, hit)
	}
}

func TestIsShipSunk(t *testing.T) {
	board := mustBoard(t, 10, 10)
	ship := mustShip(t, 1, 1, 3)
	board.PlaceShip(ship, OrientationHorizontal)

	if board.IsShipSunk(nil) {
		t.Fatal("nil ship must never be sunk")
	}

	for x := 1; x <= 3; x++ {
		if board.IsShipSunk(ship) {
			t.Fatalf("ship sunk before cell %d was hit", x)
		}
		if !board.Attack(x, 1) {
			t.Fatalf("expected hit at (%d, 1)", x)
		}
	}

	if !board.IsShipSunk(ship) {
		t.Fatal("expected ship to be sunk")
	}
	if board.TotalShipsSunk() != 1 {
		t.Fatalf("expected sunk ships: 1\tgot: %d", board.TotalShipsSunk())
	}

	// the pre-sunk ship is never counted, so the board is never defeated
	if board.OccupiedCells() != 0 || board.AllShipsSunk() {
		t.Fatalf("expected empty board not reported as defeated, occupied: %d", board.OccupiedCells())
	}
}

func TestAllShipsSunk(t *testing.T) {
	t.Run("blank board", func(t *testing.T) {
		board := mustBoard(t, 10, 10)
		if board.AllShipsSunk() {
			t.Fatal("board without ships must not report all sunk")
		}
	})

	t.Run("ships sunk one by one", func(t *testing.T) {
		board := mustBoard(t, 10, 10)
		shipA := mustShip(t, 1, 1, 2)
		shipB := mustShip(t, 5, 5, 3)
		board.PlaceShip(shipA, OrientationHorizontal)
		board.PlaceShip(shipB, OrientationVertical)

		board.Attack(1, 1)
		board.Attack(2, 1)
		if board.AllShipsSunk() {
			t.Fatal("second ship still afloat")
		}

		board.Attack(5, 5)
		board.Attack(5, 6)
		if board.AllShipsSunk() {
			t.Fatal("second ship has one cell left")
		}

		board.Attack(5, 7)
		if !board.AllShipsSunk() {
			t.Fatal("expected all ships to be sunk")
		}
		if board.TotalShipsSunk() != board.TotalShips() {
			t.Fatalf("expected sunk == total, got: %d != %d", board.TotalShipsSunk(), board.TotalShips())
		}
	})
}

func TestSunkCountedOnce(t *testing.T) {
	board := mustBoard(t, 10, 10)
	ship := mustShip(t, 1, 1, 1)
	board.PlaceShip(ship, OrientationVertical)

	// sunk before the board ever sees a hit
	ship.RegisterHit()
	other := mustShip(t, 3, 3, 1)
	board.PlaceShip(other, OrientationVertical)

	board.Attack(1, 1)
	board.Attack(3, 3)

	if board.TotalShipsSunk() > board.TotalShips() {
		t.Fatalf("sunk ships %d exceed total %d", board.TotalShipsSunk(), board.TotalShips())
	}
	if board.TotalShipsSunk() != 1 {
		t.Fatalf("expected sunk ships: 1\tgot: %d", board.TotalShipsSunk())
	}

	// the pre-sunk ship is never counted, so the board is never defeated
	if board.OccupiedCells() != 0 || board.AllShipsSunk() {
		t.Fatalf("expected empty board not reported as defeated, occupied: %d", board.OccupiedCells())
	}
}
