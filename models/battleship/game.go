package battleship

import (
	"sync"
	"time"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type AttackResult struct {
	X            int
	Y            int
	Hit          bool
	ShipSunk     bool
	AllShipsSunk bool
}

type ShipStatus struct {
	Uuid                 string
	Length               int
	Sunk                 bool
	RemainingActiveCells int
}

// Game owns one Board and serializes every operation on it.
type Game struct {
	uuid      string
	createdAt time.Time
	board     *Board
	ships     map[string]*Ship
	mu        sync.Mutex
}

func newGame(gameUuid string, board *Board) *Game {
	return &Game{
		uuid:      gameUuid,
		createdAt: time.Now(),
		board:     board,
		ships:     make(map[string]*Ship),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) CreatedAt() time.Time {
	return g.createdAt
}

// Board dimensions never change, so no lock is needed
func (g *Game) Dimensions() (horizontalLength, verticalLength int) {
	return g.board.HorizontalLength(), g.board.VerticalLength()
}

// PlaceShip builds a ship and places it. shipUuid is empty when the
// ship did not fit on the board.
func (g *Game) PlaceShip(x, y, length int, orientation Orientation) (string, bool, error) {
	ship, err := NewShip(x, y, length)
	if err != nil {
		return "", false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.board.PlaceShip(ship, orientation) {
		return "", false, nil
	}

	shipUuid := uuid.NewString()[:8]
	for {
		if _, prs := g.ships[shipUuid]; !prs {
			break
		}
		shipUuid = uuid.NewString()[:8]
	}
	g.ships[shipUuid] = ship
	return shipUuid, true, nil
}

func (g *Game) HasShipAt(x, y int) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.HasShipAt(x, y)
}

func (g *Game) Attack(x, y int) AttackResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := AttackResult{X: x, Y: y}

	sunkBefore := g.board.TotalShipsSunk()
	if _, hit := g.board.Strike(x, y); !hit {
		return result
	}

	result.Hit = true
	result.ShipSunk = g.board.TotalShipsSunk() > sunkBefore
	result.AllShipsSunk = g.board.AllShipsSunk()
	return result
}

func (g *Game) ShipStatus(shipUuid string) (ShipStatus, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ship, prs := g.ships[shipUuid]
	if !prs {
		return ShipStatus{}, cerr.ErrShipNotExists(shipUuid)
	}

	return ShipStatus{
		Uuid:                 shipUuid,
		Length:               ship.Length(),
		Sunk:                 g.board.IsShipSunk(ship),
		RemainingActiveCells: ship.RemainingActiveCells(),
	}, nil
}

func (g *Game) AllShipsSunk() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.AllShipsSunk()
}
