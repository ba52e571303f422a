package battleship

import (
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type GameManager interface {
	CreateGame(horizontalLength, verticalLength int) (*Game, error)
	GetGame(gameUuid string) (*Game, error)
	TerminateGame(gameUuid string)
	GameCount() int
}

type BattleshipGameManager struct {
	games map[string]*Game
	mu    sync.RWMutex
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager() *BattleshipGameManager {
	return &BattleshipGameManager{
		games: make(map[string]*Game, 10),
	}
}

func (bgm *BattleshipGameManager) CreateGame(horizontalLength, verticalLength int) (*Game, error) {
	board, err := NewBoard(horizontalLength, verticalLength)
	if err != nil {
		return nil, err
	}

	bgm.mu.Lock()
	defer bgm.mu.Unlock()

	gameUuid := uuid.NewString()[:6]
	for {
		if _, prs := bgm.games[gameUuid]; !prs {
			break
		}
		gameUuid = uuid.NewString()[:6]
	}

	game := newGame(gameUuid, board)
	bgm.games[gameUuid] = game
	return game, nil
}

func (bgm *BattleshipGameManager) GetGame(gameUuid string) (*Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameUuid]
	bgm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrGameNotExists(gameUuid)
	}

	return game, nil
}

func (bgm *BattleshipGameManager) TerminateGame(gameUuid string) {
	bgm.mu.Lock()
	delete(bgm.games, gameUuid)
	bgm.mu.Unlock()
}

func (bgm *BattleshipGameManager) GameCount() int {
	bgm.mu.RLock()
	defer bgm.mu.RUnlock()

	return len(bgm.games)
}
