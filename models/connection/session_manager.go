package connection

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cerr "github.com/saeidalz13/battleship-board/internal/error"
	"github.com/saeidalz13/battleship-board/pkg/logger"
)

const defaultCleanupInterval = time.Minute * 20

type SessionManager interface {
	GenerateNewSession(conn *websocket.Conn) *Session
	FindSession(sessionId string) (*Session, error)
	TerminateSession(sessionId string)
	WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error
	ReadFromSessionConn(session *Session) (int, []byte, error)
	CleanupPeriodically(ctx context.Context)
	SessionCount() int
}

type BattleshipSessionManager struct {
	cleanupInterval time.Duration
	sessions        map[string]*Session
	mu              sync.RWMutex
}

var _ SessionManager = (*BattleshipSessionManager)(nil)

type Option func(*BattleshipSessionManager)

func WithCleanupInterval(interval time.Duration) Option {
	return func(bsm *BattleshipSessionManager) {
		if interval > 0 {
			bsm.cleanupInterval = interval
		}
	}
}

func NewBattleshipSessionManager(opts ...Option) *BattleshipSessionManager {
	bsm := &BattleshipSessionManager{
		sessions:        make(map[string]*Session, 10),
		cleanupInterval: defaultCleanupInterval,
	}
	for _, opt := range opts {
		opt(bsm)
	}
	return bsm
}

func (bsm *BattleshipSessionManager) GenerateNewSession(conn *websocket.Conn) *Session {
	sessionId := base64.RawURLEncoding.EncodeToString([]byte(uuid.New().String()))
	session := NewSession(sessionId, conn)

	bsm.mu.Lock()
	bsm.sessions[sessionId] = session
	bsm.mu.Unlock()

	return session
}

func (bsm *BattleshipSessionManager) FindSession(sessionId string) (*Session, error) {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	session, prs := bsm.sessions[sessionId]
	if !prs {
		return nil, cerr.ErrSessionNotFound(sessionId)
	}

	if session == nil {
		return nil, cerr.ErrSessionIsNil(sessionId)
	}

	return session, nil
}

func (bsm *BattleshipSessionManager) TerminateSession(sessionId string) {
	bsm.mu.Lock()
	delete(bsm.sessions, sessionId)
	bsm.mu.Unlock()
}

func (bsm *BattleshipSessionManager) SessionCount() int {
	bsm.mu.RLock()
	defer bsm.mu.RUnlock()

	return len(bsm.sessions)
}

// To ensure that there is no dangling connections, sessions
// older than the cleanup interval are closed and removed.
func (bsm *BattleshipSessionManager) CleanupPeriodically(ctx context.Context) {
	ticker := time.NewTicker(bsm.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bsm.cleanupStale()
		}
	}
}

func (bsm *BattleshipSessionManager) cleanupStale() {
	bsm.mu.Lock()
	defer bsm.mu.Unlock()

	for id, session := range bsm.sessions {
		if time.Since(session.createdAt) <= bsm.cleanupInterval {
			continue
		}

		// closing the conn ends the session's read loop
		if session.conn != nil {
			_ = session.conn.Close()
		}
		delete(bsm.sessions, id)
		logger.Log.WithField("session_id", id).Info("removed stale session")
	}
}

func (bsm *BattleshipSessionManager) WriteToSessionConn(session *Session, msg interface{}, msgType uint8) error {
	err := session.writeToConnWithRetry(msg, msgType)

	var connErr ConnErr
	if errors.As(err, &connErr) && connErr.Code() == ConnInvalidMsgType {
		logger.Log.WithField("session_id", session.Id()).WithError(err).Error("refused to write invalid message type")
	}
	return err
}

func (bsm *BattleshipSessionManager) ReadFromSessionConn(session *Session) (int, []byte, error) {
	var retries uint8

	for {
		messageType, payload, err := session.conn.ReadMessage()
		if err == nil {
			return messageType, payload, nil
		}

		if session.handleReadFromConnErr(err, retries) == ConnLoopContinue {
			retries++
			continue
		}
		return -1, []byte{}, err
	}
}

// Returns an invalid code if the payload has no parsable code.
func FetchCodeFromMsg(payload []byte) (uint8, error) {
	var signal struct {
		Code *uint8 `json:"code"`
	}
	const randomInvalidCode uint8 = 255

	if err := json.Unmarshal(payload, &signal); err != nil {
		return randomInvalidCode, err
	}
	if signal.Code == nil {
		return randomInvalidCode, cerr.ErrSignalAbsent()
	}

	return *signal.Code, nil
}
