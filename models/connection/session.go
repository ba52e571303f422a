package connection

import (
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-board/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	maxWsRetries  uint8 = 2
	backOffFactor uint8 = 2
)

const (
	MessageTypeBytes uint8 = iota
	MessageTypeJSON
)

type ConnectionHandler interface {
	handleReadFromConnErr(err error, retries uint8) uint8
	writeToConnWithRetry(msg interface{}, msgType uint8) error
	onConnErr(err error) uint8
}

// Session is one websocket client. It remembers the games it
// created so they can be torn down with the session.
type Session struct {
	id        string
	conn      *websocket.Conn
	createdAt time.Time
	gameUuids map[string]struct{}

	// gorilla/websocket allows one concurrent writer
	writeMu sync.Mutex
	mu      sync.Mutex
}

var _ ConnectionHandler = (*Session)(nil)

func NewSession(id string, conn *websocket.Conn) *Session {
	return &Session{
		id:        id,
		conn:      conn,
		createdAt: time.Now(),
		gameUuids: make(map[string]struct{}),
	}
}

func (s *Session) Id() string {
	return s.id
}

func (s *Session) Conn() *websocket.Conn {
	return s.conn
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) AddGame(gameUuid string) {
	s.mu.Lock()
	s.gameUuids[gameUuid] = struct{}{}
	s.mu.Unlock()
}

func (s *Session) RemoveGame(gameUuid string) {
	s.mu.Lock()
	delete(s.gameUuids, gameUuid)
	s.mu.Unlock()
}

func (s *Session) OwnsGame(gameUuid string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, prs := s.gameUuids[gameUuid]
	return prs
}

func (s *Session) GameUuids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	uuids := make([]string, 0, len(s.gameUuids))
	for gameUuid := range s.gameUuids {
		uuids = append(uuids, gameUuid)
	}
	return uuids
}

func (s *Session) log() *logrus.Entry {
	entry := logger.Log.WithField("session_id", s.id)
	if s.conn != nil {
		entry = entry.WithField("remote_addr", s.conn.RemoteAddr().String())
	}
	return entry
}

func (s *Session) onConnErr(err error) uint8 {
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		s.log().WithError(err).Warn("timeout error")
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseTryAgainLater) {
		s.log().WithError(err).Warn("high server load/traffic error")
		return ConnLoopRetry
	}

	if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
		s.log().WithError(err).Info("close error")
		return ConnLoopBreak
	}

	if websocket.IsCloseError(err, websocket.CloseProtocolError, websocket.CloseInternalServerErr, websocket.CloseTLSHandshake, websocket.CloseMandatoryExtension) {
		s.log().WithError(err).Error("critical error")
		return ConnLoopBreak
	}

	// Clients that send binary or malformed frames are not ours
	if websocket.IsCloseError(err, websocket.CloseInvalidFramePayloadData, websocket.CloseUnsupportedData, websocket.CloseMessageTooBig, websocket.ClosePolicyViolation, websocket.CloseServiceRestart, websocket.CloseNoStatusReceived) {
		s.log().WithError(err).Warn("non-critical error")
		return ConnLoopBreak
	}

	s.log().WithError(err).Warn("unexpected error")
	return ConnLoopBreak
}

// Writes to the connection of that session, retrying with a
// linear backoff on timeouts.
func (s *Session) writeToConnWithRetry(msg interface{}, msgType uint8) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var retries uint8

	for {
		var err error

		switch msgType {
		case MessageTypeJSON:
			err = s.conn.WriteJSON(msg)

		case MessageTypeBytes:
			respBytes, ok := msg.([]byte)
			if !ok {
				return NewConnErr(ConnInvalidMsgType).AddDesc("msg type expected: []byte got invalid")
			}
			err = s.conn.WriteMessage(websocket.TextMessage, respBytes)

		default:
			return NewConnErr(ConnInvalidMsgType).AddDesc("invalid message type to write with retry")
		}

		if err == nil {
			return nil
		}

		if s.onConnErr(err) != ConnLoopRetry {
			return NewConnErr(ConnLoopBreak).AddDesc("breaking write loop due to: " + err.Error())
		}

		if retries >= maxWsRetries {
			s.log().WithError(err).Error("max retries reached for writing to ws")
			return NewConnErr(ConnLoopBreak).AddDesc("max write retries reached")
		}

		retries++
		s.log().WithField("retry", retries).Warn("writing to ws failed; retrying")
		time.Sleep(time.Duration(retries*backOffFactor) * time.Second)
	}
}

func (s *Session) handleReadFromConnErr(err error, retries uint8) uint8 {
	switch s.onConnErr(err) {
	case ConnLoopRetry:
		if retries < maxWsRetries {
			s.log().WithField("retry", retries+1).Warn("failed to read from ws conn; retrying")
			time.Sleep(time.Duration((retries+1)*backOffFactor) * time.Second)
			return ConnLoopContinue
		}
		return ConnLoopBreak

	default:
		return ConnLoopBreak
	}
}
