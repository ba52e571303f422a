package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	"github.com/saeidalz13/battleship-board/pkg/logger"
	"github.com/sirupsen/logrus"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

const (
	RoutePattern = "GET /battleship"
)

var (
	upgrader = websocket.Upgrader{

		// good average time since this is not a high-latency operation such as video streaming
		HandshakeTimeout: time.Second * 5,

		ReadBufferSize:  2048,
		WriteBufferSize: 2048,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}
)

type RequestProcessor struct {
	sessionManager mc.SessionManager
	gameManager    mb.GameManager
	analytics      *sqlc.AnalyticsManager
}

// analytics may be nil, in which case nothing is recorded.
func NewRequestProcessor(
	sessionManager mc.SessionManager,
	gameManager mb.GameManager,
	analytics *sqlc.AnalyticsManager,
) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		gameManager:    gameManager,
		analytics:      analytics,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("failed to upgrade connection")
		return
	}

	session := rp.sessionManager.GenerateNewSession(conn)
	logger.Log.WithFields(logrus.Fields{
		"session_id":  session.Id(),
		"remote_addr": conn.RemoteAddr().String(),
	}).Info("new connection established")

	rp.processSessionRequests(r.Context(), session)
}

func (rp RequestProcessor) processSessionRequests(ctx context.Context, session *mc.Session) {
	log := logger.Log.WithField("session_id", session.Id())

	defer func() {
		for _, gameUuid := range session.GameUuids() {
			rp.gameManager.TerminateGame(gameUuid)
		}
		_ = session.Conn().Close()
		rp.sessionManager.TerminateSession(session.Id())
		log.Info("session terminated")
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: session.Id()})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		code, err := mc.FetchCodeFromMsg(payload)
		if err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError(err.Error(), "incoming req payload must contain 'code' field")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		req := NewRequest(payload)

		switch code {
		case mc.CodeCreateBoard:
			game, respMsg := req.HandleCreateBoard(rp.gameManager, session)
			if game != nil {
				log.WithField("game_uuid", game.Uuid()).Debug("board created")
				if err := rp.analytics.IncrementBoardsCreatedCount(ctx); err != nil {
					// analytics failures never fail the request
					log.WithError(err).Warn("failed to record created board")
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodePlaceShip:
			respMsg := req.HandlePlaceShip(rp.gameManager, session)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		// After every hit the attacker learns whether a ship sank and,
		// on the last one, receives an extra all-ships-sunk message
		case mc.CodeAttack:
			result, respMsg := req.HandleAttack(rp.gameManager)
			if result.ShipSunk {
				if err := rp.analytics.IncrementShipsSunkCount(ctx); err != nil {
					log.WithError(err).Warn("failed to record sunk ship")
				}
			}

			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

			if result.AllShipsSunk {
				sunkMsg := mc.NewMessage[mc.RespAllShipsSunk](mc.CodeAllShipsSunk)
				sunkMsg.AddPayload(mc.RespAllShipsSunk{GameUuid: respMsg.Payload.GameUuid})
				if err := rp.sessionManager.WriteToSessionConn(session, sunkMsg, mc.MessageTypeJSON); err != nil {
					break sessionLoop
				}
			}

		case mc.CodeShipStatus:
			respMsg := req.HandleShipStatus(rp.gameManager)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		case mc.CodeTerminateGame:
			respMsg := req.HandleTerminateGame(rp.gameManager, session)
			if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			if err := rp.sessionManager.WriteToSessionConn(session, respInvalidSignal, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
		}
	}
}
