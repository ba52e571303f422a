package api

import (
	"time"

	"github.com/saeidalz13/battleship-board/pkg/logger"
	"github.com/sirupsen/logrus"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type RequestHandler interface {
	HandleCreateBoard(gameManager mb.GameManager, session *mc.Session) (*mb.Game, mc.Message[mc.RespCreateBoard])
	HandlePlaceShip(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespPlaceShip]
	HandleAttack(gameManager mb.GameManager) (mb.AttackResult, mc.Message[mc.RespAttack])
	HandleShipStatus(gameManager mb.GameManager) mc.Message[mc.RespShipStatus]
	HandleTerminateGame(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespTerminateGame]
}

// Request wraps one raw incoming frame. Every Handle method decodes
// the payload it expects and answers with an envelope; failures are
// reported in Message.Error and never close the connection.
type Request struct {
	payload []byte
}

var _ RequestHandler = (*Request)(nil)

func NewRequest(payload []byte) Request {
	return Request{payload: payload}
}

func (r Request) HandleCreateBoard(gameManager mb.GameManager, session *mc.Session) (*mb.Game, mc.Message[mc.RespCreateBoard]) {
	resp := mc.NewMessage[mc.RespCreateBoard](mc.CodeCreateBoard)

	req, err := mc.DecodeMessage[mc.ReqCreateBoard](r.payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid create board payload")
		return nil, resp
	}

	game, err := gameManager.CreateGame(req.Payload.HorizontalLength, req.Payload.VerticalLength)
	if err != nil {
		resp.AddError(err.Error(), "failed to create board")
		return nil, resp
	}
	session.AddGame(game.Uuid())

	h, v := game.Dimensions()
	resp.AddPayload(mc.RespCreateBoard{
		GameUuid:         game.Uuid(),
		HorizontalLength: h,
		VerticalLength:   v,
	})
	return game, resp
}

func (r Request) HandlePlaceShip(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespPlaceShip] {
	resp := mc.NewMessage[mc.RespPlaceShip](mc.CodePlaceShip)

	req, err := mc.DecodeMessage[mc.ReqPlaceShip](r.payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid place ship payload")
		return resp
	}

	if !session.OwnsGame(req.Payload.GameUuid) {
		resp.AddError(cerr.ErrGameNotOwned(req.Payload.GameUuid).Error(), "only the board creator can place ships")
		return resp
	}

	game, err := gameManager.GetGame(req.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "game not found")
		return resp
	}

	orientation, err := mb.ParseOrientation(req.Payload.Orientation)
	if err != nil {
		resp.AddError(err.Error(), "invalid orientation")
		return resp
	}

	shipUuid, placed, err := game.PlaceShip(req.Payload.X, req.Payload.Y, req.Payload.Length, orientation)
	if err != nil {
		resp.AddError(err.Error(), "invalid ship")
		return resp
	}

	resp.AddPayload(mc.RespPlaceShip{Placed: placed, ShipUuid: shipUuid})
	return resp
}

func (r Request) HandleAttack(gameManager mb.GameManager) (mb.AttackResult, mc.Message[mc.RespAttack]) {
	resp := mc.NewMessage[mc.RespAttack](mc.CodeAttack)

	req, err := mc.DecodeMessage[mc.ReqAttack](r.payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid attack payload")
		return mb.AttackResult{}, resp
	}

	game, err := gameManager.GetGame(req.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "game not found")
		return mb.AttackResult{}, resp
	}

	result := game.Attack(req.Payload.X, req.Payload.Y)
	resp.AddPayload(mc.RespAttack{
		GameUuid:     game.Uuid(),
		X:            result.X,
		Y:            result.Y,
		Hit:          result.Hit,
		ShipSunk:     result.ShipSunk,
		AllShipsSunk: result.AllShipsSunk,
	})
	return result, resp
}

func (r Request) HandleShipStatus(gameManager mb.GameManager) mc.Message[mc.RespShipStatus] {
	resp := mc.NewMessage[mc.RespShipStatus](mc.CodeShipStatus)

	req, err := mc.DecodeMessage[mc.ReqShipStatus](r.payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid ship status payload")
		return resp
	}

	game, err := gameManager.GetGame(req.Payload.GameUuid)
	if err != nil {
		resp.AddError(err.Error(), "game not found")
		return resp
	}

	status, err := game.ShipStatus(req.Payload.ShipUuid)
	if err != nil {
		resp.AddError(err.Error(), "ship not found")
		return resp
	}

	resp.AddPayload(mc.RespShipStatus{
		ShipUuid:             status.Uuid,
		Length:               status.Length,
		Sunk:                 status.Sunk,
		RemainingActiveCells: status.RemainingActiveCells,
	})
	return resp
}

func (r Request) HandleTerminateGame(gameManager mb.GameManager, session *mc.Session) mc.Message[mc.RespTerminateGame] {
	resp := mc.NewMessage[mc.RespTerminateGame](mc.CodeTerminateGame)

	req, err := mc.DecodeMessage[mc.ReqTerminateGame](r.payload)
	if err != nil {
		resp.AddError(err.Error(), "invalid terminate game payload")
		return resp
	}

	gameUuid := req.Payload.GameUuid
	if !session.OwnsGame(gameUuid) {
		resp.AddError(cerr.ErrGameNotOwned(gameUuid).Error(), "only the board creator can terminate it")
		return resp
	}

	if game, err := gameManager.GetGame(gameUuid); err == nil {
		logger.Log.WithFields(logrus.Fields{
			"game_uuid": gameUuid,
			"age":       time.Since(game.CreatedAt()).Round(time.Millisecond).String(),
		}).Info("terminating game")
	}

	gameManager.TerminateGame(gameUuid)
	session.RemoveGame(gameUuid)

	resp.AddPayload(mc.RespTerminateGame{GameUuid: gameUuid})
	return resp
}
