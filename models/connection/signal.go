package connection

const (
	CodeSessionID uint8 = iota
	CodeCreateBoard
	CodePlaceShip
	CodeAttack
	CodeShipStatus
	CodeAllShipsSunk
	CodeTerminateGame
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent
)
