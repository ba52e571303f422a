package error

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("invalid board dimensions")
	ErrInvalidShip       = errors.New("invalid ship")
)

func ErrBoardDimensions(horizontalLength, verticalLength int) error {
	return fmt.Errorf("%w: horizontal and vertical length must be positive\thorizontal: %d\tvertical: %d", ErrInvalidDimensions, horizontalLength, verticalLength)
}

func ErrShipArguments(x, y, length int) error {
	return fmt.Errorf("%w: x, y and length must be positive\tx: %d\ty: %d\tlength: %d", ErrInvalidShip, x, y, length)
}

func ErrInvalidOrientation(orientation string) error {
	return fmt.Errorf("orientation must be either horizontal or vertical, got: %q", orientation)
}

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("game with this uuid does not exist, uuid: %s", gameUuid)
}

func ErrShipNotExists(shipUuid string) error {
	return fmt.Errorf("ship with this uuid does not exist, uuid: %s", shipUuid)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

func ErrSessionIsNil(sessionId string) error {
	return fmt.Errorf("session is nil, id: %s", sessionId)
}

func ErrSignalAbsent() error {
	return fmt.Errorf("incoming req payload must contain 'code' field")
}

func ErrGameNotOwned(gameUuid string) error {
	return fmt.Errorf("game was not created by this session, uuid: %s", gameUuid)
}

func ErrConfigValue(key, value string) error {
	return fmt.Errorf("invalid config value for %s: %q", key, value)
}
