package connection

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespCreateBoard struct {
	GameUuid         string `json:"game_uuid"`
	HorizontalLength int    `json:"horizontal_length"`
	VerticalLength   int    `json:"vertical_length"`
}

type RespPlaceShip struct {
	Placed   bool   `json:"placed"`
	ShipUuid string `json:"ship_uuid,omitempty"`
}

type RespAttack struct {
	GameUuid     string `json:"game_uuid"`
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Hit          bool   `json:"hit"`
	ShipSunk     bool   `json:"ship_sunk"`
	AllShipsSunk bool   `json:"all_ships_sunk"`
}

type RespShipStatus struct {
	ShipUuid             string `json:"ship_uuid"`
	Length               int    `json:"length"`
	Sunk                 bool   `json:"sunk"`
	RemainingActiveCells int    `json:"remaining_active_cells"`
}

type RespAllShipsSunk struct {
	GameUuid string `json:"game_uuid"`
}

type RespTerminateGame struct {
	GameUuid string `json:"game_uuid"`
}

type RespErr struct {
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(errorDetails, message string) *RespErr {
	return &RespErr{
		ErrorDetails: errorDetails,
		Message:      message,
	}
}
