package connection

type ReqCreateBoard struct {
	HorizontalLength int `json:"horizontal_length"`
	VerticalLength   int `json:"vertical_length"`
}

type ReqPlaceShip struct {
	GameUuid    string `json:"game_uuid"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Length      int    `json:"length"`
	Orientation string `json:"orientation"`
}

type ReqAttack struct {
	GameUuid string `json:"game_uuid"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

type ReqShipStatus struct {
	GameUuid string `json:"game_uuid"`
	ShipUuid string `json:"ship_uuid"`
}

type ReqTerminateGame struct {
	GameUuid string `json:"game_uuid"`
}
