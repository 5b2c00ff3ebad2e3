package domain

// ClientMessage is anything a browser sends over the live-play socket.
type ClientMessage struct {
	Type       string `json:"type"`
	GameID     string `json:"gameId,omitempty"`
	Column     *int   `json:"column,omitempty"`
	Rows       int    `json:"rows,omitempty"`
	Cols       int    `json:"cols,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	HumanFirst *bool  `json:"humanFirst,omitempty"`
}

type ServerMessage struct {
	Type    string      `json:"type"`
	Message string      `json:"message,omitempty"`
	GameID  string      `json:"gameId,omitempty"`
	Column  *int        `json:"column,omitempty"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	MsgNewGame  = "new_game"
	MsgResume   = "resume"
	MsgMakeMove = "make_move"
	MsgRestart  = "restart"
	MsgHint     = "hint"

	MsgGameState = "game_state"
	MsgError     = "error"
)
