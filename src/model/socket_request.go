package model

// HelloRequest registers the agent with the auction game server right after
// the websocket is established.
type HelloRequest struct {
	AgentName string `json:"agent_name"`
	PlayerId  string `json:"player_id"`
}

type BidsResponse struct {
	Bids map[string]float64 `json:"bids"`
}

type GameStateEvent struct {
	Type  string    `json:"type"`
	State GameState `json:"state"`
}

const GameStateEventTypeRound = "round"
const GameStateEventTypeGameOver = "game_over"
