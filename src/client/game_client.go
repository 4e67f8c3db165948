package client

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

// GameClient talks to the dnd_auction_game server: register once, then
// receive one snapshot per round and answer with a bid map.
type GameClient struct {
	Address    string
	CurrentBot *model.Bot

	Connection *websocket.Conn
	Connected  bool
}

func (g *GameClient) Connect() {
	connection, _, err := websocket.DefaultDialer.Dial(g.Address, nil)
	if err != nil {
		log.Printf("Game [err_1] WS connect [%s]: %s, wait and reconnect...", g.Address, err.Error())
		time.Sleep(time.Second * 3)
		g.Connect()

		return
	}

	hello := model.HelloRequest{
		AgentName: g.CurrentBot.AgentName,
		PlayerId:  g.CurrentBot.PlayerId,
	}
	serialized, _ := json.Marshal(hello)
	err = connection.WriteMessage(websocket.TextMessage, serialized)
	if err != nil {
		log.Printf("Game [err_1] WS hello [%s]: %s, wait and reconnect...", g.Address, err.Error())
		_ = connection.Close()
		time.Sleep(time.Second * 3)
		g.Connect()

		return
	}

	g.Connection = connection
	g.Connected = true

	log.Printf("Game server connected [%s] as %s", g.Address, g.CurrentBot.AgentName)
}

// Run reads round snapshots until the game ends, invoking decide
// synchronously once per round. Read failures reconnect and continue, the
// server decides when the game is over.
func (g *GameClient) Run(decide func(state model.GameState) map[string]float64) {
	for {
		_, message, err := g.Connection.ReadMessage()
		if err != nil {
			log.Printf("Game [err_2] WS read [%s]: %s, wait and reconnect...", g.Address, err.Error())
			g.Connected = false
			_ = g.Connection.Close()
			time.Sleep(time.Second * 3)
			g.Connect()
			continue
		}

		var event model.GameStateEvent
		err = json.Unmarshal(message, &event)
		if err != nil {
			log.Printf("Game [err_3] WS decode: %s", err.Error())
			continue
		}

		if event.Type == model.GameStateEventTypeGameOver {
			log.Println("Game is over")
			g.Connected = false
			_ = g.Connection.Close()

			return
		}

		if event.Type != model.GameStateEventTypeRound {
			log.Printf("Game [err_5] unknown event type [%s] is skipped", event.Type)
			continue
		}

		bids := decide(event.State)

		response := model.BidsResponse{Bids: bids}
		serialized, _ := json.Marshal(response)
		err = g.Connection.WriteMessage(websocket.TextMessage, serialized)
		if err != nil {
			log.Printf("Game [err_4] WS write [round %d]: %s", event.State.Round, err.Error())
		}
	}
}
