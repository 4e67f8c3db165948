package model

type Bot struct {
	Id        int64  `json:"id"`
	BotUuid   string `json:"botUuid"`
	AgentName string `json:"agentName"`
	PlayerId  string `json:"playerId"`
}
