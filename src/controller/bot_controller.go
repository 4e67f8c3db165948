package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/service"
)

type HealthServiceInterface interface {
	HealthCheck() model.BotHealth
}

type BotController struct {
	HealthService HealthServiceInterface
	BotService    service.BotServiceInterface
}

func (b *BotController) GetHealthCheckAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	botUuid := req.URL.Query().Get("botUuid")

	if !b.BotService.IsAuthorized(botUuid) {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	health := b.HealthService.HealthCheck()

	encoded, _ := json.Marshal(health)
	fmt.Fprintf(w, string(encoded))
}
