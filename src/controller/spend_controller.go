package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/service"
)

type ManualSpendStorageInterface interface {
	SetManualSpend(spend model.ManualSpend)
	DeleteManualSpend()
}

type SpendController struct {
	PriceRepository ManualSpendStorageInterface
	BotService      service.BotServiceInterface
}

// PostManualSpendAction parks a lump-sum spend request. The policy picks it
// up at the top of the next round.
func (s *SpendController) PostManualSpendAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method == "OPTIONS" {
		fmt.Fprintf(w, "OK")
		return
	}

	if req.Method != "POST" {
		http.Error(w, "Only POST method is allowed", http.StatusMethodNotAllowed)

		return
	}

	botUuid := req.URL.Query().Get("botUuid")

	if !s.BotService.IsAuthorized(botUuid) {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	var manualSpend model.ManualSpend

	err := json.NewDecoder(req.Body).Decode(&manualSpend)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)

		return
	}

	if manualSpend.BotUuid != s.BotService.GetCurrentBot().BotUuid {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	if !manualSpend.IsValid() {
		http.Error(w, "Spend amount must be positive", http.StatusBadRequest)

		return
	}

	s.PriceRepository.SetManualSpend(manualSpend)

	encoded, _ := json.Marshal(manualSpend)
	fmt.Fprintf(w, string(encoded))
}

// DeleteManualSpendAction clears a pending spend request that has not been
// consumed yet.
func (s *SpendController) DeleteManualSpendAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method == "OPTIONS" {
		fmt.Fprintf(w, "OK")
		return
	}

	if req.Method != "DELETE" {
		http.Error(w, "Only DELETE method is allowed", http.StatusMethodNotAllowed)

		return
	}

	botUuid := req.URL.Query().Get("botUuid")

	if !s.BotService.IsAuthorized(botUuid) {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	s.PriceRepository.DeleteManualSpend()

	fmt.Fprintf(w, "{\"status\": \"OK\"}")
}
