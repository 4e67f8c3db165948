package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/service"
)

type WinPriceCacheInterface interface {
	GetWinPriceCached(shape model.AuctionShape) *model.WinPrice
}

type PriceController struct {
	PriceRepository WinPriceCacheInterface
	BotService      service.BotServiceInterface
}

// GetWinPriceAction serves the learned win price for one auction shape from
// the redis mirror, so an operator can inspect the market table without
// touching mysql or the round loop.
func (p *PriceController) GetWinPriceAction(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if req.Method != "GET" {
		http.Error(w, "Only GET method is allowed", http.StatusMethodNotAllowed)

		return
	}

	botUuid := req.URL.Query().Get("botUuid")

	if !p.BotService.IsAuthorized(botUuid) {
		http.Error(w, "Forbidden", http.StatusForbidden)

		return
	}

	die, dieErr := strconv.Atoi(req.URL.Query().Get("die"))
	num, numErr := strconv.Atoi(req.URL.Query().Get("num"))
	bonus, bonusErr := strconv.Atoi(req.URL.Query().Get("bonus"))

	if dieErr != nil || numErr != nil || bonusErr != nil {
		http.Error(w, "Valid die, num and bonus are required", http.StatusBadRequest)

		return
	}

	winPrice := p.PriceRepository.GetWinPriceCached(model.AuctionShape{
		Die:   die,
		Num:   num,
		Bonus: bonus,
	})

	if winPrice == nil {
		http.Error(w, "Win price is not found", http.StatusNotFound)

		return
	}

	encoded, _ := json.Marshal(winPrice)
	fmt.Fprintf(w, string(encoded))
}
