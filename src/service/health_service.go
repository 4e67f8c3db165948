package service

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"

	"github.com/rafacas/sysstats"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-auction-bot/src/client"
	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/repository"
	"gitlab.com/open-soft/go-auction-bot/src/service/strategy"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
)

type HealthService struct {
	BotRepository *repository.BotRepository
	MarketLearner *strategy.MarketLearner
	GameClient    *client.GameClient
	TimeService   utils.TimeServiceInterface
	DB            *sql.DB
	RDB           *redis.Client
	Ctx           *context.Context
	CurrentBot    *model.Bot
}

func (h *HealthService) HealthCheck() model.BotHealth {
	memStats, _ := sysstats.GetMemStats()
	loadAvg, _ := sysstats.GetLoadAvg()

	dbStatus := model.DbStatusOk
	if h.DB.Ping() != nil {
		dbStatus = model.DbStatusFail
	}

	redisStatus := model.RedisStatusOk
	if h.RDB.Ping(*h.Ctx).Err() != nil {
		redisStatus = model.RedisStatusFail
	}

	gameStatus := model.GameStatusOk
	if !h.GameClient.Connected {
		gameStatus = model.GameStatusDisconnected
	}

	bot := h.BotRepository.GetCurrentBot()

	if bot == nil {
		panic("Current Bot is not found")
	}

	if bot.Id != h.CurrentBot.Id {
		panic(fmt.Sprintf("Wrong BOT ID %d != %d", bot.Id, h.CurrentBot.Id))
	}

	return model.BotHealth{
		Bot:           *bot,
		DbStatus:      dbStatus,
		RedisStatus:   redisStatus,
		GameStatus:    gameStatus,
		LearnedShapes: h.MarketLearner.ShapeCount(),
		Cores:         runtime.NumCPU(),
		Memory:        memStats,
		LoadAvg:       loadAvg,
		CheckedAt:     h.TimeService.GetNowDateTimeString(),
	}
}
