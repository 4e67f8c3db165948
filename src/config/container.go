package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-auction-bot/src/client"
	"gitlab.com/open-soft/go-auction-bot/src/controller"
	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/repository"
	"gitlab.com/open-soft/go-auction-bot/src/service"
	"gitlab.com/open-soft/go-auction-bot/src/service/strategy"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
	"gitlab.com/open-soft/go-auction-bot/src/validator"
)

func InitServiceContainer() Container {
	db, err := sql.Open("mysql", os.Getenv("DATABASE_DSN"))

	if err != nil {
		log.Fatal(fmt.Sprintf("MySQL can't connect: %s", err.Error()))
	}

	db.SetMaxIdleConns(64)
	db.SetMaxOpenConns(64)
	db.SetConnMaxLifetime(time.Minute)

	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_DSN"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	botRepository := repository.BotRepository{
		DB:  db,
		RDB: rdb,
		Ctx: &ctx,
	}

	currentBot := botRepository.GetCurrentBot()
	if currentBot == nil {
		botUuid := os.Getenv("BOT_UUID")

		agentName := os.Getenv("AGENT_NAME")
		if len(agentName) == 0 {
			agentName = "ev_learner_bot"
		}

		err := botRepository.Create(model.Bot{
			BotUuid:   botUuid,
			AgentName: agentName,
			PlayerId:  uuid.New().String(),
		})
		if err != nil {
			panic(err)
		}

		currentBot = botRepository.GetCurrentBot()
		if currentBot == nil {
			panic(fmt.Sprintf("Can't initialize bot: %s", botUuid))
		}
	}

	priceRepository := repository.PriceRepository{
		DB:         db,
		RDB:        rdb,
		Ctx:        &ctx,
		CurrentBot: currentBot,
	}

	strategyConfig := model.StrategyConfig{
		BasePricePerPoint: 15.00, // baseline price per expected point when no history
		WinMargin:         1.05,  // bid slightly above the learned winning price
		MaxSpendFraction:  0.95,  // leave a buffer against overspending
		MinBid:            1.00,
		TieJitterMax:      3.00,
		LearnDecay:        0.80,
		IgnoreLowEv:       0.50,
		CapBidAtGold:      true,
	}

	strategyConfigValidator := validator.StrategyConfigValidator{}
	if err := strategyConfigValidator.Validate(strategyConfig); err != nil {
		panic(err)
	}

	formatter := utils.Formatter{}
	timeService := utils.TimeHelper{}

	valuation := strategy.Valuation{
		IgnoreLowEv: strategyConfig.IgnoreLowEv,
	}

	marketLearner := strategy.MarketLearner{
		PriceRepository: &priceRepository,
		TimeService:     &timeService,
		Decay:           strategyConfig.LearnDecay,
	}

	budgetPlanner := strategy.BudgetPlanner{
		MaxSpendFraction: strategyConfig.MaxSpendFraction,
	}

	allocator := strategy.Allocator{
		Valuation:         &valuation,
		MarketLearner:     &marketLearner,
		Formatter:         &formatter,
		BasePricePerPoint: strategyConfig.BasePricePerPoint,
		WinMargin:         strategyConfig.WinMargin,
		MinBid:            strategyConfig.MinBid,
		TieJitterMax:      strategyConfig.TieJitterMax,
		CapBidAtGold:      strategyConfig.CapBidAtGold,
		Rand:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	biddingPolicy := strategy.BiddingPolicy{
		MarketLearner:   &marketLearner,
		BudgetPlanner:   &budgetPlanner,
		Allocator:       &allocator,
		Valuation:       &valuation,
		PriceRepository: &priceRepository,
		Formatter:       &formatter,
		MinBid:          strategyConfig.MinBid,
	}

	gameClient := client.GameClient{
		Address:    os.Getenv("GAME_WS_DSN"),
		CurrentBot: currentBot,
	}

	botService := service.BotService{
		CurrentBot:    currentBot,
		BotRepository: &botRepository,
	}

	healthService := service.HealthService{
		BotRepository: &botRepository,
		MarketLearner: &marketLearner,
		GameClient:    &gameClient,
		TimeService:   &timeService,
		DB:            db,
		RDB:           rdb,
		Ctx:           &ctx,
		CurrentBot:    currentBot,
	}

	botController := controller.BotController{
		HealthService: &healthService,
		BotService:    &botService,
	}

	spendController := controller.SpendController{
		PriceRepository: &priceRepository,
		BotService:      &botService,
	}

	priceController := controller.PriceController{
		PriceRepository: &priceRepository,
		BotService:      &botService,
	}

	return Container{
		Db:              db,
		CurrentBot:      currentBot,
		BotRepository:   &botRepository,
		PriceRepository: &priceRepository,
		StrategyConfig:  strategyConfig,
		Formatter:       &formatter,
		TimeService:     &timeService,
		Valuation:       &valuation,
		MarketLearner:   &marketLearner,
		BudgetPlanner:   &budgetPlanner,
		Allocator:       &allocator,
		BiddingPolicy:   &biddingPolicy,
		GameClient:      &gameClient,
		BotService:      &botService,
		HealthService:   &healthService,
		BotController:   &botController,
		SpendController: &spendController,
		PriceController: &priceController,
	}
}

type Container struct {
	Db              *sql.DB
	CurrentBot      *model.Bot
	BotRepository   *repository.BotRepository
	PriceRepository *repository.PriceRepository
	StrategyConfig  model.StrategyConfig
	Formatter       *utils.Formatter
	TimeService     *utils.TimeHelper
	Valuation       *strategy.Valuation
	MarketLearner   *strategy.MarketLearner
	BudgetPlanner   *strategy.BudgetPlanner
	Allocator       *strategy.Allocator
	BiddingPolicy   *strategy.BiddingPolicy
	GameClient      *client.GameClient
	BotService      *service.BotService
	HealthService   *service.HealthService
	BotController   *controller.BotController
	SpendController *controller.SpendController
	PriceController *controller.PriceController
}

func (c *Container) StartHttpServer() {
	http.HandleFunc("/health/check", c.BotController.GetHealthCheckAction)
	http.HandleFunc("/spend", c.SpendController.PostManualSpendAction)
	http.HandleFunc("/spend/", c.SpendController.DeleteManualSpendAction)
	http.HandleFunc("/price", c.PriceController.GetWinPriceAction)

	go func() {
		_ = http.ListenAndServe(":8080", nil)
	}()
}
