package service

import (
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

type BotStorageInterface interface {
	GetCurrentBotCached(botId int64) model.Bot
}

type BotServiceInterface interface {
	GetCurrentBot() model.Bot
	IsAuthorized(botUuid string) bool
}

// BotService resolves the live bot identity through the cached lookup, so a
// request is checked against the current row and not a pointer captured at
// bootstrap.
type BotService struct {
	CurrentBot    *model.Bot
	BotRepository BotStorageInterface
}

func (b *BotService) GetCurrentBot() model.Bot {
	return b.BotRepository.GetCurrentBotCached(b.CurrentBot.Id)
}

func (b *BotService) IsAuthorized(botUuid string) bool {
	return len(botUuid) > 0 && b.GetCurrentBot().BotUuid == botUuid
}
