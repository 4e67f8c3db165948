package controller_test

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

type BotServiceMock struct {
	mock.Mock
}

func (m *BotServiceMock) GetCurrentBot() model.Bot {
	args := m.Called()
	return args.Get(0).(model.Bot)
}
func (m *BotServiceMock) IsAuthorized(botUuid string) bool {
	args := m.Called(botUuid)
	return args.Bool(0)
}

type ManualSpendStorageMock struct {
	mock.Mock
}

func (m *ManualSpendStorageMock) SetManualSpend(spend model.ManualSpend) {
	m.Called(spend)
}
func (m *ManualSpendStorageMock) DeleteManualSpend() {
	m.Called()
}

type WinPriceCacheMock struct {
	mock.Mock
}

func (m *WinPriceCacheMock) GetWinPriceCached(shape model.AuctionShape) *model.WinPrice {
	args := m.Called(shape)
	winPrice := args.Get(0)
	if winPrice == nil {
		return nil
	}
	return winPrice.(*model.WinPrice)
}

type HealthServiceMock struct {
	mock.Mock
}

func (m *HealthServiceMock) HealthCheck() model.BotHealth {
	args := m.Called()
	return args.Get(0).(model.BotHealth)
}
