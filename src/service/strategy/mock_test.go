package strategy_test

import (
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

type WinPriceStorageMock struct {
	mock.Mock
}

func (m *WinPriceStorageMock) GetWinPrices() []model.WinPrice {
	args := m.Called()
	return args.Get(0).([]model.WinPrice)
}
func (m *WinPriceStorageMock) SaveWinPrice(winPrice model.WinPrice) error {
	args := m.Called(winPrice)
	return args.Error(0)
}

type WinPriceReaderMock struct {
	mock.Mock
}

func (m *WinPriceReaderMock) GetWinPrice(shape model.AuctionShape) (float64, bool) {
	args := m.Called(shape)
	return args.Get(0).(float64), args.Bool(1)
}

type ManualSpendStorageMock struct {
	mock.Mock
}

func (m *ManualSpendStorageMock) GetManualSpend() *model.ManualSpend {
	args := m.Called()
	spend := args.Get(0)
	if spend == nil {
		return nil
	}
	return spend.(*model.ManualSpend)
}
func (m *ManualSpendStorageMock) DeleteManualSpend() {
	m.Called()
}
