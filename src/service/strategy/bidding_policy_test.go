package strategy_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/service/strategy"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
)

func newBiddingPolicy(winPriceStorage strategy.WinPriceStorageInterface, manualSpendStorage strategy.ManualSpendStorageInterface) strategy.BiddingPolicy {
	valuation := &strategy.Valuation{
		IgnoreLowEv: 0.50,
	}

	marketLearner := &strategy.MarketLearner{
		PriceRepository: winPriceStorage,
		TimeService:     &utils.TimeHelper{},
		Decay:           0.80,
	}

	formatter := &utils.Formatter{}

	return strategy.BiddingPolicy{
		MarketLearner: marketLearner,
		BudgetPlanner: &strategy.BudgetPlanner{
			MaxSpendFraction: 0.95,
		},
		Allocator: &strategy.Allocator{
			Valuation:         valuation,
			MarketLearner:     marketLearner,
			Formatter:         formatter,
			BasePricePerPoint: 15.00,
			WinMargin:         1.05,
			MinBid:            1.00,
			TieJitterMax:      0.00,
			CapBidAtGold:      true,
			Rand:              rand.New(rand.NewSource(42)),
		},
		Valuation:       valuation,
		PriceRepository: manualSpendStorage,
		Formatter:       formatter,
		MinBid:          1.00,
	}
}

func TestDecideEndToEnd(t *testing.T) {
	assertion := assert.New(t)

	winPriceStorage := new(WinPriceStorageMock)
	winPriceStorage.On("SaveWinPrice", mock.Anything).Return(nil)

	manualSpendStorage := new(ManualSpendStorageMock)
	manualSpendStorage.On("GetManualSpend").Return(nil)

	policy := newBiddingPolicy(winPriceStorage, manualSpendStorage)

	state := model.GameState{
		AgentId: "me",
		Round:   2,
		States: map[string]model.AgentState{
			"me":    {Gold: 500.00},
			"rival": {Gold: 700.00},
		},
		Auctions: map[string]model.Auction{
			"a": {Die: 6, Num: 3, Bonus: 2},
			"b": {Die: 3, Num: 1, Bonus: 0},
		},
		PrevAuctions: map[string]model.RoundOutcome{
			"prev-1": {
				Die:    6,
				Num:    3,
				Bonus:  2,
				Reward: 13,
				Bids: []model.OutcomeBid{
					{AgentId: "rival", Gold: 50.00},
					{AgentId: "me", Gold: 41.00},
				},
			},
		},
	}

	bids := policy.Decide(state)

	// a is priced from the freshly learned 50.00, b from the cold-start
	// heuristic: 15 * 2 * (0.75 + 0.25 * 1.0)
	assertion.Equal(52.50, bids["a"])
	assertion.Equal(30.00, bids["b"])

	total := 0.00
	for _, bid := range bids {
		total += bid
	}
	assertion.LessOrEqual(total, 475.00)
}

func TestDecideEmptyRound(t *testing.T) {
	assertion := assert.New(t)

	manualSpendStorage := new(ManualSpendStorageMock)
	manualSpendStorage.On("GetManualSpend").Return(nil)

	policy := newBiddingPolicy(new(WinPriceStorageMock), manualSpendStorage)

	// no auctions
	bids := policy.Decide(model.GameState{
		AgentId: "me",
		Round:   1,
		States: map[string]model.AgentState{
			"me": {Gold: 500.00},
		},
		Auctions: map[string]model.Auction{},
	})
	assertion.Empty(bids)

	// no gold
	bids = policy.Decide(model.GameState{
		AgentId: "me",
		Round:   1,
		States: map[string]model.AgentState{
			"me": {Gold: 0.00},
		},
		Auctions: map[string]model.Auction{
			"a": {Die: 6, Num: 1, Bonus: 0},
		},
	})
	assertion.Empty(bids)

	// own state missing from the snapshot
	bids = policy.Decide(model.GameState{
		AgentId: "me",
		Round:   1,
		States:  map[string]model.AgentState{},
		Auctions: map[string]model.Auction{
			"a": {Die: 6, Num: 1, Bonus: 0},
		},
	})
	assertion.Empty(bids)
}

func TestDecideConsumesManualSpendOnce(t *testing.T) {
	assertion := assert.New(t)

	manualSpendStorage := new(ManualSpendStorageMock)
	manualSpendStorage.On("GetManualSpend").Return(&model.ManualSpend{Amount: 90.00, BotUuid: "uuid"}).Once()
	manualSpendStorage.On("GetManualSpend").Return(nil)
	manualSpendStorage.On("DeleteManualSpend").Return()

	policy := newBiddingPolicy(new(WinPriceStorageMock), manualSpendStorage)

	state := model.GameState{
		AgentId: "me",
		Round:   5,
		States: map[string]model.AgentState{
			"me": {Gold: 500.00},
		},
		Auctions: map[string]model.Auction{
			"big":       {Die: 20, Num: 2, Bonus: 0}, // EV 21
			"mid":       {Die: 6, Num: 3, Bonus: 0},  // EV 10.5
			"small":     {Die: 4, Num: 1, Bonus: 0},  // EV 2.5
			"tiny":      {Die: 2, Num: 1, Bonus: 0},  // EV 1.5
			"worthless": {Die: 0, Num: 0, Bonus: 0},
		},
	}

	bids := policy.Decide(state)

	// lump sum split over the three highest-EV auctions
	assertion.Len(bids, 3)
	assertion.Equal(30.00, bids["big"])
	assertion.Equal(30.00, bids["mid"])
	assertion.Equal(30.00, bids["small"])
	manualSpendStorage.AssertNumberOfCalls(t, "DeleteManualSpend", 1)

	// the flag is cleared, the next round bids normally
	bids = policy.Decide(state)
	_, ok := bids["worthless"]
	assertion.False(ok)
	assertion.NotEmpty(bids)
	manualSpendStorage.AssertNumberOfCalls(t, "DeleteManualSpend", 1)
}

func TestDecideManualSpendCappedAtGold(t *testing.T) {
	assertion := assert.New(t)

	manualSpendStorage := new(ManualSpendStorageMock)
	manualSpendStorage.On("GetManualSpend").Return(&model.ManualSpend{Amount: 9000.00, BotUuid: "uuid"})
	manualSpendStorage.On("DeleteManualSpend").Return()

	policy := newBiddingPolicy(new(WinPriceStorageMock), manualSpendStorage)

	bids := policy.Decide(model.GameState{
		AgentId: "me",
		Round:   5,
		States: map[string]model.AgentState{
			"me": {Gold: 300.00},
		},
		Auctions: map[string]model.Auction{
			"a": {Die: 20, Num: 2, Bonus: 0},
			"b": {Die: 6, Num: 3, Bonus: 0},
			"c": {Die: 4, Num: 1, Bonus: 0},
		},
	})

	total := 0.00
	for _, bid := range bids {
		total += bid
	}
	assertion.InDelta(300.00, total, 0.03)
	assertion.LessOrEqual(total, 300.00)
}

func TestDecideManualSpendShrinksBelowMinBid(t *testing.T) {
	assertion := assert.New(t)

	manualSpendStorage := new(ManualSpendStorageMock)
	manualSpendStorage.On("GetManualSpend").Return(&model.ManualSpend{Amount: 1.50, BotUuid: "uuid"})
	manualSpendStorage.On("DeleteManualSpend").Return()

	policy := newBiddingPolicy(new(WinPriceStorageMock), manualSpendStorage)

	bids := policy.Decide(model.GameState{
		AgentId: "me",
		Round:   5,
		States: map[string]model.AgentState{
			"me": {Gold: 300.00},
		},
		Auctions: map[string]model.Auction{
			"a": {Die: 20, Num: 2, Bonus: 0},
			"b": {Die: 6, Num: 3, Bonus: 0},
			"c": {Die: 4, Num: 1, Bonus: 0},
		},
	})

	// any multi-way split would fall below the minimum bid, spend it all
	// on the best auction instead
	assertion.Len(bids, 1)
	assertion.Equal(1.50, bids["a"])
}

func TestDecideDegradesToEmptyBidMapOnFailure(t *testing.T) {
	assertion := assert.New(t)

	// a policy with broken wiring must never propagate a panic
	policy := strategy.BiddingPolicy{}

	bids := policy.Decide(model.GameState{
		AgentId: "me",
		Round:   3,
		States: map[string]model.AgentState{
			"me": {Gold: 500.00},
		},
		Auctions: map[string]model.Auction{
			"a": {Die: 6, Num: 1, Bonus: 0},
		},
		PrevAuctions: map[string]model.RoundOutcome{
			"prev": {
				Die:  6,
				Num:  1,
				Bids: []model.OutcomeBid{{AgentId: "rival", Gold: 10.00}},
			},
		},
	})

	assertion.NotNil(bids)
	assertion.Empty(bids)
}
