package strategy

import (
	"log"
	"sync"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
)

type WinPriceStorageInterface interface {
	GetWinPrices() []model.WinPrice
	SaveWinPrice(winPrice model.WinPrice) error
}

// MarketLearner keeps an EWMA of the observed winning bid per auction shape.
// The in-memory table is authoritative for the life of the process; every
// update is written through to the repository so a restart resumes warm.
type MarketLearner struct {
	PriceRepository WinPriceStorageInterface
	TimeService     utils.TimeServiceInterface
	Decay           float64

	mutex     sync.RWMutex
	winPrices map[model.AuctionShape]float64
}

// Warmup loads persisted win prices. Call once at bootstrap, before the
// first round.
func (m *MarketLearner) Warmup() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.initTable()

	for _, winPrice := range m.PriceRepository.GetWinPrices() {
		m.winPrices[winPrice.Shape()] = winPrice.Price
	}

	log.Printf("MarketLearner is warmed up with %d shapes", len(m.winPrices))
}

// LearnFromRound ingests the previous round's outcomes. A malformed outcome
// is skipped without aborting the batch.
func (m *MarketLearner) LearnFromRound(outcomes map[string]model.RoundOutcome) {
	if len(outcomes) == 0 {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.initTable()

	for auctionId, outcome := range outcomes {
		winningBid, err := outcome.WinningBid()
		if err != nil {
			log.Printf("LearnFromRound [%s]: %s", auctionId, err.Error())
			continue
		}

		shape := outcome.Shape()
		estimate := m.ema(m.winPrices[shape], winningBid)
		m.winPrices[shape] = estimate

		_ = m.PriceRepository.SaveWinPrice(model.WinPrice{
			Die:       shape.Die,
			Num:       shape.Num,
			Bonus:     shape.Bonus,
			Price:     estimate,
			UpdatedAt: m.TimeService.GetNowUnix(),
		})
	}
}

// GetWinPrice returns the current estimate for a shape. The second value is
// false when the shape has no history.
func (m *MarketLearner) GetWinPrice(shape model.AuctionShape) (float64, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	winPrice, ok := m.winPrices[shape]

	return winPrice, ok
}

func (m *MarketLearner) ShapeCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return len(m.winPrices)
}

// ema blends the new observation into the old estimate. The first positive
// observation defines the baseline without decay blending.
func (m *MarketLearner) ema(old float64, observed float64) float64 {
	if old <= 0 {
		return observed
	}

	return m.Decay*old + (1.00-m.Decay)*observed
}

func (m *MarketLearner) initTable() {
	if m.winPrices == nil {
		m.winPrices = make(map[model.AuctionShape]float64)
	}
}
