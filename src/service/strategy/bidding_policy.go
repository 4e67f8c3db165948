package strategy

import (
	"log"
	"math"
	"sort"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
)

type ManualSpendStorageInterface interface {
	GetManualSpend() *model.ManualSpend
	DeleteManualSpend()
}

// BiddingPolicy is the per-round orchestrator: learn from the previous
// round, plan the budget, price the live auctions and allocate. A failure
// anywhere degrades to an empty bid map, because bidding nothing is always
// safe while a propagated error could forfeit the round entirely.
type BiddingPolicy struct {
	MarketLearner   *MarketLearner
	BudgetPlanner   *BudgetPlanner
	Allocator       *Allocator
	Valuation       *Valuation
	PriceRepository ManualSpendStorageInterface
	Formatter       *utils.Formatter
	MinBid          float64
}

func (p *BiddingPolicy) Decide(state model.GameState) (bids map[string]float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Decide [round %d] degraded to empty bid map: %v", state.Round, r)
			bids = make(map[string]float64)
		}
	}()

	// Round boundary: round k bids only on information through round k-1.
	p.MarketLearner.LearnFromRound(state.PrevAuctions)

	manualSpend := p.consumeManualSpend()

	myState, ok := state.States[state.AgentId]
	if !ok || myState.Gold <= 0 || len(state.Auctions) == 0 {
		return make(map[string]float64)
	}

	if manualSpend != nil {
		return p.spendOnBestAuctions(state.Auctions, myState.Gold, manualSpend.Amount)
	}

	spendable := p.BudgetPlanner.Spendable(myState.Gold, state.BankState)
	competitiveness := p.estimateCompetitiveness(len(state.States), len(state.Auctions))

	return p.Allocator.Allocate(state.Auctions, competitiveness, spendable)
}

// consumeManualSpend reads and clears the single-slot override so it is
// applied exactly once.
func (p *BiddingPolicy) consumeManualSpend() *model.ManualSpend {
	manualSpend := p.PriceRepository.GetManualSpend()
	if manualSpend == nil {
		return nil
	}

	p.PriceRepository.DeleteManualSpend()

	if !manualSpend.IsValid() {
		return nil
	}

	log.Printf("Manual spend of %.2f gold is requested", manualSpend.Amount)

	return manualSpend
}

// spendOnBestAuctions dumps the requested lump sum on the highest-EV
// auctions, at most three of them, fewer when the per-auction share would
// drop below the minimum bid.
func (p *BiddingPolicy) spendOnBestAuctions(auctions map[string]model.Auction, gold float64, amount float64) map[string]float64 {
	type evPlan struct {
		AuctionId string
		Ev        float64
	}

	plan := make([]evPlan, 0, len(auctions))
	for auctionId, auction := range auctions {
		if !p.Valuation.IsWorthBidding(auction.Shape()) {
			continue
		}

		plan = append(plan, evPlan{
			AuctionId: auctionId,
			Ev:        p.Valuation.ExpectedValue(auction.Shape()),
		})
	}

	bids := make(map[string]float64)

	if len(plan) == 0 {
		return bids
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Ev > plan[j].Ev
	})

	if len(plan) > 3 {
		plan = plan[0:3]
	}

	total := math.Min(amount, gold)
	share := total / float64(len(plan))
	for len(plan) > 1 && share < p.MinBid {
		plan = plan[0 : len(plan)-1]
		share = total / float64(len(plan))
	}

	remaining := total
	for _, item := range plan {
		bid := p.Formatter.FormatGold(math.Min(share, remaining))
		if bid < p.MinBid {
			continue
		}

		bids[item.AuctionId] = bid
		remaining -= bid
	}

	return bids
}

// estimateCompetitiveness is a crude market heuristic: more agents per
// auction means a tougher market.
func (p *BiddingPolicy) estimateCompetitiveness(agentCount int, auctionCount int) float64 {
	agents := math.Max(1.00, float64(agentCount))

	return math.Max(1.00, agents/math.Max(1.00, float64(auctionCount)))
}
