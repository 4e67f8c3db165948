package strategy

import (
	"math"
	"math/rand"
	"sort"

	"gitlab.com/open-soft/go-auction-bot/src/model"
	"gitlab.com/open-soft/go-auction-bot/src/utils"
)

type WinPriceReaderInterface interface {
	GetWinPrice(shape model.AuctionShape) (float64, bool)
}

// Allocator prices every live auction and greedily funds the best expected
// points per gold until the spendable budget runs out. Greedy-by-efficiency
// approximates the knapsack in O(A log A), which is plenty for per-round
// auction counts.
type Allocator struct {
	Valuation     *Valuation
	MarketLearner WinPriceReaderInterface
	Formatter     *utils.Formatter

	BasePricePerPoint float64
	WinMargin         float64
	MinBid            float64
	TieJitterMax      float64
	CapBidAtGold      bool

	Rand *rand.Rand
}

// SuggestBid proposes a price for a single auction: slightly above the
// learned clearing price when history exists, otherwise a cold-start price
// proportional to EV and the market competitiveness.
func (a *Allocator) SuggestBid(auction model.Auction, competitiveness float64, available float64) float64 {
	shape := auction.Shape()

	if !a.Valuation.IsWorthBidding(shape) {
		return 0.00
	}

	var fair float64

	learned, ok := a.MarketLearner.GetWinPrice(shape)
	if ok && learned > 0 {
		fair = learned * a.WinMargin
	} else {
		ev := a.Valuation.ExpectedValue(shape)
		fair = a.BasePricePerPoint * ev * (0.75 + 0.25*competitiveness)
	}

	if a.CapBidAtGold {
		fair = math.Min(fair, math.Max(0.00, available))
	}

	// Jitter breaks ties with agents running a similar heuristic.
	jitter := a.Rand.Float64() * a.TieJitterMax
	bid := math.Max(a.MinBid, fair+jitter)

	return math.Max(0.00, bid)
}

func (a *Allocator) Allocate(auctions map[string]model.Auction, competitiveness float64, spendable float64) map[string]float64 {
	plan := make([]model.BidPlan, 0, len(auctions))

	for auctionId, auction := range auctions {
		suggested := a.SuggestBid(auction, competitiveness, spendable)
		ev := a.Valuation.ExpectedValue(auction.Shape())

		plan = append(plan, model.BidPlan{
			Efficiency: ev / math.Max(1.00, suggested),
			AuctionId:  auctionId,
			Bid:        suggested,
		})
	}

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Efficiency > plan[j].Efficiency
	})

	bids := make(map[string]float64)
	remaining := spendable

	for _, item := range plan {
		if item.Bid <= 0 || remaining <= 0 {
			continue
		}

		bid := a.Formatter.FormatGold(math.Min(item.Bid, remaining))
		if bid < a.MinBid {
			continue
		}

		bids[item.AuctionId] = bid
		remaining -= bid
	}

	return bids
}
