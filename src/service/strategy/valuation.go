package strategy

import (
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

// Valuation converts an auction shape into its expected reward.
type Valuation struct {
	IgnoreLowEv float64
}

// ExpectedValue of X dY + B is X * (Y+1)/2 + B.
func (v *Valuation) ExpectedValue(shape model.AuctionShape) float64 {
	return float64(shape.Num)*(float64(shape.Die)+1.00)/2.00 + float64(shape.Bonus)
}

// IsWorthBidding filters out auctions whose reward is too small to chase.
// Keeping them would also blow up the efficiency ranking on near-zero EV.
func (v *Valuation) IsWorthBidding(shape model.AuctionShape) bool {
	return v.ExpectedValue(shape) >= v.IgnoreLowEv
}
