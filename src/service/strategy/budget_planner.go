package strategy

import (
	"math"

	"gitlab.com/open-soft/go-auction-bot/src/model"
)

// BudgetPlanner decides how much gold the current round may spend. A spend
// fraction below 1 leaves a float-safety residual, and an attractive bank
// interest rate holds back an extra reserve so the balance compounds.
type BudgetPlanner struct {
	MaxSpendFraction float64
}

func (b *BudgetPlanner) Spendable(gold float64, bank *model.BankState) float64 {
	budget := gold * b.MaxSpendFraction
	reserve := b.ReserveForInterest(gold, bank)

	return math.Max(0.00, budget-reserve)
}

// ReserveForInterest grows with the next-round rate: r=10% reserves ~20% of
// gold, r=20% reserves ~40%, clamped to half of current holdings and to the
// interest-bearing limit.
func (b *BudgetPlanner) ReserveForInterest(gold float64, bank *model.BankState) float64 {
	rate := bank.NextInterestRate()
	if rate <= 0 {
		return 0.00
	}

	limit := bank.NextInterestLimit()

	reserveFraction := math.Min(0.50, 2.00*rate)
	targetReserve := math.Min(limit, gold) * reserveFraction

	return math.Max(0.00, math.Min(targetReserve, gold*0.50))
}
