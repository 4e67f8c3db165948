package model

// BankState is the global compounding-bonus schedule published by the game
// server. Each slice is forward-looking, index 0 describes the next round.
type BankState struct {
	GoldIncomePerRound   []float64 `json:"gold_income_per_round"`
	BankInterestPerRound []float64 `json:"bank_interest_per_round"`
	BankLimitPerRound    []float64 `json:"bank_limit_per_round"`
}

func (b *BankState) NextInterestRate() float64 {
	if b == nil || len(b.BankInterestPerRound) == 0 {
		return 0.00
	}

	return b.BankInterestPerRound[0]
}

func (b *BankState) NextInterestLimit() float64 {
	if b == nil || len(b.BankLimitPerRound) == 0 {
		return 0.00
	}

	return b.BankLimitPerRound[0]
}
