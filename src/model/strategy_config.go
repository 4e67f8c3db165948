package model

// StrategyConfig collects the bidding tuning knobs. Set once at bootstrap,
// validated by validator.StrategyConfigValidator, then distributed to the
// strategy services.
type StrategyConfig struct {
	BasePricePerPoint float64 `json:"basePricePerPoint"`
	WinMargin         float64 `json:"winMargin"`
	MaxSpendFraction  float64 `json:"maxSpendFraction"`
	MinBid            float64 `json:"minBid"`
	TieJitterMax      float64 `json:"tieJitterMax"`
	LearnDecay        float64 `json:"learnDecay"`
	IgnoreLowEv       float64 `json:"ignoreLowEv"`
	CapBidAtGold      bool    `json:"capBidAtGold"`
}
