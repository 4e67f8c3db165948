package model

// ManualSpend is an out-of-band override: dump the given amount of gold on
// the highest-EV auctions at the start of the next round. Parked in redis by
// the controller and consumed exactly once by the policy.
type ManualSpend struct {
	Amount  float64 `json:"amount"`
	BotUuid string  `json:"botUuid"`
}

func (m *ManualSpend) IsValid() bool {
	return m.Amount > 0
}
