package model

// WinPrice is one learned clearing-price estimate, persisted per auction
// shape so the learner survives restarts.
type WinPrice struct {
	Die       int     `json:"die"`
	Num       int     `json:"num"`
	Bonus     int     `json:"bonus"`
	Price     float64 `json:"price"`
	UpdatedAt int64   `json:"updatedAt"`
}

func (w WinPrice) Shape() AuctionShape {
	return AuctionShape{
		Die:   w.Die,
		Num:   w.Num,
		Bonus: w.Bonus,
	}
}
