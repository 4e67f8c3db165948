package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AuctionShape identifies an auction type: X dY + B. Auctions with the same
// shape are statistically identical, so learned prices are keyed by it.
type AuctionShape struct {
	Die   int `json:"die"`
	Num   int `json:"num"`
	Bonus int `json:"bonus"`
}

func (s AuctionShape) Key() string {
	return fmt.Sprintf("%d-%d-%d", s.Die, s.Num, s.Bonus)
}

type Auction struct {
	Die   int `json:"die"`
	Num   int `json:"num"`
	Bonus int `json:"bonus"`
}

func (a Auction) Shape() AuctionShape {
	return AuctionShape{
		Die:   a.Die,
		Num:   a.Num,
		Bonus: a.Bonus,
	}
}

type OutcomeBid struct {
	AgentId string  `json:"a_id"`
	Gold    float64 `json:"gold"`
}

// The game server reports bids as [agent_id, amount] pairs, older servers
// as objects. Accept both.
func (b *OutcomeBid) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("bid pair has %d elements", len(pair))
		}

		if err := json.Unmarshal(pair[0], &b.AgentId); err != nil {
			return err
		}

		return json.Unmarshal(pair[1], &b.Gold)
	}

	type outcomeBidObject OutcomeBid
	var object outcomeBidObject
	if err := json.Unmarshal(data, &object); err != nil {
		return err
	}

	*b = OutcomeBid(object)

	return nil
}

// RoundOutcome is the finalized result of one auction from the previous
// round. Bids are ordered with the winning bid first.
type RoundOutcome struct {
	Die    int          `json:"die"`
	Num    int          `json:"num"`
	Bonus  int          `json:"bonus"`
	Reward int          `json:"reward"`
	Bids   []OutcomeBid `json:"bids"`
}

func (o RoundOutcome) Shape() AuctionShape {
	return AuctionShape{
		Die:   o.Die,
		Num:   o.Num,
		Bonus: o.Bonus,
	}
}

func (o RoundOutcome) WinningBid() (float64, error) {
	if len(o.Bids) == 0 {
		return 0.00, errors.New("outcome has no bids")
	}

	winningBid := o.Bids[0].Gold

	if winningBid < 0 {
		return 0.00, fmt.Errorf("winning bid is negative: %f", winningBid)
	}

	return winningBid, nil
}

type AgentState struct {
	Gold   float64 `json:"gold"`
	Points int     `json:"points"`
}

// GameState is one round snapshot delivered by the auction game server.
// PrevAuctions holds the previous round's outcomes and is empty on round 1.
type GameState struct {
	AgentId      string                  `json:"agent_id"`
	Round        int                     `json:"round"`
	States       map[string]AgentState   `json:"states"`
	Auctions     map[string]Auction      `json:"auctions"`
	PrevAuctions map[string]RoundOutcome `json:"prev_auctions"`
	BankState    *BankState              `json:"bank_state"`
}

// BidPlan is one allocator candidate: expected points per gold for an
// auction, with the bid the allocator would place on it.
type BidPlan struct {
	Efficiency float64
	AuctionId  string
	Bid        float64
}
