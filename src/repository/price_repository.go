package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gitlab.com/open-soft/go-auction-bot/src/model"
)

// PriceRepository persists the learned win prices (mysql row per auction
// shape, redis mirror for hot reads) and parks the single-slot ManualSpend
// override until the policy consumes it.
type PriceRepository struct {
	DB         *sql.DB
	RDB        *redis.Client
	Ctx        *context.Context
	CurrentBot *model.Bot
}

func (p *PriceRepository) GetWinPrices() []model.WinPrice {
	list := make([]model.WinPrice, 0)

	res, err := p.DB.Query(`
		SELECT
			wp.die as Die,
			wp.num as Num,
			wp.bonus as Bonus,
			wp.price as Price,
			wp.updated_at as UpdatedAt
		FROM win_prices wp
		WHERE wp.bot_id = ?`, p.CurrentBot.Id,
	)

	if err != nil {
		log.Printf("GetWinPrices: %s", err.Error())
		return list
	}

	defer res.Close()

	for res.Next() {
		var winPrice model.WinPrice
		err := res.Scan(
			&winPrice.Die,
			&winPrice.Num,
			&winPrice.Bonus,
			&winPrice.Price,
			&winPrice.UpdatedAt,
		)

		if err != nil {
			log.Printf("GetWinPrices: %s", err.Error())
			continue
		}

		list = append(list, winPrice)
	}

	return list
}

func (p *PriceRepository) SaveWinPrice(winPrice model.WinPrice) error {
	_, err := p.DB.Exec(`
		INSERT INTO win_prices SET
			bot_id = ?,
			die = ?,
			num = ?,
			bonus = ?,
			price = ?,
			updated_at = ?
		ON DUPLICATE KEY UPDATE price = ?, updated_at = ?`,
		p.CurrentBot.Id,
		winPrice.Die,
		winPrice.Num,
		winPrice.Bonus,
		winPrice.Price,
		winPrice.UpdatedAt,
		winPrice.Price,
		winPrice.UpdatedAt,
	)

	if err != nil {
		log.Printf("SaveWinPrice: %s", err.Error())
		return err
	}

	encoded, err := json.Marshal(winPrice)
	if err == nil {
		p.RDB.Set(*p.Ctx, p.getWinPriceCacheKey(winPrice.Shape()), string(encoded), time.Hour)
	}

	return nil
}

func (p *PriceRepository) GetWinPriceCached(shape model.AuctionShape) *model.WinPrice {
	res := p.RDB.Get(*p.Ctx, p.getWinPriceCacheKey(shape)).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.WinPrice
	err := json.Unmarshal([]byte(res), &dto)
	if err != nil {
		return nil
	}

	return &dto
}

func (p *PriceRepository) GetManualSpend() *model.ManualSpend {
	res := p.RDB.Get(*p.Ctx, p.getManualSpendCacheKey()).Val()
	if len(res) == 0 {
		return nil
	}

	var dto model.ManualSpend
	err := json.Unmarshal([]byte(res), &dto)
	if err != nil {
		return nil
	}

	return &dto
}

func (p *PriceRepository) SetManualSpend(spend model.ManualSpend) {
	encoded, _ := json.Marshal(spend)
	p.RDB.Set(*p.Ctx, p.getManualSpendCacheKey(), string(encoded), time.Hour*24)
}

func (p *PriceRepository) DeleteManualSpend() {
	p.RDB.Del(*p.Ctx, p.getManualSpendCacheKey())
}

func (p *PriceRepository) getWinPriceCacheKey(shape model.AuctionShape) string {
	return fmt.Sprintf("win-price-%s-bot-%d", shape.Key(), p.CurrentBot.Id)
}

func (p *PriceRepository) getManualSpendCacheKey() string {
	return fmt.Sprintf("manual-spend-bot-%d", p.CurrentBot.Id)
}
