package validator

import (
	"errors"
	"fmt"

	"gitlab.com/open-soft/go-auction-bot/src/model"
)

type StrategyConfigValidator struct {
}

func (v *StrategyConfigValidator) Validate(config model.StrategyConfig) error {
	if config.LearnDecay <= 0 || config.LearnDecay >= 1 {
		return fmt.Errorf("learn decay %f must be in (0, 1)", config.LearnDecay)
	}

	if config.MaxSpendFraction <= 0 || config.MaxSpendFraction > 1 {
		return fmt.Errorf("max spend fraction %f must be in (0, 1]", config.MaxSpendFraction)
	}

	if config.WinMargin < 1 {
		return fmt.Errorf("win margin %f must be at least 1", config.WinMargin)
	}

	if config.BasePricePerPoint <= 0 {
		return errors.New("base price per point must be positive")
	}

	if config.MinBid < 0 {
		return errors.New("min bid can not be negative")
	}

	if config.TieJitterMax < 0 {
		return errors.New("tie jitter ceiling can not be negative")
	}

	if config.IgnoreLowEv < 0 {
		return errors.New("EV ignore floor can not be negative")
	}

	return nil
}
