package main

import (
	"holdem-server/internal/config"
	"holdem-server/pkg/poker/texasholdem"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_gameOptions(t *testing.T) {
	a := assert.New(t)

	cfg := config.DefaultConfig()
	opts, err := gameOptions(cfg)
	a.NoError(err)
	a.Equal(texasholdem.DefaultOptions(), opts)

	cfg.Game.DealerPolicy = "rotate"
	cfg.Equity.BotSimulations = 100
	opts, err = gameOptions(cfg)
	a.NoError(err)
	a.Equal(texasholdem.Rotate, opts.DealerPolicy)
	a.Equal(100, opts.BotSimulations)

	cfg.Game.DealerPolicy = "button"
	_, err = gameOptions(cfg)
	a.Equal(texasholdem.ErrUnknownDealerRule, err)
}
