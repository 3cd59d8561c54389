package commands

import (
	"github.com/sirupsen/logrus"

	"github.com/flightbot/bookflight/internal/config"
	"github.com/flightbot/bookflight/internal/skypicker"
)

func buildClient(cfg *config.Config, log *logrus.Logger) *skypicker.Client {
	return skypicker.NewClient(cfg.SearchURL, cfg.BookingURL, cfg.Timeout(), log)
}
