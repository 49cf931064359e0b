package main

import (
	"flag"
	"holdem-server/internal/config"
	"holdem-server/internal/mux"
	"holdem-server/pkg/poker/texasholdem"
	"holdem-server/pkg/room"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 30

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	opts, err := gameOptions(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("invalid game configuration")
	}

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), opts, cfg.Seed)
	defer pitBoss.EndShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
	})

	m := mux.NewMux(Version, pitBoss, mux.Config{
		Seed:            cfg.Seed,
		OddsSimulations: cfg.Equity.DisplaySimulations,
	}, logrus.StandardLogger())

	listenAddr := cfg.Addr
	if *addr != "" {
		listenAddr = *addr
	}

	srv := &http.Server{
		Addr:         listenAddr,
		Handler:      loggingHandler(c.Handler(m)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func gameOptions(cfg config.Config) (texasholdem.Options, error) {
	policy, err := texasholdem.DealerPolicyFromString(cfg.Game.DealerPolicy)
	if err != nil {
		return texasholdem.Options{}, err
	}

	return texasholdem.Options{
		SmallBlind:       cfg.Game.SmallBlind,
		BigBlind:         cfg.Game.BigBlind,
		StartingStack:    cfg.Game.StartingStack,
		DealerPolicy:     policy,
		MaxBotIterations: cfg.Game.MaxBotIterations,
		BotSimulations:   cfg.Equity.BotSimulations,
	}, nil
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
