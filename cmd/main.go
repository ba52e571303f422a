package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saeidalz13/battleship-board/api"
	"github.com/saeidalz13/battleship-board/db"
	"github.com/saeidalz13/battleship-board/db/sqlc"
	"github.com/saeidalz13/battleship-board/internal/config"
	"github.com/saeidalz13/battleship-board/pkg/logger"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
	mc "github.com/saeidalz13/battleship-board/models/connection"
)

const shutdownTimeout = time.Second * 10

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var analytics *sqlc.AnalyticsManager
	if cfg.AnalyticsEnabled() {
		psqlDb := db.MustConnectToDb(cfg.DatabaseUrl, db.DefaultMigrationDir)
		defer psqlDb.Close()

		ipnet, err := api.ServerIpNet()
		if err != nil {
			logger.Log.WithError(err).Warn("falling back to loopback for analytics")
			ipnet = api.LoopbackIpNet()
		}
		analytics = sqlc.NewDbManager(sqlc.New(psqlDb), ipnet).Analytics
	} else {
		logger.Log.Info("DATABASE_URL not set; analytics disabled")
	}

	bsm := mc.NewBattleshipSessionManager(mc.WithCleanupInterval(cfg.SessionCleanupInterval))
	bgm := mb.NewBattleshipGameManager()
	go bsm.CleanupPeriodically(ctx)

	mux := http.NewServeMux()
	mux.Handle(api.RoutePattern, api.NewRequestProcessor(bsm, bgm, analytics))

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Error("graceful shutdown failed")
		}
	}()

	logger.Log.WithField("stage", cfg.Stage).Infof("listening to port %d", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
