package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/sentinelhq/sentinel/internal/assist"
	"github.com/sentinelhq/sentinel/internal/config"
	"github.com/sentinelhq/sentinel/internal/httpapi"
	"github.com/sentinelhq/sentinel/internal/service"
	"github.com/sentinelhq/sentinel/internal/store"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load("")
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}

	ledger := store.NewMemoryStore()
	svc := service.NewFinanceService(ledger, cfg, assist.NewStubScanner(), assist.NewRulesAdvisor())
	api := httpapi.NewServer(svc)

	// NOTE: Frontend runs on port 1234, not 3000
	handler := api.Handler([]string{
		"http://localhost:1234",
		"http://127.0.0.1:1234",
	})

	port := cfg.Port()
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	go func() {
		logger.Info().Str("port", port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}
