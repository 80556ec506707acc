package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interim-engine/internal/browser"
	"interim-engine/internal/config"
	"interim-engine/internal/events"
	"interim-engine/internal/httpapi"
	"interim-engine/internal/scrape"
	"interim-engine/internal/scrape/util"
	"interim-engine/internal/search"
	"interim-engine/internal/store"
)

func main() {
	cfgPath := os.Getenv("INTERIM_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}

	st, err := store.Open()
	if err != nil {
		log.Fatalf("store open failed: %v", err)
	}
	defer st.Close()

	ctx := context.Background()
	if err := st.Insert(ctx, store.SeedOffers()); err != nil {
		log.Fatalf("corpus seed failed: %v", err)
	}
	rng := rand.New(rand.NewSource(cfg.Corpus.Seed))
	if err := st.Insert(ctx, store.Generate(cfg.Corpus.GeneratedCount, rng)); err != nil {
		log.Fatalf("corpus generation failed: %v", err)
	}
	if n, err := st.Count(ctx); err == nil {
		log.Printf("[engine] corpus ready with %d offers", n)
	}

	hub := events.NewHub()

	var auto browser.Automation = browser.Noop{}
	if cfg.Source.Browser == "chromedp" {
		auto = browser.NewChrome()
	}
	fetcher := scrape.NewFetcher(time.Duration(cfg.Source.TimeoutSeconds) * time.Second)
	pacer := util.NewPacer(cfg.Source.RequestsPerSecond, 2)
	collector := scrape.NewCollector(fetcher, pacer, auto, hub, cfg.Source.BaseURL, cfg.Source.MaxPages)

	svc := search.New(st, collector, hub, cfg.Source.Mode == "live")

	mux := httpapi.NewMux(httpapi.Deps{
		Search: svc,
		Store:  st,
		Hub:    hub,
	})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("[engine] listening on %s (source=%s)", srv.Addr, cfg.Source.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-sigCtx.Done()
	log.Printf("[engine] shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[engine] shutdown: %v", err)
	}
}
