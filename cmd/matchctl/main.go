// cmd/matchctl/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"matrimony-matcher/internal/boundary"
	"matrimony-matcher/internal/common/config"
	"matrimony-matcher/internal/common/logger"
	"matrimony-matcher/internal/common/observability"
	"matrimony-matcher/internal/matching"
	"matrimony-matcher/internal/models"
	"matrimony-matcher/internal/store"
)

func main() {
	criteriaPath := flag.String("criteria", "", "path to a criteria JSON document")
	profileID := flag.String("profile", "", "seeker profile id (overrides criteria file)")
	includeMathimam := flag.Bool("mathimam", false, "include the mathimam tier")
	serveMetrics := flag.Bool("serve-metrics", false, "keep serving /metrics after the search until interrupted")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()
	log := logger.NewZapAdapter(zlog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	profiles := store.NewFileProfileStore(cfg.Data.ProfilesPath, cfg.Engine.SnapshotTTL, log)
	tables := store.NewTableLoader(cfg.Data.TablesDir, log).LoadSet()
	engine := matching.NewEngine(tables, profiles, log, obs)

	criteria, err := readCriteria(*criteriaPath, *profileID, *includeMathimam)
	if err != nil {
		zlog.Fatal("invalid search input", zap.Error(err))
	}

	matches, err := engine.Search(criteria)
	if err != nil {
		zlog.Fatal("search failed", zap.Error(err))
	}

	out, err := json.MarshalIndent(matches, "", "  ")
	if err != nil {
		zlog.Fatal("encode result", zap.Error(err))
	}
	fmt.Println(string(out))

	if *serveMetrics && cfg.Metrics.Enabled {
		serveUntilInterrupt(cfg.Metrics.Listen, zlog)
	}
}

func readCriteria(path, profileID string, includeMathimam bool) (models.SearchCriteria, error) {
	var raw boundary.RawCriteria
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return models.SearchCriteria{}, fmt.Errorf("read criteria: %w", err)
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return models.SearchCriteria{}, fmt.Errorf("decode criteria: %w", err)
		}
	}
	if profileID != "" {
		raw.ProfileID = profileID
	}
	if includeMathimam {
		raw.IncludeMathimam = true
	}

	criteria := boundary.Normalize(raw)
	if !criteria.ByProfile() && criteria.NakshatraID == 0 {
		return models.SearchCriteria{}, fmt.Errorf("either -profile or a criteria document with nakshatraId/gender is required")
	}
	return criteria, nil
}

func serveUntilInterrupt(addr string, zlog *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		zlog.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Error("metrics server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	srv.Close()
}
