package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"stegod/internal/codec"
	"stegod/internal/common/fsutil"
	"stegod/internal/config"
	"stegod/internal/httpapi"
	"stegod/internal/manager"
	"stegod/internal/vocab"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	// Optional .env for local development; ignored when absent.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("STEGOD_ADDR", ":8002"), "HTTP listen address, e.g. :8002")
	apiKey := flag.String("api-key", os.Getenv("STEGOD_API_KEY"), "Shared secret required in the X-API-Key header (empty disables auth)")
	strategy := flag.String("reload-strategy", envOr("STEGOD_RELOAD_STRATEGY", "reset"), "Hygiene policy: none|reset|reload|periodic")
	everyN := flag.Int("reload-every-n", envIntOr("STEGOD_RELOAD_EVERY_N", 10), "Reload interval for the periodic strategy")
	configPath := flag.String("config", os.Getenv("STEGOD_CONFIG"), "Optional config file (yaml/json/toml)")
	vocabFile := flag.String("vocab-file", "", "Optional wordlist file for the reference model vocabulary")
	flag.Parse()

	// Config file fills anything the flags and environment left unset.
	var fileCfg config.Config
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("load config")
		}
		fileCfg = c
	}
	if *addr == ":8002" && fileCfg.Addr != "" {
		*addr = fileCfg.Addr
	}
	if *apiKey == "" {
		*apiKey = fileCfg.APIKey
	}
	if *strategy == "reset" && fileCfg.ReloadStrategy != "" {
		*strategy = fileCfg.ReloadStrategy
	}
	if *everyN == 10 && fileCfg.ReloadEveryN > 0 {
		*everyN = fileCfg.ReloadEveryN
	}
	if *vocabFile == "" {
		*vocabFile = fileCfg.VocabFile
	}

	strat, ok := manager.ParseStrategy(*strategy)
	if !ok {
		logger.Fatal().Str("strategy", *strategy).Msg("invalid reload strategy (want none|reset|reload|periodic)")
	}

	words := vocab.Default()
	if *vocabFile != "" {
		if p, err := fsutil.ExpandHome(*vocabFile); err != nil || !fsutil.PathExists(p) {
			logger.Fatal().Str("path", *vocabFile).Msg("wordlist file not found")
		}
		w, err := vocab.LoadFile(*vocabFile)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *vocabFile).Msg("load wordlist")
		}
		words = w
	}

	ref := codec.NewReference(words)
	mgr := manager.NewWithConfig(manager.ManagerConfig{
		Codec:          ref,
		Provider:       ref,
		Strategy:       strat,
		ReloadEveryN:   *everyN,
		DefaultContext: fileCfg.DefaultContext,
	})

	httpapi.SetLogger(logger)
	httpapi.SetAPIKey(*apiKey)
	if fileCfg.MaxBodyBytes > 0 {
		httpapi.SetMaxBodyBytes(fileCfg.MaxBodyBytes)
	}
	if fileCfg.CORSEnabled {
		httpapi.SetCORSOptions(true, fileCfg.CORSOrigins, fileCfg.CORSMethods, fileCfg.CORSHeaders)
	}

	mux := httpapi.NewMux(mgr)
	srv := &http.Server{Addr: *addr, Handler: mux}

	authState := "disabled"
	if *apiKey != "" {
		authState = "enabled"
	}
	logger.Info().
		Str("addr", *addr).
		Str("device", mgr.DefaultSettings().Device).
		Str("reload_strategy", string(strat)).
		Str("auth", authState).
		Msg("stegod listening")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
