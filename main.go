package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	src, err := words.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up word source")
	}

	st, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open round store")
	}
	defer st.Close()

	srv := httpserver.New(st, src, cfg)
	log.Info().Str("port", cfg.Port).Str("words", cfg.WordSource).Msg("starting hangman server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// openStore returns the SQLite store when STORE_DSN is set, memory otherwise.
func openStore(cfg config.Config) (store.Store, error) {
	if cfg.StoreDSN == "" {
		return store.NewMemoryStore(), nil
	}
	log.Info().Str("dsn", cfg.StoreDSN).Msg("using sqlite round store")
	return store.OpenSQLite(cfg.StoreDSN)
}
