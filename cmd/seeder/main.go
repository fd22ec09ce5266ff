package main

import (
	"context"
	"database/sql"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"contoso_suites/internal/adapters/observability"
	redisad "contoso_suites/internal/adapters/redis"
	"contoso_suites/internal/app"
	"contoso_suites/internal/domain"
	"contoso_suites/internal/shared"
	mysqlrepo "contoso_suites/internal/storage/mysql"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.SeedWorkers).
		Int("rps", cfg.SeedRPS).
		Msg("seeder starting")

	sf, err := app.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("seed file unreadable")
	}

	if err := mysqlrepo.Migrate(cfg.MySQLDSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}
	seed := app.NewSeedService(repo, cache, cfg.SeedRPS)
	sem := semaphore.NewWeighted(int64(cfg.SeedWorkers))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for _, rec := range sf.Hotels {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Error().Err(err).Msg("seeding interrupted")
			break
		}

		wg.Add(1)
		go func(rec app.HotelRecord) {
			defer wg.Done()
			defer sem.Release(1)

			if err := seed.SeedHotel(ctx, rec); err != nil {
				failed.Add(1)
				log.Warn().Int("hotel_id", rec.ID).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int("hotel_id", rec.ID).Int("bookings", len(rec.Bookings)).Msg("seed ok")
		}(rec)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int32("failed", n).Int("total", len(sf.Hotels)).Msg("seeding completed with failures")
	}
	log.Info().Int("hotels", len(sf.Hotels)).Msg("seeding completed")
}
