package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/khoborhub/khobor/internal/seed"
	"github.com/khoborhub/khobor/internal/storage/pg"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	fixturePath := flag.String("file", "db/seed/fixture.yaml", "path to the seed fixture")
	flag.Parse()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	fixture, err := seed.LoadFromFile(*fixturePath)
	if err != nil {
		slog.Error("Failed to load fixture", "path", *fixturePath, "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: dbURL})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		pg.NewUserStore(pool),
		pg.NewCategoryStore(pool),
		pg.NewTagStore(pool),
		pg.NewArticleStore(pool),
	)
	if err := seeder.Apply(ctx, fixture); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}
