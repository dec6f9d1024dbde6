package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "scripts/migrations", "directory holding the *.sql migration files")
	flag.Parse()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	logger := zapLogger.Sugar()

	if err := godotenv.Load(); err != nil {
		logger.Infow("no .env file loaded, using environment", "error", err)
	}

	dbURL := os.Getenv("POSTGRES_DB_URL")
	if dbURL == "" {
		logger.Fatal("POSTGRES_DB_URL environment variable not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Fatalw("unable to connect to database", "error", err)
	}
	defer pool.Close()

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		logger.Fatalw("unable to list migrations", "dir", *dir, "error", err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		logger.Fatalw("no migrations found", "dir", *dir)
	}

	for _, file := range files {
		migrationSQL, err := os.ReadFile(file)
		if err != nil {
			logger.Fatalw("unable to read migration file", "file", file, "error", err)
		}

		if _, err := pool.Exec(ctx, string(migrationSQL)); err != nil {
			logger.Fatalw("failed to execute migration", "file", file, "error", err)
		}
		logger.Infow("migration applied", "file", file)
	}

	fmt.Printf("%d migration(s) successfully executed!\n", len(files))
}
