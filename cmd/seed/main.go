package main

import (
	"context"
	"flag"
	"os"

	"go-payledger/internal/database"
	"go-payledger/internal/seed"
	"go-payledger/internal/shared/apperror"
	"go-payledger/internal/shared/connection"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	action := flag.String("action", "seed", "seed action: reset (rebuild schema) or seed (generate fake data)")
	employees := flag.Int("employees", 200, "number of fake employees to generate")
	flag.Parse()

	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}

	ctx := context.Background()

	switch *action {
	case "reset":
		if err := database.Reset(ctx, gormDB); err != nil {
			logger.Fatal("reset schema failed", zap.Error(err))
		}
		logger.Info("schema reset complete")
	case "seed":
		if err := seed.New(gormDB, logger).Run(ctx, *employees); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
		logger.Info("seed complete", zap.Int("employees", *employees))
	default:
		logger.Fatal("unknown action", zap.String("action", *action))
	}
}
