package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/algoarena/backend/compare"
	"github.com/algoarena/backend/conf"
	httpserver "github.com/algoarena/backend/http"
	"github.com/algoarena/backend/judge"
	"github.com/algoarena/backend/sandbox"
	"github.com/algoarena/backend/subm"
	"github.com/algoarena/backend/task"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		slog.Error("JWT_KEY is not set")
		os.Exit(1)
	}

	judgeConf, err := conf.ReadJudgeConf("config.toml")
	if err != nil {
		slog.Error("failed to read judge conf", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, conf.GetPgConnStrFromEnv())
	if err != nil {
		slog.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	sandboxCl, err := sandbox.NewClient(ctx,
		conf.GetSandboxUrlFromEnv(), judgeConf.SandboxTimeout())
	if err != nil {
		slog.Error("failed to reach execution engine", "error", err)
		os.Exit(1)
	}

	cmpPool := compare.NewPool(judgeConf.CompareWorkers)
	defer cmpPool.Close()

	judger := judge.NewJudger(sandboxCl, cmpPool)
	taskSrvc := task.NewTaskSrvc(task.NewPgRepo(pool))
	submSrvc := subm.NewSubmSrvc(judger, taskSrvc, subm.NewPgRepo(pool))

	server := httpserver.NewHttpServer(submSrvc, taskSrvc, sandboxCl, []byte(jwtKey))

	address := ":8080"
	log.Printf("Starting server on %s", address)
	err = server.Start(address)
	log.Printf("Server stopped with error: %v", err)
}
