package main

import (
	"context"
	"log/slog"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/manish-g0u74m/ServerlessTodo-app/internal/env"
	"github.com/manish-g0u74m/ServerlessTodo-app/internal/todo"
)

func main() {
	env.Init()

	ctx := context.Background()

	cfg := config{
		addr:  env.GetString("API_PORT", ":8000"),
		table: env.GetString("TODOS_TABLE", "Todos"),
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	var repo todo.TodoRepository
	if env.GetBool("USE_MEMORY_STORE", false) {
		// Local development without a table; state lives for the process.
		repo = todo.NewMemoryRepository()
		slog.Info("using in-memory todo store")
	} else {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load aws config", "error", err)
			os.Exit(1)
		}
		repo = todo.NewDynamoRepository(dynamodb.NewFromConfig(awsCfg), cfg.table)
		slog.Info("using dynamodb todo store", "table", cfg.table)
	}

	app := application{
		config:      cfg,
		todoService: todo.NewService(repo),
	}

	if err := app.run(ctx, app.mount()); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}
