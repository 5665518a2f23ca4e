package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/manish-g0u74m/ServerlessTodo-app/internal/env"
	"github.com/manish-g0u74m/ServerlessTodo-app/internal/handler"
	"github.com/manish-g0u74m/ServerlessTodo-app/internal/todo"
)

func main() {
	env.Init()

	// Lambda writes stdout to CloudWatch; JSON keeps the entries queryable.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		slog.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}

	table := env.GetString("TODOS_TABLE", "Todos")

	// The table handle is built once here and injected; the handler itself
	// holds no global state.
	repo := todo.NewDynamoRepository(dynamodb.NewFromConfig(cfg), table)
	svc := todo.NewService(repo)

	slog.Info("todo handler ready", "table", table)

	lambda.Start(handler.NewHandler(svc).Handle)
}
