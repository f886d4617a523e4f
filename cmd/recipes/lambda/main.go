package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joeshaw/envdecode"

	"recipepairs"
	"recipepairs/session"
	"recipepairs/shell"
	"recipepairs/tools"
	"recipepairs/tools/storage"
)

type Params struct {
	Commands []string `json:"commands"`
}

type CommandResult struct {
	Command string `json:"command"`
	Output  string `json:"output,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Results struct {
	SessionID string          `json:"session_id"`
	Results   []CommandResult `json:"results"`
}

func main() {
	fn := func(ctx context.Context, params Params) (Results, error) {
		var s3Config recipepairs.S3Config
		if err := envdecode.Decode(&s3Config); err != nil {
			return Results{}, fmt.Errorf("missing S3 config: %w", err)
		}

		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return Results{}, fmt.Errorf("failed to load AWS config: %w", err)
		}
		s3Client := s3.NewFromConfig(awsCfg)

		s, err := session.Load(ctx, storage.NewS3TextSource(s3Client, s3Config.Bucket, s3Config.RecipesKey))
		if err != nil {
			slog.Error("SETUP: Failed to load recipes from S3", "error", err)
			return Results{}, err
		}

		registry, err := tools.NewRegistry(s, storage.NewS3ListSink(s3Client, s3Config.Bucket, s3Config.ShoppingListKey))
		if err != nil {
			slog.Error("SETUP: Failed to create tool registry", "error", err)
			return Results{}, err
		}
		slog.Info("SETUP: S3 recipe session initialized", "session_id", s.ID)

		tracerProvider, meterProvider, otelShutdown, err := recipepairs.InitOtel(ctx)
		if err != nil {
			slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
			return Results{}, err
		}
		defer func() {
			if err := otelShutdown(ctx); err != nil {
				slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
			}
		}()

		runner, err := shell.NewInstrumentedRunner(
			s.ID,
			registry,
			recipepairs.NewStdoutCommandLogger(),
			tracerProvider.Tracer(recipepairs.TracerNameLambda),
			meterProvider.Meter(recipepairs.TracerNameLambda),
		)
		if err != nil {
			slog.Error("SETUP: Failed to create runner", "error", err)
			return Results{}, err
		}

		results := Results{SessionID: s.ID, Results: make([]CommandResult, 0, len(params.Commands))}
		for _, line := range params.Commands {
			res := CommandResult{Command: line}
			out, err := runner.Run(ctx, line)
			if err != nil {
				res.Error = err.Error()
			} else {
				res.Output = out
			}
			results.Results = append(results.Results, res)
		}
		return results, nil
	}

	lambda.Start(fn)
}
