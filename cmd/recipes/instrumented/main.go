package main

import (
	"bytes"
	"context"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/joeshaw/envdecode"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"recipepairs"
	"recipepairs/session"
	"recipepairs/shell"
	"recipepairs/slack"
	"recipepairs/tools"
	"recipepairs/tools/storage"
)

// Runs each argument as a command, for example:
//
//	instrumented "lookup tomato soup" "add salt" export
func main() {
	ctx := context.Background()

	var cfg recipepairs.AppConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}
	recipepairs.SetupLogging(cfg.LogLevel)

	commands := os.Args[1:]
	if len(commands) == 0 {
		commands = []string{"search", "help"}
	}

	s, err := session.Load(ctx, storage.NewFileTextSource(cfg.RecipesPath))
	if err != nil {
		slog.Error("SETUP: Failed to load recipes", "error", err)
		return
	}

	registry, err := tools.NewRegistry(s, storage.NewFileListSink(cfg.ShoppingListPath))
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		return
	}

	tracerProvider, meterProvider, otelShutdown, err := recipepairs.InitOtel(ctx)
	if err != nil {
		slog.Error("SETUP: Failed to initialize OpenTelemetry", "error", err)
		return
	}
	defer func() {
		if err := otelShutdown(ctx); err != nil {
			slog.Error("SETUP: Failed to shutdown OpenTelemetry", "error", err)
		}
	}()

	tracer := tracerProvider.Tracer(recipepairs.TracerNameShell)
	meter := meterProvider.Meter(recipepairs.TracerNameShell)

	ctx, span := tracer.Start(ctx, recipepairs.TracerNameShell, trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.Int("session.recipes", len(s.Recipes)),
		attribute.Int("session.pairs", len(s.Pairs)),
		attribute.Int("session.commands", len(commands)),
	))
	defer span.End()

	runner, err := shell.NewInstrumentedRunner(s.ID, registry, recipepairs.NewStdoutCommandLogger(), tracer, meter)
	if err != nil {
		slog.Error("SETUP: Failed to create runner", "error", err)
		return
	}

	for _, line := range commands {
		out, err := runner.Run(ctx, line)
		if err != nil {
			slog.Error("FAILURE: Error running command", "line", line, "error", err)
			continue
		}
		slog.Info("RESULT: Command completed", "line", line, "output", out)
	}

	if s.List.Len() == 0 {
		return
	}

	webhook := cfg.SlackWebhookURL
	if webhook == "" {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body := new(bytes.Buffer)
			body.ReadFrom(r.Body) // nolint: errcheck
			slog.Info("Received request",
				"method", r.Method,
				"path", r.URL.Path,
				"header", r.Header,
				"body", body.String(),
			)
			w.WriteHeader(http.StatusOK)
		}))
		defer testServer.Close()
		webhook = testServer.URL
	}

	slackClient := slack.NewClient(webhook, http.DefaultClient)
	if err := slackClient.PostShoppingList(ctx, cfg.SlackChannel, s.List.Items()); err != nil {
		slog.Error("Failed to post shopping list to Slack", "error", err)
	}
}
