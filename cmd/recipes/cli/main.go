package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"

	"recipepairs"
	"recipepairs/session"
	"recipepairs/shell"
	"recipepairs/slack"
	"recipepairs/tools"
	"recipepairs/tools/storage"
)

func main() {
	ctx := context.Background()

	var cfg recipepairs.AppConfig
	if err := envdecode.Decode(&cfg); err != nil {
		log.Fatalf("SETUP: Failed to decode: %s", err)
	}
	recipepairs.SetupLogging(cfg.LogLevel)

	s, err := session.Load(ctx, storage.NewFileTextSource(argOr(1, cfg.RecipesPath)))
	if err != nil {
		slog.Error("SETUP: Failed to load recipes", "error", err)
		os.Exit(1)
	}

	registry, err := tools.NewRegistry(s, storage.NewFileListSink(cfg.ShoppingListPath))
	if err != nil {
		slog.Error("SETUP: Failed to create tool registry", "error", err)
		os.Exit(1)
	}

	logger, cleanup, err := newCommandLogger(cfg.SessionLogDir, s.ID)
	if err != nil {
		slog.Error("SETUP: Failed to create command logger", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("SETUP: Failed to flush command log", "error", err)
		}
	}()

	var slackClient *slack.Client
	if cfg.SlackWebhookURL != "" {
		slackClient = slack.NewClient(cfg.SlackWebhookURL, http.DefaultClient)
	}

	runner := shell.NewRunner(s.ID, registry, logger)

	fmt.Printf("Loaded %d recipes and %d ingredient pairs. Type help for commands.\n", len(s.Recipes), len(s.Pairs))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return
		case "dump":
			recipepairs.Dump(s.Recipes, s.Stores, s.Pairs, s.List.Items())
			continue
		}

		out, err := runner.Run(ctx, line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(out)

		if slackClient != nil && isExport(line) {
			if err := slackClient.PostShoppingList(ctx, cfg.SlackChannel, s.List.Items()); err != nil {
				slog.Error("SHELL: Failed to post shopping list to Slack", "error", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("SHELL: Failed to read input", "error", err)
	}
}

func isExport(line string) bool {
	cmd, err := shell.ParseCommand(line)
	return err == nil && cmd.Verb == shell.VerbExport
}

func argOr(i int, def string) string {
	if len(os.Args) > i {
		return os.Args[i]
	}
	return def
}

func newCommandLogger(dir, sessionID string) (recipepairs.CommandLogger, func() error, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to create log dir: %w", err)
	}

	logFilePath := recipepairs.NewSessionLogFilePath(dir, sessionID)
	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, func() error { return err }, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := recipepairs.NewFileCommandLogger(sessionID, logFile)
	cleanup := func() error {
		return errors.Join(logger.Flush(), logFile.Close())
	}
	return logger, cleanup, nil
}
