package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/cognitax/cognitax/internal/ai"
	"github.com/cognitax/cognitax/internal/analytics"
	"github.com/cognitax/cognitax/internal/auth"
	authStore "github.com/cognitax/cognitax/internal/auth/store"
	"github.com/cognitax/cognitax/internal/chat"
	chatStore "github.com/cognitax/cognitax/internal/chat/store"
	"github.com/cognitax/cognitax/internal/classifier"
	classifierStore "github.com/cognitax/cognitax/internal/classifier/store"
	"github.com/cognitax/cognitax/internal/config"
	"github.com/cognitax/cognitax/internal/database"
	cognitaxHttp "github.com/cognitax/cognitax/internal/http"
	authHandler "github.com/cognitax/cognitax/internal/http/auth"
	chatHandler "github.com/cognitax/cognitax/internal/http/chat"
	overrideHandler "github.com/cognitax/cognitax/internal/http/override"
	taxHandler "github.com/cognitax/cognitax/internal/http/tax"
	txHandler "github.com/cognitax/cognitax/internal/http/transaction"
	uploadHandler "github.com/cognitax/cognitax/internal/http/upload"
	"github.com/cognitax/cognitax/internal/statement"
	"github.com/cognitax/cognitax/internal/tax"
	taxStore "github.com/cognitax/cognitax/internal/tax/store"
	"github.com/cognitax/cognitax/internal/transaction"
	txStore "github.com/cognitax/cognitax/internal/transaction/store"
	"github.com/cognitax/cognitax/internal/upload"
	uploadStore "github.com/cognitax/cognitax/internal/upload/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var model ai.Client
	if cfg.Gemini.APIKey != "" {
		model, err = ai.NewGemini(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			slog.Error("failed to create model client", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("no model API key configured, classification falls back to keywords")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	overrides := classifierStore.New(db)

	var (
		authService        = auth.NewService(authStore.New(db), tokens)
		transactionService = transaction.NewService(txStore.New(db))
		taxService         = tax.NewService(taxStore.New(db), cfg.TaxPolicy())
		classifierService  = classifier.New(overrides, model, cfg.Gemini.Timeout)
		uploadService      = upload.NewService(uploadStore.New(db), statement.NewParser(), classifierService, transactionService, taxService)
		analyticsService   = analytics.NewService(transactionService, taxService)
		chatService        = chat.NewService(chatStore.New(db), model, transactionService, taxService)
	)

	var (
		authH   = authHandler.NewHandler(authService)
		uploadH = uploadHandler.NewHandler(uploadService)
		txH     = txHandler.NewHandler(transactionService)
		taxH    = taxHandler.NewHandler(taxService, analyticsService)
		chatH   = chatHandler.NewHandler(chatService)
		ovrH    = overrideHandler.NewHandler(overrides)
	)

	router := cognitaxHttp.New(tokens, cfg.CORS.AllowedOrigins, authH, uploadH, txH, taxH, chatH, ovrH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
