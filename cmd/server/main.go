package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pena-betica-escocesa/api/internal/config"
	"github.com/pena-betica-escocesa/api/internal/database"
	"github.com/pena-betica-escocesa/api/internal/filestore"
	"github.com/pena-betica-escocesa/api/internal/handler"
	"github.com/pena-betica-escocesa/api/internal/jobs"
	"github.com/pena-betica-escocesa/api/internal/middleware"
	"github.com/pena-betica-escocesa/api/internal/repository"
	"github.com/pena-betica-escocesa/api/internal/service"
	"github.com/pena-betica-escocesa/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Feature flags with reload-on-SIGHUP
	flags := config.LoadFlags()

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	rsvpRepo := repository.NewRSVPRepository(db)
	contactRepo := repository.NewContactRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	triviaRepo := repository.NewTriviaRepository(db)

	// Flat-file document stores
	votingStore := filestore.NewCollection(cfg.Store.DataDir, "voting", filestore.NewVotingDocument)
	merchStore := filestore.NewCollection(cfg.Store.DataDir, "merchandise", filestore.NewMerchandiseDocument)

	// Initialize services
	notifyService := service.NewNotifyService(service.NotifyServiceConfig{
		Enabled:    cfg.Notify.Enabled,
		WebhookURL: cfg.Notify.WebhookURL,
		Timeout:    cfg.Notify.Timeout,
	})

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})

	matchService := service.NewMatchService(service.MatchServiceConfig{
		MatchRepo: matchRepo,
	})

	rsvpService := service.NewRSVPService(service.RSVPServiceConfig{
		RSVPRepo:  rsvpRepo,
		MatchRepo: matchRepo,
		Notifier:  notifyService,
	})

	contactService := service.NewContactService(service.ContactServiceConfig{
		ContactRepo: contactRepo,
		Notifier:    notifyService,
	})

	votingService := service.NewVotingService(service.VotingServiceConfig{
		Store: votingStore,
	})

	merchService := service.NewMerchandiseService(service.MerchandiseServiceConfig{
		Store: merchStore,
	})

	triviaService := service.NewTriviaService(service.TriviaServiceConfig{
		TriviaRepo: triviaRepo,
	})

	newsService := service.NewNewsService(service.NewsServiceConfig{
		NewsRepo: newsRepo,
	})

	// Rate limiting and idempotency
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   100,
		Window: time.Minute,
		Burst:  20,
	})
	defer rateLimiter.Stop()

	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL: 24 * time.Hour,
	})
	defer idempotencyStore.Stop()

	// Background jobs
	votingStatusJob := jobs.NewVotingStatusJob(votingService, time.Minute)
	votingStatusJob.Start()
	defer votingStatusJob.Stop()

	feedCleanupJob := jobs.NewFeedCleanupJob(newsService, time.Hour)
	feedCleanupJob.Start()
	defer feedCleanupJob.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	matchHandler := handler.NewMatchHandler(matchService)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	contactHandler := handler.NewContactHandler(contactService)
	votingHandler := handler.NewVotingHandler(votingService)
	merchHandler := handler.NewMerchandiseHandler(merchService)
	triviaHandler := handler.NewTriviaHandler(triviaService)
	newsHandler := handler.NewNewsHandler(newsService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	authRequired := middleware.Auth(jwtService)
	authOptional := middleware.OptionalAuth(jwtService)
	boardOnly := func(h http.Handler) http.Handler {
		return authRequired(middleware.RequireBoard(h))
	}
	rsvpGate := middleware.Feature(func() bool { return flags.Current().RSVP })
	votingGate := middleware.Feature(func() bool { return flags.Current().Voting })
	merchGate := middleware.Feature(func() bool { return flags.Current().Merchandise })
	triviaGate := middleware.Feature(func() bool { return flags.Current().Trivia })
	newsGate := middleware.Feature(func() bool { return flags.Current().News })
	contactGate := middleware.Feature(func() bool { return flags.Current().Contact })

	// Auth endpoints
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", authRequired(http.HandlerFunc(authHandler.Me)))

	// Match endpoints (public)
	mux.HandleFunc("GET /api/matches", matchHandler.List)
	mux.HandleFunc("GET /api/matches/next", matchHandler.Next)
	mux.HandleFunc("GET /api/matches/{matchId}", matchHandler.GetByID)

	// RSVP endpoints (public, legacy wire format)
	mux.Handle("POST /api/rsvp", rsvpGate(authOptional(http.HandlerFunc(rsvpHandler.Submit))))
	mux.Handle("GET /api/rsvp/attendees", rsvpGate(http.HandlerFunc(rsvpHandler.Attendees)))
	mux.Handle("GET /api/rsvp/status", rsvpGate(authOptional(http.HandlerFunc(rsvpHandler.Status))))

	// Contact endpoints
	mux.Handle("POST /api/contact", contactGate(http.HandlerFunc(contactHandler.Submit)))

	// Shirt voting endpoints (public)
	mux.Handle("GET /api/voting", votingGate(authOptional(http.HandlerFunc(votingHandler.View))))
	mux.Handle("POST /api/voting/votes", votingGate(authOptional(http.HandlerFunc(votingHandler.CastVote))))
	mux.Handle("POST /api/voting/preorders", votingGate(http.HandlerFunc(votingHandler.CreatePreOrder)))

	// Merchandise endpoints (public)
	mux.Handle("GET /api/merchandise/products", merchGate(http.HandlerFunc(merchHandler.ListProducts)))
	mux.Handle("GET /api/merchandise/products/{productId}", merchGate(http.HandlerFunc(merchHandler.GetProduct)))
	mux.Handle("POST /api/merchandise/orders", merchGate(http.HandlerFunc(merchHandler.CreateOrder)))

	// Trivia endpoints
	mux.Handle("GET /api/trivia/questions", triviaGate(http.HandlerFunc(triviaHandler.DailyQuestions)))
	mux.Handle("POST /api/trivia/check", triviaGate(http.HandlerFunc(triviaHandler.CheckAnswers)))
	mux.Handle("GET /api/trivia/leaderboard", triviaGate(http.HandlerFunc(triviaHandler.Leaderboard)))
	mux.Handle("POST /api/trivia/scores", triviaGate(authRequired(http.HandlerFunc(triviaHandler.SubmitScore))))
	mux.Handle("GET /api/trivia/scores/me", triviaGate(authRequired(http.HandlerFunc(triviaHandler.MyScore))))

	// News endpoints (public)
	mux.Handle("GET /api/news", newsGate(http.HandlerFunc(newsHandler.List)))
	mux.Handle("GET /api/news/{newsId}", newsGate(http.HandlerFunc(newsHandler.GetByID)))

	// Board endpoints
	mux.Handle("POST /api/board/users", boardOnly(http.HandlerFunc(authHandler.CreateUser)))
	mux.Handle("POST /api/board/matches", boardOnly(http.HandlerFunc(matchHandler.Create)))
	mux.Handle("PATCH /api/board/matches/{matchId}", boardOnly(http.HandlerFunc(matchHandler.Update)))
	mux.Handle("DELETE /api/board/matches/{matchId}", boardOnly(http.HandlerFunc(matchHandler.Delete)))
	mux.Handle("GET /api/board/rsvps", boardOnly(http.HandlerFunc(rsvpHandler.List)))
	mux.Handle("DELETE /api/board/rsvps/{rsvpId}", boardOnly(http.HandlerFunc(rsvpHandler.Delete)))
	mux.Handle("GET /api/board/contacts", boardOnly(http.HandlerFunc(contactHandler.List)))
	mux.Handle("PATCH /api/board/contacts/{contactId}", boardOnly(http.HandlerFunc(contactHandler.UpdateStatus)))
	mux.Handle("POST /api/board/voting/designs", boardOnly(http.HandlerFunc(votingHandler.AddDesign)))
	mux.Handle("PATCH /api/board/voting/round", boardOnly(http.HandlerFunc(votingHandler.SetRound)))
	mux.Handle("POST /api/board/merchandise/products", boardOnly(http.HandlerFunc(merchHandler.CreateProduct)))
	mux.Handle("PATCH /api/board/merchandise/products/{productId}", boardOnly(http.HandlerFunc(merchHandler.UpdateProduct)))
	mux.Handle("DELETE /api/board/merchandise/products/{productId}", boardOnly(http.HandlerFunc(merchHandler.DeleteProduct)))
	mux.Handle("GET /api/board/merchandise/orders", boardOnly(http.HandlerFunc(merchHandler.ListOrders)))
	mux.Handle("PATCH /api/board/merchandise/orders/{orderId}", boardOnly(http.HandlerFunc(merchHandler.UpdateOrderStatus)))
	mux.Handle("POST /api/board/trivia/questions", boardOnly(http.HandlerFunc(triviaHandler.CreateQuestion)))
	mux.Handle("GET /api/board/trivia/questions", boardOnly(http.HandlerFunc(triviaHandler.ListQuestions)))
	mux.Handle("PATCH /api/board/trivia/questions/{questionId}", boardOnly(http.HandlerFunc(triviaHandler.SetQuestionActive)))
	mux.Handle("DELETE /api/board/trivia/questions/{questionId}", boardOnly(http.HandlerFunc(triviaHandler.DeleteQuestion)))
	mux.Handle("POST /api/board/news", boardOnly(http.HandlerFunc(newsHandler.Create)))
	mux.Handle("PATCH /api/board/news/{newsId}", boardOnly(http.HandlerFunc(newsHandler.Update)))
	mux.Handle("DELETE /api/board/news/{newsId}", boardOnly(http.HandlerFunc(newsHandler.Delete)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// SIGHUP reloads feature flags without a restart
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			next := flags.Reload()
			slog.Info("feature flags reloaded",
				slog.Bool("rsvp", next.RSVP),
				slog.Bool("voting", next.Voting),
				slog.Bool("merchandise", next.Merchandise),
				slog.Bool("trivia", next.Trivia),
				slog.Bool("news", next.News),
				slog.Bool("contact", next.Contact),
			)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
