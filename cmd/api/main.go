package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"

	"school-assistant/config"
	_ "school-assistant/docs" // Swagger docs
	chatHTTP "school-assistant/internal/assistant/delivery/http"
	tgDelivery "school-assistant/internal/assistant/delivery/telegram"
	"school-assistant/internal/assistant/usecase"
	classroomPostgre "school-assistant/internal/classroom/repository/postgre"
	contentRedis "school-assistant/internal/content/repository/redis"
	examFilestore "school-assistant/internal/exam/repository/filestore"
	"school-assistant/internal/extract"
	"school-assistant/internal/gate"
	"school-assistant/internal/generation"
	"school-assistant/internal/grounding"
	"school-assistant/internal/holiday"
	"school-assistant/internal/httpserver"
	"school-assistant/internal/intent"
	"school-assistant/internal/middleware"
	"school-assistant/internal/prompt"
	"school-assistant/internal/retrieval"
	"school-assistant/pkg/datemath"
	"school-assistant/pkg/llmprovider"
	"school-assistant/pkg/log"
	"school-assistant/pkg/metrics"
	"school-assistant/pkg/telegram"
	"school-assistant/pkg/tokens"
)

// @title       School Assistant API
// @description Grounded question answering over classroom, content, exam and calendar data.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting School Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	dateMathParser, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	registry := metrics.New()
	checks := map[string]httpserver.ReadinessCheck{}

	// 3. Data sources (each optional; a missing one is reported as unavailable)
	var deps retrieval.Deps

	if cfg.Postgres.DSN != "" {
		poolCfg, pErr := pgxpool.ParseConfig(cfg.Postgres.DSN)
		if pErr != nil {
			logger.Errorf(ctx, "Invalid postgres DSN: %v", pErr)
			return
		}
		if cfg.Postgres.MaxConns > 0 {
			poolCfg.MaxConns = cfg.Postgres.MaxConns
		}
		pool, pErr := pgxpool.NewWithConfig(ctx, poolCfg)
		if pErr != nil {
			logger.Errorf(ctx, "Failed to create postgres pool: %v", pErr)
			return
		}
		defer pool.Close()
		deps.Classroom = classroomPostgre.New(pool, logger)
		checks["postgres"] = pool.Ping
		logger.Info(ctx, "✅ Classroom store initialized")
	} else {
		logger.Warn(ctx, "Classroom store skipped: postgres.dsn is empty")
	}

	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		contentReader := contentRedis.New(redisClient, cfg.Redis.KeyPrefix, logger)
		deps.Content = contentReader
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		logger.Info(ctx, "✅ Content store initialized")
	} else {
		logger.Warn(ctx, "Content store skipped: redis.addr is empty")
	}

	if cfg.ExamStore.Root != "" {
		deps.Exams = examFilestore.New(afero.NewReadOnlyFs(afero.NewOsFs()), examFilestore.Config{
			Root:         cfg.ExamStore.Root,
			ExcerptRunes: cfg.ExamStore.ExcerptRunes,
		}, logger)
		logger.Infof(ctx, "✅ Exam store initialized at %s", cfg.ExamStore.Root)
	}

	if calendarClient := newCalendarClient(ctx, cfg.GoogleCalendar, logger); calendarClient != nil {
		deps.Holidays = holiday.New(calendarClient, holiday.Config{
			CalendarID: cfg.GoogleCalendar.HolidayCalendarID,
			TTL:        cfg.GoogleCalendar.HolidayCacheTTL,
			Location:   dateMathParser.Location(),
		}, logger)
	}

	counter, err := tokens.New(cfg.Assistant.TokenEncoding)
	if err != nil {
		logger.Warnf(ctx, "Token encoding %q unavailable, estimating instead: %v", cfg.Assistant.TokenEncoding, err)
	}

	// 4. Language model
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	managerCfg, err := llmprovider.ManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Invalid LLM manager config: %v", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "✅ LLM providers initialized (%d)", len(providers))

	// 5. Pipeline
	msgs := cfg.Assistant.Messages
	assistantUC := usecase.New(usecase.Deps{
		Classifier: intent.New(extract.New(dateMathParser), logger),
		Gate:       gate.New(gate.Messages{SignIn: msgs.SignIn, Connect: msgs.Connect}),
		Retriever: retrieval.New(deps, retrieval.Config{
			BudgetTokens:    cfg.Assistant.ContextBudget,
			SourceTimeout:   cfg.Assistant.SourceTimeout,
			WebTokens:       cfg.Assistant.WebTokens,
			PersonWebTokens: cfg.Assistant.PersonWebTokens,
		}, dateMathParser, counter, registry, logger),
		Assembler: prompt.New(prompt.Persona{
			Name:            cfg.Persona.Name,
			SchoolName:      cfg.Persona.SchoolName,
			Facts:           cfg.Persona.Facts,
			Tone:            cfg.Persona.Tone,
			FormattingRules: cfg.Persona.FormattingRules,
		}, dateMathParser, logger),
		Generator: generation.New(llmManager, generation.Policy{
			Attempts:       cfg.Assistant.GenerationAttempts,
			AttemptTimeout: cfg.Assistant.AttemptTimeout,
			Delay:          cfg.Assistant.RetryDelay,
		}, generation.Options{
			Temperature: cfg.Assistant.Temperature,
			MaxTokens:   cfg.Assistant.MaxTokens,
		}, registry, logger),
		Verifier: grounding.New(grounding.Config{
			AllowedURLs: cfg.Assistant.AllowedURLs,
			Location:    dateMathParser.Location(),
		}, logger),
		Videos: deps.Content,
	}, usecase.Config{
		Messages: usecase.Messages{
			GenericGreeting: msgs.GenericGreeting,
			NamedGreeting:   msgs.NamedGreeting,
			Apology:         msgs.Apology,
			Clarification:   msgs.Clarification,
			SubjectPrompt:   msgs.SubjectPrompt,
			FAQFallback:     msgs.FAQFallback,
			VideosHeading:   msgs.VideosHeading,
			NoVideos:        msgs.NoVideos,
		},
		FAQ:        faqAnswers(cfg.FAQ),
		VideoLimit: cfg.Assistant.VideoLimit,
	}, registry, logger)

	// 6. Delivery
	chatHandler := chatHTTP.New(logger, assistantUC)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, assistantUC, telegramBot, cfg.Telegram.SecretToken, cfg.Telegram.AnswerTimeout)

		// Register webhook: auto-detect ngrok or fallback to manual config
		webhookURL := cfg.Telegram.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, defaultNgrokAPI)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/telegram"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, webhookURL, cfg.Telegram.SecretToken); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "✅ Telegram webhook registered at %s", webhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Middleware: middleware.New(logger, middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RequestsPerMin:   cfg.RateLimit.RequestsPerMin,
			MaxClients:       cfg.RateLimit.MaxClients,
			ClientTTL:        cfg.RateLimit.TTL,
		}),
		Metrics:         registry,
		ReadinessChecks: checks,
		ChatHandler:     chatHandler,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
