// Command api runs the clinic management HTTP server.
//
// @title        Al-Shifa Clinic API
// @version      1.0
// @description  Dental clinic management platform: booking, inventory, billing, and an AI assistant.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/alshifa/clinic-system/docs"
	"github.com/alshifa/clinic-system/internal/agent"
	"github.com/alshifa/clinic-system/internal/api"
	"github.com/alshifa/clinic-system/internal/api/handler"
	"github.com/alshifa/clinic-system/internal/core/service"
	"github.com/alshifa/clinic-system/internal/infrastructure/db/mongo"
	redisdb "github.com/alshifa/clinic-system/internal/infrastructure/db/redis"
	"github.com/alshifa/clinic-system/internal/infrastructure/notify"
	"github.com/alshifa/clinic-system/internal/pkg/config"
	"github.com/alshifa/clinic-system/pkg/logger"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo index creation failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	// repositories
	users := mongo.NewUserRepository(db)
	patients := mongo.NewPatientRepository(db)
	doctors := mongo.NewDoctorRepository(db)
	hospitals := mongo.NewHospitalRepository(db)
	appointments := mongo.NewAppointmentRepository(db)
	items := mongo.NewInventoryRepository(db)
	treatments := mongo.NewTreatmentRepository(db)
	invoices := mongo.NewInvoiceRepository(db)
	otpStore := redisdb.NewOTPStore(redisClient)

	// outbound mail, log-only when SendGrid is not configured
	var mailer notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.Email.SendGridAPIKey,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	}, log); sg != nil {
		mailer = sg
	} else {
		log.Warn().Msg("SENDGRID_API_KEY not set, logging outbound email instead")
		mailer = notify.NewLogSender(log)
	}

	// services
	authSvc := service.NewAuthService(users, patients, doctors, hospitals, otpStore, mailer, cfg.JWTSecret, tokenTTL, log)
	billingSvc := service.NewBillingService(invoices, treatments, items, doctors, hospitals, patients, users, log)
	apptSvc := service.NewAppointmentService(appointments, patients, doctors, hospitals, users, billingSvc, log)
	scheduleSvc := service.NewScheduleService(doctors, users, appointments, log)
	inventorySvc := service.NewInventoryService(items, doctors, log)
	treatmentSvc := service.NewTreatmentService(treatments, items, doctors, log)
	dashboardSvc := service.NewDashboardService(appointments, doctors, hospitals, invoices, items, apptSvc, log)
	adminSvc := service.NewAdminService(hospitals, doctors, users, log)
	orgSvc := service.NewOrganizationService(hospitals, doctors, users, log)

	if cfg.Admin.Password != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			log.Fatal().Err(err).Msg("admin bootstrap failed")
		}
	} else {
		log.Warn().Msg("ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	// chat agents, degraded but functional without a Gemini key
	var llm agent.LLMClient
	if cfg.LLM.GeminiAPIKey != "" {
		gemini, err := agent.NewGeminiClient(ctx, cfg.LLM.GeminiAPIKey, cfg.LLM.Model)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini client init failed")
		}
		defer gemini.Close()
		llm = gemini
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant answers from deterministic paths only")
	}
	agentRouter := agent.NewRouter(
		agent.NewAppointmentAgent(apptSvc, scheduleSvc),
		agent.NewInventoryAgent(items, doctors),
		agent.NewRevenueAgent(billingSvc),
		agent.NewCaseAgent(llm),
		llm,
		log,
	)

	e := api.NewRouter(api.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.HealthCheck{
			"mongo": func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) },
			"redis": func(ctx context.Context) error { return pingRedis(ctx, redisClient) },
		}),
		Auth:         handler.NewAuthHandler(authSvc, hospitals, log),
		Patient:      handler.NewPatientHandler(apptSvc, scheduleSvc, billingSvc, log),
		Doctor:       handler.NewDoctorHandler(apptSvc, scheduleSvc, inventorySvc, treatmentSvc, billingSvc, dashboardSvc, log),
		Organization: handler.NewOrganizationHandler(orgSvc, dashboardSvc, log),
		Admin:        handler.NewAdminHandler(adminSvc, log),
		Agent:        handler.NewAgentHandler(agentRouter, log),
	}, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func pingRedis(ctx context.Context, client *redis.Client) error {
	return client.Ping(ctx).Err()
}
