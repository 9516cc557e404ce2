package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/medtrack/clinic-api/internal/config"
	appointmentHandler "github.com/medtrack/clinic-api/internal/handler/appointment"
	doctorHandler "github.com/medtrack/clinic-api/internal/handler/doctor"
	healthHandler "github.com/medtrack/clinic-api/internal/handler/health"
	historyHandler "github.com/medtrack/clinic-api/internal/handler/history"
	patientHandler "github.com/medtrack/clinic-api/internal/handler/patient"
	prescriptionHandler "github.com/medtrack/clinic-api/internal/handler/prescription"
	scheduleHandler "github.com/medtrack/clinic-api/internal/handler/schedule"
	"github.com/medtrack/clinic-api/internal/repository/postgres"
	"github.com/medtrack/clinic-api/internal/router"
	appointmentService "github.com/medtrack/clinic-api/internal/service/appointment"
	doctorService "github.com/medtrack/clinic-api/internal/service/doctor"
	historyService "github.com/medtrack/clinic-api/internal/service/history"
	patientService "github.com/medtrack/clinic-api/internal/service/patient"
	prescriptionService "github.com/medtrack/clinic-api/internal/service/prescription"
	scheduleService "github.com/medtrack/clinic-api/internal/service/schedule"
	"github.com/medtrack/clinic-api/pkg/logger"
)

func main() {
	log := logger.NewLogger(nil)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal(err, "invalid log level", "level", cfg.Log.Level)
	}
	// middleware logs through the zerolog global, which follows the
	// same configured level
	zerolog.SetGlobalLevel(level)
	log = logger.NewLogger(&logger.Config{
		Level:      level,
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Initialize repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	historyRepo := postgres.NewMedicalHistoryRepository(db)
	prescriptionRepo := postgres.NewPrescriptionRepository(db)

	// Initialize services
	patientSvc := patientService.NewService(patientRepo, appointmentRepo, historyRepo)
	doctorSvc := doctorService.NewService(doctorRepo, appointmentRepo, historyRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo)
	historySvc := historyService.NewService(historyRepo, patientRepo, doctorRepo)
	prescriptionSvc := prescriptionService.NewService(prescriptionRepo, appointmentRepo)
	scheduleSvc := scheduleService.NewService(appointmentRepo, patientRepo)

	// Setup router
	routerCfg := router.DefaultConfig()
	routerCfg.Timeout.Duration = cfg.Server.RequestTimeout
	routerCfg.RateLimit = rate.Limit(cfg.Server.RateLimit)
	routerCfg.RateBurst = cfg.Server.RateBurst

	r := router.NewRouter(
		routerCfg,
		patientHandler.NewHandler(patientSvc),
		doctorHandler.NewHandler(doctorSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		historyHandler.NewHandler(historySvc),
		prescriptionHandler.NewHandler(prescriptionSvc),
		scheduleHandler.NewHandler(scheduleSvc),
		healthHandler.NewHandler(db),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
