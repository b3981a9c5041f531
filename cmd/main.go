package main

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-discovery/internal/api"
	"github.com/maxaizer/job-discovery/internal/config"
	"github.com/maxaizer/job-discovery/internal/discovery"
	"github.com/maxaizer/job-discovery/internal/logger"
	"github.com/maxaizer/job-discovery/internal/metrics"
	"github.com/maxaizer/job-discovery/internal/repositories"
	"github.com/maxaizer/job-discovery/internal/services"
	log "github.com/sirupsen/logrus"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

func engineSettings(cfg config.DiscoveryConfig) discovery.Settings {
	return discovery.Settings{
		PageSize: cfg.PageSize,
		Weights: discovery.Weights{
			Skill:    cfg.Weights.Skill,
			Role:     cfg.Weights.Role,
			Location: cfg.Weights.Location,
		},
		CandidatePool:       cfg.CandidatePool,
		SimilarDefaultLimit: cfg.SimilarDefaultLimit,
		SimilarMaxLimit:     cfg.SimilarMaxLimit,
		SimilarMaxSkills:    cfg.SimilarMaxSkills,
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(cfg.Logger)
	defer logger.Cleanup()

	metrics.Register()

	dbContext, err := repositories.NewDbContext(cfg.DB.Driver, cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	if cfg.DB.MaxOpenConns > 0 {
		if err = dbContext.SetMaxOpenConns(cfg.DB.MaxOpenConns); err != nil {
			log.Fatalf("can't configure db pool: %v", err)
		}
	}

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	jobs := repositories.NewJobsRepository(dbContext.DB)

	var slugs discovery.SlugRepository = jobs
	if cfg.Cache.SlugTTL > 0 {
		slugs = repositories.NewCachedJobs(jobs, cfg.Cache.SlugTTL, cfg.Cache.CleanupInterval)
	}

	bus := EventBus.New()

	stats, err := services.NewSearchStatsSubscriber(bus)
	if err != nil {
		log.Fatalf("can't subscribe search stats: %v", err)
	}
	defer stats.Close()

	engine := discovery.NewEngine(jobs, engineSettings(cfg.Discovery)).WithEventBus(bus)
	directory := discovery.NewDirectory(jobs, slugs)

	monitor, err := services.NewCorpusMonitor(directory, cfg.Monitor.Schedule, cfg.Server.RequestTimeout)
	if err != nil {
		log.Fatalf("can't create corpus monitor: %v", err)
	}
	monitor.Start()
	defer monitor.Stop()

	server := api.NewServer(cfg.Server, api.NewHandler(engine, directory, dbContext))
	go func() {
		if err := server.Run(); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeHttp).Error(err)
			stop()
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http server shutdown: %v", err)
	}
	log.Info("Services stopped.")
}
