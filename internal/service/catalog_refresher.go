package service

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultRetryInterval is how often the first catalog load is retried.
const DefaultRetryInterval = 5 * time.Second

// CatalogRefresher keeps the reference catalog loaded: it retries the
// first load until it succeeds and then reloads on a cron schedule.
type CatalogRefresher struct {
	loader        CatalogLoader
	schedule      string
	retryInterval time.Duration
	logger        *zap.Logger
}

// NewCatalogRefresher creates a refresher. An empty schedule disables reloads.
func NewCatalogRefresher(loader CatalogLoader, schedule string, logger *zap.Logger) *CatalogRefresher {
	return &CatalogRefresher{
		loader:        loader,
		schedule:      schedule,
		retryInterval: DefaultRetryInterval,
		logger:        logger,
	}
}

// Start blocks until ctx is done.
func (r *CatalogRefresher) Start(ctx context.Context) error {
	r.logger.Info("catalog refresher started")
	defer r.logger.Info("catalog refresher stopped")

	if err := r.waitForFirstLoad(ctx); err != nil {
		return nil
	}

	if r.schedule == "" {
		<-ctx.Done()
		return nil
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(r.schedule, func() {
		r.logger.Debug("cron triggered: reloading catalog")
		if err := r.loader.Load(ctx); err != nil {
			r.logger.Error("failed to reload catalog, keeping previous one", zap.Error(err))
			return
		}
		r.logger.Info("catalog reloaded")
	})
	if err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}

// waitForFirstLoad retries Load until it succeeds or ctx is cancelled.
func (r *CatalogRefresher) waitForFirstLoad(ctx context.Context) error {
	ticker := time.NewTicker(r.retryInterval)
	defer ticker.Stop()

	for {
		if r.loader.Loaded() {
			return nil
		}

		err := r.loader.Load(ctx)
		if err == nil {
			r.logger.Info("catalog loaded")
			return nil
		}
		r.logger.Warn("catalog not loaded yet, retrying",
			zap.Duration("retry_in", r.retryInterval),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
