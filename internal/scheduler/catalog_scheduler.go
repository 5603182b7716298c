package scheduler

import (
	"context"

	"github.com/Kalpana12-cmd/amazon/internal/app/service"
	"github.com/Kalpana12-cmd/amazon/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CatalogScheduler refreshes the catalog snapshot on a cron schedule.
type CatalogScheduler struct {
	cron           *cron.Cron
	catalogService service.CatalogService
	spec           string
}

// NewCatalogScheduler creates a scheduler running Load on the given
// cron expression.
func NewCatalogScheduler(catalogService service.CatalogService, spec string) *CatalogScheduler {
	return &CatalogScheduler{
		cron:           cron.New(),
		catalogService: catalogService,
		spec:           spec,
	}
}

// Start registers the refresh job and starts the scheduler.
func (s *CatalogScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		logger.Info("Starting scheduled catalog refresh", nil)

		if err := s.catalogService.Load(context.Background()); err != nil {
			logger.Error("Scheduled catalog refresh failed", err)
			return
		}

		logger.Info("Scheduled catalog refresh completed", map[string]interface{}{
			"count": s.catalogService.Len(),
		})
	})

	if err != nil {
		logger.Error("Failed to add cron job for catalog refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Catalog refresh scheduler started", map[string]interface{}{
		"spec": s.spec,
	})

	return nil
}

// Stop stops the scheduler.
func (s *CatalogScheduler) Stop() {
	logger.Info("Stopping catalog refresh scheduler...", nil)
	s.cron.Stop()
	logger.Info("Catalog refresh scheduler stopped", nil)
}
