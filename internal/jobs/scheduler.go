package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"artisanalley/web/internal/catalog"
)

// Scheduler keeps the trending-products cache warm so the public home
// page rarely waits on the backend.
type Scheduler struct {
	cron    *cron.Cron
	catalog *catalog.Cache
	spec    string
	log     zerolog.Logger
}

func NewScheduler(catalogCache *catalog.Cache, spec string, log zerolog.Logger) *Scheduler {
	if spec == "" {
		spec = "0 */10 * * * *" // every ten minutes
	}
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		catalog: catalogCache,
		spec:    spec,
		log:     log.With().Str("component", "jobs").Logger(),
	}
}

func (s *Scheduler) Start() error {
	if s.catalog == nil {
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.refreshTrending); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() context.CancelFunc {
	_, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	go func() {
		s.cron.Stop()
		cancel()
	}()
	return cancel
}

func (s *Scheduler) refreshTrending() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.catalog.RefreshTrending(ctx); err != nil {
		s.log.Warn().Err(err).Msg("trending refresh failed")
		return
	}
	s.log.Debug().Msg("trending cache refreshed")
}
