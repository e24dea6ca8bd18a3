package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

const refreshTimeout = 30 * time.Second

type Refresher interface {
	Refresh(ctx context.Context, city, keyword string) int
}

// Scheduler pulls the event catalog on a cron spec with a seconds field.
// An empty spec disables it.
type Scheduler struct {
	cron    *cron.Cron
	catalog Refresher
	spec    string
	city    string
	keyword string
	log     zerolog.Logger
}

func NewScheduler(catalog Refresher, spec, city, keyword string, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:    c,
		catalog: catalog,
		spec:    spec,
		city:    city,
		keyword: keyword,
		log:     log,
	}
}

func (s *Scheduler) Start() error {
	if s.spec == "" || s.catalog == nil {
		s.log.Info().Msg("catalog refresh schedule disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.refreshCatalog); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Str("spec", s.spec).Msg("catalog refresh scheduled")
	return nil
}

// Stop halts the schedule and waits up to timeout for a running refresh.
func (s *Scheduler) Stop(timeout time.Duration) {
	select {
	case <-s.cron.Stop().Done():
	case <-time.After(timeout):
		s.log.Warn().Msg("catalog refresh still running at shutdown")
	}
}

func (s *Scheduler) refreshCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	started := time.Now()
	kept := s.catalog.Refresh(ctx, s.city, s.keyword)
	s.log.Info().
		Int("event_tours", kept).
		Dur("took", time.Since(started)).
		Msg("catalog refreshed on schedule")
}
