package scheduler

import (
	"context"
	"errors"
	"time"

	"crm_assistencia/internal/usecase"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
)

var ErrInvalidInterval = errors.New("scheduler interval must be positive")

// Scheduler runs the periodic back-office jobs.
type Scheduler struct {
	cron    *gocron.Scheduler
	timeout time.Duration
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()
	return &Scheduler{cron: s, timeout: time.Minute}
}

// ScheduleLowStockCheck scans the inventory every interval, starting now.
func (s *Scheduler) ScheduleLowStockCheck(alerts usecase.IStockAlertUseCase, every time.Duration) error {
	if every <= 0 {
		return ErrInvalidInterval
	}
	_, err := s.cron.Every(every).Tag("low-stock-check").Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		low, err := alerts.CheckLowStock(ctx)
		if err != nil {
			log.Error().Err(err).Msg("[scheduler][low-stock] run failed")
			return
		}
		log.Debug().Int("low_stock", len(low)).Msg("[scheduler][low-stock] run finished")
	})
	if err != nil {
		return err
	}
	log.Info().Dur("every", every).Msg("[scheduler][low-stock] scheduled")
	return nil
}

func (s *Scheduler) Start() {
	s.cron.StartAsync()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
