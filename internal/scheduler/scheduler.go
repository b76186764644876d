// Package scheduler runs a task repeatedly, either at a fixed interval or on
// a cron expression. The capture command uses it for unattended screenshot
// collection.
package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"shotbook/internal/logger"
)

type Scheduler interface {
	Start(task func() error) error
	Stop() error
}

type FixedRateScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
	done     chan bool
}

func NewFixedRateScheduler(interval time.Duration) *FixedRateScheduler {
	return &FixedRateScheduler{
		interval: interval,
		done:     make(chan bool),
	}
}

func (s *FixedRateScheduler) Start(task func() error) error {
	s.ticker = time.NewTicker(s.interval)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				if err := task(); err != nil {
					logger.GetLogger().Errorf("Scheduled task failed: %v", err)
				}
			case <-s.done:
				return
			}
		}
	}()

	return nil
}

func (s *FixedRateScheduler) Stop() error {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	close(s.done)
	return nil
}

type CronScheduler struct {
	spec string
	cron *cron.Cron
}

func NewCronScheduler(spec string) *CronScheduler {
	return &CronScheduler{
		spec: spec,
		cron: cron.New(cron.WithSeconds()),
	}
}

func (s *CronScheduler) Start(task func() error) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := task(); err != nil {
			logger.GetLogger().Errorf("Scheduled task failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid cron spec: %w", err)
	}

	s.cron.Start()
	return nil
}

func (s *CronScheduler) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	return nil
}
