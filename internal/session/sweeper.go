package session

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// StartSweeper schedules Sweep every interval. A non-positive interval returns a nil scheduler.
func StartSweeper(manager *Manager, interval time.Duration, log *zap.SugaredLogger) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, nil
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create session sweeper: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if removed := manager.Sweep(); removed > 0 {
				log.Debugw("expired sessions swept", "removed", removed)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}

	scheduler.Start()
	return scheduler, nil
}
