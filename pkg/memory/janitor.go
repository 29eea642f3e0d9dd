package memory

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultJanitorSchedule runs maintenance nightly at 03:00.
const DefaultJanitorSchedule = "0 3 * * *"

// Janitor periodically deduplicates the collection on a cron schedule.
type Janitor struct {
	store    *Store
	cron     *cron.Cron
	logger   zerolog.Logger
	schedule string
	running  bool
}

// NewJanitor prepares a janitor; the schedule uses the standard five-field
// cron syntax.
func NewJanitor(store *Store, schedule string, logger zerolog.Logger) (*Janitor, error) {
	if schedule == "" {
		schedule = DefaultJanitorSchedule
	}
	j := &Janitor{
		store:    store,
		cron:     cron.New(),
		logger:   logger.With().Str("component", "janitor").Logger(),
		schedule: schedule,
	}
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return nil, fmt.Errorf("invalid janitor schedule %q: %w", schedule, err)
	}
	return j, nil
}

// Start begins scheduling. Calling Start twice is an error.
func (j *Janitor) Start() error {
	if j.running {
		return fmt.Errorf("janitor is already running")
	}
	j.running = true
	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("Janitor started")
	return nil
}

// Stop halts scheduling; a run already in flight finishes.
func (j *Janitor) Stop() {
	if !j.running {
		return
	}
	j.cron.Stop()
	j.running = false
	j.logger.Info().Msg("Janitor stopped")
}

func (j *Janitor) run() {
	removed, remaining := j.store.Deduplicate(context.Background())
	j.logger.Info().Int("removed", removed).Int("remaining", remaining).Msg("Maintenance pass complete")
}
