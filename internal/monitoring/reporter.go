package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/jmagnuss/vaultbrowse-be/internal/services"
)

// Reporter periodically logs database reachability and process memory so a
// degraded server leaves a trace in the logs even when nobody polls /health.
type Reporter struct {
	statusSvc services.StatusServiceProvider
	schedule  cron.Schedule
	ticker    *time.Ticker
	done      chan bool
	nextRun   time.Time
}

// NewReporter creates a Reporter from a standard cron expression.
func NewReporter(statusSvc services.StatusServiceProvider, cronExpr string) (*Reporter, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("invalid status schedule %q: %w", cronExpr, err)
	}
	return &Reporter{
		statusSvc: statusSvc,
		schedule:  schedule,
		done:      make(chan bool),
	}, nil
}

// Run starts the reporting loop.
func (rp *Reporter) Run() {
	log.Info().Msg("Starting background status reporter...")
	rp.ticker = time.NewTicker(15 * time.Second)
	defer rp.ticker.Stop()

	// Report once immediately on start
	rp.report()
	rp.nextRun = rp.schedule.Next(time.Now())

	for {
		select {
		case <-rp.done:
			log.Info().Msg("Stopping background status reporter.")
			return
		case <-rp.ticker.C:
			if time.Now().After(rp.nextRun) {
				rp.report()
				rp.nextRun = rp.schedule.Next(time.Now())
			}
		}
	}
}

// Stop halts the reporting loop.
func (rp *Reporter) Stop() {
	rp.done <- true
}

func (rp *Reporter) report() {
	mem := rp.statusSvc.MemoryUsage()
	log.Info().
		Str("database", rp.statusSvc.DatabaseState(context.Background())).
		Uint64("rss", mem.RSS).
		Uint64("vms", mem.VMS).
		Msg("Status report")
}
