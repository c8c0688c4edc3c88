// Package schedule applies bulkhead configuration changes on a cron schedule.
//
// A capacity calendar raises the concurrency ceiling during busy hours and
// lowers it off-peak without touching the serving path:
//
//	bh, _ := bulkhead.NewWithConfig("payments", bulkhead.Config{MaxConcurrentCalls: 10})
//	sched, _ := schedule.New(bh)
//
//	// Business hours: more headroom. Nights: tighten.
//	sched.Apply("0 0 9 * * MON-FRI", bulkhead.Config{MaxConcurrentCalls: 50})
//	sched.Apply("0 0 19 * * *", bulkhead.Config{MaxConcurrentCalls: 10})
//
//	sched.Start()
//	defer sched.Stop()
//
// Cron expressions use six fields (seconds first) and support descriptors
// such as @hourly. Jobs run sequentially on the cron goroutine; a shrink
// that has to wait for in-flight calls delays later jobs, never the
// bulkhead's admission path.
package schedule

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/gobulkhead/pkg/bulkhead"
	gberrors "github.com/vnykmshr/gobulkhead/pkg/common/errors"
)

// Scheduler applies configuration changes to one bulkhead at cron times.
type Scheduler struct {
	bulkhead *bulkhead.Bulkhead
	cron     *cron.Cron
	parser   cron.Parser
}

// New creates a scheduler for the given bulkhead.
func New(b *bulkhead.Bulkhead) (*Scheduler, error) {
	if b == nil {
		return nil, gberrors.NewValidationError("schedule", "bulkhead", nil, "cannot be nil").
			WithHint("provide the bulkhead to reconfigure")
	}

	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)

	return &Scheduler{
		bulkhead: b,
		cron:     cron.New(cron.WithParser(parser)),
		parser:   parser,
	}, nil
}

// Apply registers cfg to be applied whenever cronExpr fires. Both the
// expression and the configuration are validated here, so the scheduled
// change itself cannot fail.
func (s *Scheduler) Apply(cronExpr string, cfg bulkhead.Config) (cron.EntryID, error) {
	if _, err := s.parser.Parse(cronExpr); err != nil {
		return 0, gberrors.NewValidationError("schedule", "cron", cronExpr, "invalid cron expression").
			WithHint(err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return 0, err
	}

	return s.cron.AddFunc(cronExpr, func() {
		// Validated above; ChangeConfig can only fail on invalid config.
		_ = s.bulkhead.ChangeConfig(cfg)
	})
}

// Remove deletes a previously registered entry.
func (s *Scheduler) Remove(id cron.EntryID) {
	s.cron.Remove(id)
}

// Start begins executing registered entries in a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule. The returned context is done once any running
// job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
