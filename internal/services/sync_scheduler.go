package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"paceline/internal/repositories"
	"paceline/pkg/utils"
)

// SyncScheduler runs the reconciliation pipeline on a cron schedule, syncing
// the trailing week for every plan whose window covers today. Plans are
// processed one at a time; a failing plan is logged and the rest continue.
type SyncScheduler struct {
	cron     *cron.Cron
	sync     SyncServiceInterface
	planRepo repositories.PlanRepository
}

func NewSyncScheduler(sync SyncServiceInterface, planRepo repositories.PlanRepository) *SyncScheduler {
	return &SyncScheduler{
		cron:     cron.New(),
		sync:     sync,
		planRepo: planRepo,
	}
}

// Start registers the schedule (standard cron syntax, e.g. "0 6 * * *") and
// begins ticking.
func (s *SyncScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunOnce); err != nil {
		return err
	}
	s.cron.Start()
	log.Printf("Sync scheduler started with schedule %q", spec)
	return nil
}

func (s *SyncScheduler) Stop() {
	s.cron.Stop()
}

// RunOnce syncs every active plan over the trailing 7 days.
func (s *SyncScheduler) RunOnce() {
	ctx := context.Background()
	today := utils.Midnight(time.Now())

	plans, err := s.planRepo.ListActive(ctx, today)
	if err != nil {
		log.Printf("Scheduled sync: failed to list active plans: %v", err)
		return
	}
	if len(plans) == 0 {
		log.Println("Scheduled sync: no active training plans")
		return
	}

	start := today.AddDate(0, 0, -7)
	for _, plan := range plans {
		synced, err := s.sync.SyncActivities(ctx, plan.ID, &start, &today)
		if err != nil {
			log.Printf("Scheduled sync failed for plan %s: %v", plan.ID, err)
			continue
		}
		log.Printf("Scheduled sync: %d activities for plan %s", len(synced), plan.ID)
	}
}
