package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/linesmerrill/devcamper-api/api"
	"github.com/linesmerrill/devcamper-api/databases"
)

// Schedules of the registered jobs, in UTC
const (
	PurgeResetTokensSpec  = "@hourly"
	ReconcileAveragesSpec = "0 3 * * *"
)

// Scheduler runs the periodic maintenance jobs
type Scheduler struct {
	cron *cron.Cron
	UDB  databases.UserDatabase
	BDB  databases.BootcampDatabase
	CDB  databases.CourseDatabase
	RDB  databases.ReviewDatabase
	now  func() time.Time
}

// NewScheduler creates a new scheduler instance
func NewScheduler(
	uDB databases.UserDatabase,
	bDB databases.BootcampDatabase,
	cDB databases.CourseDatabase,
	rDB databases.ReviewDatabase,
) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		UDB:  uDB,
		BDB:  bDB,
		CDB:  cDB,
		RDB:  rDB,
		now:  time.Now,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(PurgeResetTokensSpec, func() {
		ctx, cancel := api.WithJobTimeout(context.Background())
		defer cancel()
		if _, err := s.PurgeExpiredResetTokens(ctx); err != nil {
			zap.S().Errorw("failed to purge expired reset tokens", "error", err)
		}
	})
	if err != nil {
		zap.S().Errorw("failed to register reset token purge job", "error", err)
	}

	_, err = s.cron.AddFunc(ReconcileAveragesSpec, func() {
		ctx, cancel := api.WithJobTimeout(context.Background())
		defer cancel()
		if err := s.ReconcileAverages(ctx); err != nil {
			zap.S().Errorw("failed to reconcile bootcamp averages", "error", err)
		}
	})
	if err != nil {
		zap.S().Errorw("failed to register averages reconcile job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("scheduler started")
}

// Stop waits for running jobs and stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// PurgeExpiredResetTokens removes reset tokens that can no longer be used
func (s *Scheduler) PurgeExpiredResetTokens(ctx context.Context) (int64, error) {
	n, err := s.UDB.UpdateMany(ctx,
		bson.M{"resetPasswordExpire": bson.M{"$lt": s.now()}},
		bson.M{"$unset": bson.M{"resetPasswordToken": "", "resetPasswordExpire": ""}},
	)
	if err != nil {
		return 0, err
	}
	zap.S().Infow("purged expired reset tokens", "users", n)
	return n, nil
}

// ReconcileAverages recomputes averageCost and averageRating of every
// bootcamp. Failures on one bootcamp do not stop the others.
func (s *Scheduler) ReconcileAverages(ctx context.Context) error {
	bootcamps, err := s.BDB.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return err
	}

	var failed int
	for _, b := range bootcamps {
		if err := databases.RefreshAverageCost(ctx, s.CDB, s.BDB, b.ID); err != nil {
			failed++
			zap.S().Errorw("failed to refresh average cost", "bootcamp", b.ID.Hex(), "error", err)
		}
		if err := databases.RefreshAverageRating(ctx, s.RDB, s.BDB, b.ID); err != nil {
			failed++
			zap.S().Errorw("failed to refresh average rating", "bootcamp", b.ID.Hex(), "error", err)
		}
	}
	zap.S().Infow("reconciled bootcamp averages", "bootcamps", len(bootcamps), "failed", failed)
	return nil
}
