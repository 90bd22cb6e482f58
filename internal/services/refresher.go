package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// InjuryUpdater is the slice of the injury provider the refresher needs.
type InjuryUpdater interface {
	UpdateInjuries(ctx context.Context) error
}

// InjuryRefresher re-pulls the injury feed on a schedule so TeamInjuries
// reads stay warm between requests.
type InjuryRefresher struct {
	updater  InjuryUpdater
	logger   *logrus.Logger
	schedule string
	cron     *cron.Cron

	mu        sync.Mutex
	isRunning bool
	lastRun   time.Time
	lastError error
}

// NewInjuryRefresher builds a refresher for the given cron schedule.
func NewInjuryRefresher(updater InjuryUpdater, schedule string, logger *logrus.Logger) *InjuryRefresher {
	return &InjuryRefresher{
		updater:  updater,
		logger:   logger,
		schedule: schedule,
	}
}

// Start registers the refresh job and begins the scheduler. It also
// kicks off one immediate refresh so the store is populated at boot.
func (r *InjuryRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isRunning {
		return fmt.Errorf("injury refresher already running")
	}

	cronLogger := cron.VerbosePrintfLogger(r.logger)
	c := cron.New(cron.WithLogger(cronLogger))
	if _, err := c.AddFunc(r.schedule, r.runRefresh); err != nil {
		return fmt.Errorf("failed to schedule injury refresh %q: %w", r.schedule, err)
	}

	r.cron = c
	r.cron.Start()
	r.isRunning = true
	r.logger.WithFields(logrus.Fields{
		"component": "injury_refresher",
		"schedule":  r.schedule,
	}).Info("Injury refresher started")

	go r.runRefresh()
	return nil
}

// Stop halts the scheduler and waits for an in-flight refresh to finish.
func (r *InjuryRefresher) Stop() {
	r.mu.Lock()
	if !r.isRunning {
		r.mu.Unlock()
		return
	}
	r.isRunning = false
	c := r.cron
	r.mu.Unlock()

	// Drain outside the lock: an in-flight runRefresh needs r.mu to
	// record its outcome before the stop context fires.
	<-c.Stop().Done()
	r.logger.WithField("component", "injury_refresher").Info("Injury refresher stopped")
}

func (r *InjuryRefresher) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	start := time.Now()
	err := r.updater.UpdateInjuries(ctx)

	r.mu.Lock()
	r.lastRun = start
	r.lastError = err
	r.mu.Unlock()

	log := r.logger.WithFields(logrus.Fields{
		"component": "injury_refresher",
		"duration":  time.Since(start).String(),
	})
	if err != nil {
		log.WithError(err).Error("Injury refresh failed")
		return
	}
	log.Info("Injury refresh completed")
}

// Status reports scheduler health for the health endpoint.
func (r *InjuryRefresher) Status() map[string]interface{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	status := map[string]interface{}{
		"is_running": r.isRunning,
		"schedule":   r.schedule,
	}
	if !r.lastRun.IsZero() {
		status["last_run"] = r.lastRun
	}
	if r.lastError != nil {
		status["last_error"] = r.lastError.Error()
	}
	return status
}
