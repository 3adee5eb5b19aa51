package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/scottmc500/ScottLMS/internal/domain"
	"github.com/scottmc500/ScottLMS/internal/logger"
	"github.com/scottmc500/ScottLMS/internal/metrics"
	"github.com/scottmc500/ScottLMS/internal/repository"
)

// ReconcileResult describes one course counter check.
type ReconcileResult struct {
	CourseID string `json:"course_id"`
	Previous int    `json:"previous_count"`
	Actual   int    `json:"enrollment_count"`
	Repaired bool   `json:"repaired"`
}

// Reconciler rewrites Course.enrollment_count from the number of enrollments
// that reference each course. A count computed while enrollments are being
// written may itself be stale by the time it is stored; the next run fixes it.
type Reconciler struct {
	store        repository.Store
	storeTimeout time.Duration

	mu   sync.Mutex
	cron *cron.Cron
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store repository.Store, storeTimeout time.Duration) *Reconciler {
	return &Reconciler{
		store:        store,
		storeTimeout: orDefaultTimeout(storeTimeout),
	}
}

// ReconcileCourse recounts the enrollments of one course and stores the true
// value when the cached counter drifted.
func (r *Reconciler) ReconcileCourse(ctx context.Context, courseID string) (*ReconcileResult, error) {
	course, err := storeCall(ctx, r.storeTimeout, "courses.get", func(ctx context.Context) (*domain.Course, error) {
		return r.store.Courses.GetByID(ctx, courseID)
	})
	if err != nil {
		return nil, fmt.Errorf("get course: %w", err)
	}
	if course == nil {
		return nil, domain.ErrCourseMissing
	}
	return r.reconcile(ctx, course.ID, course.EnrollmentCount)
}

func (r *Reconciler) reconcile(ctx context.Context, courseID string, cached int) (*ReconcileResult, error) {
	count, err := storeCall(ctx, r.storeTimeout, "enrollments.count", func(ctx context.Context) (int64, error) {
		return r.store.Enrollments.Count(ctx, domain.EnrollmentFilter{CourseID: courseID})
	})
	if err != nil {
		return nil, fmt.Errorf("count enrollments: %w", err)
	}

	result := &ReconcileResult{CourseID: courseID, Previous: cached, Actual: int(count)}
	if result.Actual == cached {
		return result, nil
	}

	found, err := storeCall(ctx, r.storeTimeout, "courses.set_enrollment_count", func(ctx context.Context) (bool, error) {
		return r.store.Courses.SetEnrollmentCount(ctx, courseID, result.Actual)
	})
	if err != nil {
		return nil, fmt.Errorf("set enrollment count: %w", err)
	}
	if !found {
		return nil, domain.ErrCourseMissing
	}

	result.Repaired = true
	metrics.ReconcileRepairsTotal.Inc()
	logger.FromContext(ctx).Warn("Repaired drifted enrollment count",
		slog.String("course_id", courseID),
		slog.Int("previous", cached),
		slog.Int("actual", result.Actual))
	return result, nil
}

// ReconcileAll checks every course and returns how many counters were repaired.
// A failing course does not stop the run; all failures are returned joined.
func (r *Reconciler) ReconcileAll(ctx context.Context) (int, error) {
	timer := metrics.NewTimer()

	type cachedCount struct {
		id    string
		count int
	}
	courses, err := storeCall(ctx, r.storeTimeout, "courses.stream_all", func(ctx context.Context) ([]cachedCount, error) {
		return collect(func(cb func(cachedCount) error) error {
			return r.store.Courses.StreamAll(ctx, func(c domain.Course) error {
				return cb(cachedCount{id: c.ID, count: c.EnrollmentCount})
			})
		})
	})
	if err != nil {
		metrics.ObserveReconcileRun("error", timer.Seconds())
		return 0, fmt.Errorf("list courses: %w", err)
	}

	repaired := 0
	var errs []error
	for _, c := range courses {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		result, err := r.reconcile(ctx, c.id, c.count)
		if err != nil {
			errs = append(errs, fmt.Errorf("course %s: %w", c.id, err))
			continue
		}
		if result.Repaired {
			repaired++
		}
	}

	err = errors.Join(errs...)
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.ObserveReconcileRun(result, timer.Seconds())

	logger.FromContext(ctx).Info("Enrollment counters reconciled",
		slog.Int("courses", len(courses)),
		slog.Int("repaired", repaired),
		slog.Int("failed", len(errs)))
	return repaired, err
}

// Start runs ReconcileAll on the given cron schedule, for example "@every 10m".
// A run still in progress when the next one is due is skipped.
func (r *Reconciler) Start(schedule string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil {
		return errors.New("reconciler already started")
	}

	cl := cronLogger{log: logger.GetLogger().With(slog.String("component", "reconciler"))}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	if _, err := c.AddFunc(schedule, r.runScheduled); err != nil {
		return fmt.Errorf("parse reconcile schedule %q: %w", schedule, err)
	}
	c.Start()
	r.cron = c

	logger.Info("Reconciler started", slog.String("schedule", schedule))
	return nil
}

func (r *Reconciler) runScheduled() {
	if _, err := r.ReconcileAll(context.Background()); err != nil {
		logger.Error("Scheduled reconciliation failed", slog.String("error", err.Error()))
	}
}

// Stop stops the schedule and waits for a running reconciliation to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	c := r.cron
	r.cron = nil
	r.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
