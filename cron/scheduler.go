package cron

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// zapLogger adapts zap to the cron.Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw(msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw(msg, append(keysAndValues, "error", err)...)
}

// merge returns builtin jobs overlaid with registered ones. Names are lowercased.
func merge(builtin map[string]Job) map[string]Job {
	out := make(map[string]Job, len(builtin))
	for name, j := range builtin {
		out[strings.ToLower(name)] = j
	}
	for name, j := range Jobs() {
		out[strings.ToLower(name)] = j
	}
	return out
}

func wrap(ctx context.Context, name string, run JobFunc, logger *zap.Logger) func() {
	return func() {
		start := time.Now()
		if err := run(ctx); err != nil {
			logger.Error("cron job failed", zap.String("job", name), zap.Error(err))
			return
		}
		logger.Info("cron job done", zap.String("job", name), zap.Duration("took", time.Since(start)))
	}
}

// StartCron schedules builtin and registered jobs and starts the scheduler.
// Overlapping runs of the same job are skipped; panics are recovered.
func StartCron(ctx context.Context, builtin map[string]Job, logger *zap.Logger) (*cron.Cron, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("cron")
	l := zapLogger{s: logger.Sugar()}
	c := cron.New(cron.WithLogger(l), cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l)))
	for name, j := range merge(builtin) {
		if j.Schedule == "" || j.Run == nil {
			logger.Info("cron job disabled", zap.String("job", name))
			continue
		}
		if _, err := c.AddFunc(j.Schedule, wrap(ctx, name, j.Run, logger)); err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		logger.Info("cron job scheduled", zap.String("job", name), zap.String("schedule", j.Schedule))
	}
	c.Start()
	return c, nil
}

// RunJob runs a single builtin or registered job once.
func RunJob(ctx context.Context, name string, builtin map[string]Job) error {
	j, ok := merge(builtin)[strings.ToLower(name)]
	if !ok || j.Run == nil {
		return fmt.Errorf("unknown job: %s", name)
	}
	return j.Run(ctx)
}
