package cron

import (
	"context"
	"strings"
	"sync"

	"github.com/robfig/cron/v3"

	"storefront.GO/core/registry"
)

// JobFunc is one scheduled run. ctx is cancelled when the scheduler stops.
type JobFunc func(ctx context.Context) error

// Job pairs a cron expression with its run function. An empty Schedule keeps
// the job runnable through RunJob without scheduling it.
type Job struct {
	Schedule string
	Run      JobFunc
}

var mu sync.Mutex

// Register adds a job next to the built-in facetswarm and cachepurge jobs.
// A registered job with a built-in name replaces it. Names are
// case-insensitive. A schedule robfig/cron cannot parse panics, as does
// registering after Jobs has been called.
func Register(name string, schedule string, run JobFunc) {
	name = strings.ToLower(name)
	if schedule != "" {
		if _, err := cron.ParseStandard(schedule); err != nil {
			panic("cron/registry: job " + name + ": " + err.Error())
		}
	}
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron/registry: locked (register only during init before StartCron)")
	}
	jobs := registered()
	if _, ok := jobs[name]; ok {
		panic("cron/registry: duplicate job " + name)
	}
	jobs[name] = Job{Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

// Unregister removes a job (for tests).
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
	jobs := registered()
	delete(jobs, strings.ToLower(name))
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, jobs)
}

func registered() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return make(map[string]Job)
}

// Jobs returns a copy of the registered jobs and locks the registry.
func Jobs() map[string]Job {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Job)
	for k, v := range registered() {
		out[k] = v
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	return out
}
