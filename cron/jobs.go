package cron

import (
	"context"

	"go.uber.org/zap"

	"storefront.GO/core/cache"
)

// Built-in job names.
const (
	JobFacetsWarm = "facetswarm"
	JobCachePurge = "cachepurge"
)

// CachePurgeSchedule is how often expired in-memory entries are dropped.
const CachePurgeSchedule = "@every 5m"

// FacetsWarmer refreshes the facet cache of the unfiltered catalog.
type FacetsWarmer interface {
	WarmFacets(ctx context.Context) error
}

// StorefrontJobs returns the built-in jobs. An empty warmSchedule disables
// facet warming; a nil mem disables the purge.
func StorefrontJobs(w FacetsWarmer, warmSchedule string, mem *cache.Cache, logger *zap.Logger) map[string]Job {
	if logger == nil {
		logger = zap.NewNop()
	}
	jobs := make(map[string]Job)
	if w != nil && warmSchedule != "" {
		jobs[JobFacetsWarm] = Job{Schedule: warmSchedule, Run: w.WarmFacets}
	}
	if mem != nil {
		jobs[JobCachePurge] = Job{Schedule: CachePurgeSchedule, Run: func(context.Context) error {
			if n := mem.PurgeExpired(); n > 0 {
				logger.Debug("expired cache entries purged", zap.Int("count", n))
			}
			return nil
		}}
	}
	return jobs
}
