package ecs

import "sort"

// ManagerStats is a point-in-time summary of an EntityManager.
type ManagerStats struct {
	EntityCount int
	Buckets     []BucketStats
	Rebuilds    uint64
	Validations uint64
	Dirty       bool
}

// BucketStats describes one index bucket.
type BucketStats struct {
	Type        ComponentType
	Name        string
	EntityCount int
}

// CollectStats returns the entity count and the current index layout. It reads
// the index as it is and does not validate or rebuild it.
func (m *EntityManager) CollectStats() ManagerStats {
	stats := ManagerStats{
		EntityCount: m.GetEntityCount(),
		Rebuilds:    m.rebuilds.Load(),
		Validations: m.validations.Load(),
		Dirty:       m.dirty.Load(),
	}

	m.indexMu.RLock()
	stats.Buckets = make([]BucketStats, 0, m.index.buckets.Len())
	for t, bucket := range m.index.buckets.All() {
		stats.Buckets = append(stats.Buckets, BucketStats{
			Type:        t,
			Name:        t.String(),
			EntityCount: bucket.Len(),
		})
	}
	m.indexMu.RUnlock()

	sortBuckets(stats.Buckets)
	return stats
}

func sortBuckets(buckets []BucketStats) {
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Type < buckets[j].Type })
}
