package ecs

import (
	"sort"

	"github.com/kamstrup/intmap"
)

// componentIndex maps each component type to the set of entities holding it.
// versions records the entity version each entity was last indexed at; an
// entity that was never indexed is treated as indexed at version 0.
type componentIndex struct {
	buckets  *intmap.Map[ComponentType, *intmap.Set[EntityId]]
	versions *intmap.Map[EntityId, uint64]
}

func newComponentIndex(capacity int) *componentIndex {
	return &componentIndex{
		buckets:  intmap.New[ComponentType, *intmap.Set[EntityId]](32),
		versions: intmap.New[EntityId, uint64](capacity),
	}
}

func (idx *componentIndex) add(t ComponentType, id EntityId) {
	bucket, ok := idx.buckets.Get(t)
	if !ok {
		bucket = intmap.NewSet[EntityId](16)
		idx.buckets.Put(t, bucket)
	}
	bucket.Add(id)
}

func (idx *componentIndex) remove(t ComponentType, id EntityId) {
	bucket, ok := idx.buckets.Get(t)
	if !ok {
		return
	}
	bucket.Del(id)
	if bucket.Len() == 0 {
		idx.buckets.Del(t)
	}
}

// advance records version for id if it directly follows the indexed version.
// It returns false when some other mutation happened in between, in which case
// the index can no longer vouch for the entity.
func (idx *componentIndex) advance(id EntityId, version uint64) bool {
	prev, _ := idx.versions.Get(id)
	if prev+1 != version {
		return false
	}
	idx.versions.Put(id, version)
	return true
}

func (idx *componentIndex) indexedVersion(id EntityId) uint64 {
	v, _ := idx.versions.Get(id)
	return v
}

func (idx *componentIndex) forget(id EntityId) {
	idx.versions.Del(id)
}

func (idx *componentIndex) bucketLen(t ComponentType) int {
	bucket, ok := idx.buckets.Get(t)
	if !ok {
		return 0
	}
	return bucket.Len()
}

func (idx *componentIndex) empty() bool {
	return idx.buckets.Len() == 0
}

func (idx *componentIndex) members(t ComponentType) []EntityId {
	bucket, ok := idx.buckets.Get(t)
	if !ok {
		return nil
	}
	ids := make([]EntityId, 0, bucket.Len())
	for id := range bucket.All() {
		ids = append(ids, id)
	}
	return ids
}

// intersect returns the ids present in every bucket of types. It walks the
// smallest bucket and probes the others.
func (idx *componentIndex) intersect(types []ComponentType) []EntityId {
	sets := make([]*intmap.Set[EntityId], 0, len(types))
	for _, t := range types {
		bucket, ok := idx.buckets.Get(t)
		if !ok || bucket.Len() == 0 {
			return nil
		}
		sets = append(sets, bucket)
	}
	if len(sets) == 0 {
		return nil
	}

	sort.Slice(sets, func(i, j int) bool { return sets[i].Len() < sets[j].Len() })

	ids := make([]EntityId, 0, sets[0].Len())
	sets[0].ForEach(func(id EntityId) bool {
		for _, other := range sets[1:] {
			if !other.Has(id) {
				return true
			}
		}
		ids = append(ids, id)
		return true
	})
	return ids
}
