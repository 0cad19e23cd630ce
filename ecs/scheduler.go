package ecs

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	LastEntities   int
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	lastEntities   int
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registeredSystem struct {
	system System
	frames []reflect.Value
	stats  *systemStatsInternal
}

var updateFrameType = reflect.TypeOf((*UpdateFrame)(nil))

// Scheduler runs systems in registration order against a single EntityManager.
type Scheduler struct {
	manager *EntityManager
	systems []*registeredSystem
}

// NewScheduler creates a new scheduler for the given manager.
func NewScheduler(manager *EntityManager) *Scheduler {
	return &Scheduler{
		manager: manager,
		systems: make([]*registeredSystem, 0),
	}
}

// Register adds a system to the scheduler. Exported *UpdateFrame fields of the
// system struct are set to the current frame before every Update.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &registeredSystem{
		system: system,
		frames: frameFields(system),
		stats: &systemStatsInternal{
			name:        systemType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

func frameFields(system System) []reflect.Value {
	systemValue := reflect.ValueOf(system)
	if systemValue.Kind() != reflect.Ptr {
		return nil
	}
	systemValue = systemValue.Elem()
	if systemValue.Kind() != reflect.Struct {
		return nil
	}

	var fields []reflect.Value
	for i := 0; i < systemValue.NumField(); i++ {
		field := systemValue.Field(i)
		if field.CanSet() && field.Type() == updateFrameType {
			fields = append(fields, field)
		}
	}
	return fields
}

// Once executes all registered systems once with the given delta time, then
// applies the commands they queued.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.manager)
	frameValue := reflect.ValueOf(frame)

	for _, rs := range s.systems {
		for _, field := range rs.frames {
			field.Set(frameValue)
		}

		start := time.Now()
		entities := s.manager.GetEntitiesForSystem(rs.system)
		rs.system.Update(entities)
		duration := time.Since(start)

		stats := rs.stats
		stats.executionCount++
		stats.lastEntities = len(entities)
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	frame.Commands.Flush(s.manager)
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, rs := range s.systems {
		internal := rs.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			LastEntities:   internal.lastEntities,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
