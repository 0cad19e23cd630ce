package ecs

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Logger writes structured dumps of an EntityManager's contents.
type Logger struct {
	*zerolog.Logger
}

// NewLogger wraps a zerolog logger.
func NewLogger(logger zerolog.Logger) Logger {
	return Logger{&logger}
}

func (*Logger) loadComponentTypeIntoArrayLogger(t ComponentType, arrayLogger *zerolog.Array) *zerolog.Array {
	dictLogger := zerolog.Dict()
	dictLogger = dictLogger.Int("component_id", int(t))
	dictLogger = dictLogger.Str("component_name", t.String())
	return arrayLogger.Dict(dictLogger)
}

func (l *Logger) loadComponentsToEvent(zeroLoggerEvent *zerolog.Event) *zerolog.Event {
	types := RegisteredComponentTypes()
	zeroLoggerEvent.Int("total_components", len(types))
	arrayLogger := zerolog.Arr()
	for _, t := range types {
		arrayLogger = l.loadComponentTypeIntoArrayLogger(t, arrayLogger)
	}
	return zeroLoggerEvent.Array("components", arrayLogger)
}

func (*Logger) loadIndexIntoEvent(zeroLoggerEvent *zerolog.Event, manager *EntityManager) *zerolog.Event {
	stats := manager.CollectStats()
	arrayLogger := zerolog.Arr()
	for _, bucket := range stats.Buckets {
		arrayLogger = arrayLogger.Dict(zerolog.Dict().
			Int("component_id", int(bucket.Type)).
			Str("component_name", bucket.Name).
			Int("entities", bucket.EntityCount))
	}
	return zeroLoggerEvent.
		Int("total_entities", stats.EntityCount).
		Uint64("rebuilds", stats.Rebuilds).
		Uint64("validations", stats.Validations).
		Bool("dirty", stats.Dirty).
		Array("buckets", arrayLogger)
}

func (l *Logger) loadEntityIntoEvent(zeroLoggerEvent *zerolog.Event, manager *EntityManager, id EntityId) (*zerolog.Event, error) {
	entity, ok := manager.GetEntity(id)
	if !ok {
		return nil, eris.Errorf("entity %d does not exist", id)
	}
	arrayLogger := zerolog.Arr()
	for _, t := range entity.ComponentTypes() {
		arrayLogger = l.loadComponentTypeIntoArrayLogger(t, arrayLogger)
	}
	zeroLoggerEvent.Array("components", arrayLogger)
	zeroLoggerEvent.Uint64("version", entity.Version())
	return zeroLoggerEvent.Uint64("entity_id", uint64(id)), nil
}

// LogComponents logs every registered component type.
func (l *Logger) LogComponents(level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent)
	zeroLoggerEvent.Send()
}

// LogIndex logs the manager's index buckets and maintenance counters.
func (l *Logger) LogIndex(manager *EntityManager, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadIndexIntoEvent(zeroLoggerEvent, manager)
	zeroLoggerEvent.Send()
}

// LogEntity logs the components attached to an entity.
func (l *Logger) LogEntity(manager *EntityManager, level zerolog.Level, id EntityId) error {
	zeroLoggerEvent, err := l.loadEntityIntoEvent(l.WithLevel(level), manager, id)
	if err != nil {
		return eris.Wrap(err, "log entity")
	}
	zeroLoggerEvent.Send()
	return nil
}

// LogManager logs everything about the manager (component types and index).
func (l *Logger) LogManager(manager *EntityManager, level zerolog.Level) {
	zeroLoggerEvent := l.WithLevel(level)
	zeroLoggerEvent = l.loadComponentsToEvent(zeroLoggerEvent)
	zeroLoggerEvent = l.loadIndexIntoEvent(zeroLoggerEvent, manager)
	zeroLoggerEvent.Send()
}

// CreateSystemLogger creates a Sub Logger with the entry {"system" : systemName}
func (l *Logger) CreateSystemLogger(systemName string) Logger {
	zeroLogger := l.Logger.With().
		Str("system", systemName).Logger()
	return Logger{
		&zeroLogger,
	}
}
