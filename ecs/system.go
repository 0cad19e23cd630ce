package ecs

// System represents a behavior that operates on entities with specific components.
// The manager resolves the entities holding every type in RequiredComponents and
// passes them to Update. An empty requirement means every entity.
//
// Systems run by a Scheduler may declare a *UpdateFrame field, which is set to
// the current frame before each Update.
type System interface {
	RequiredComponents() []ComponentType
	Update(entities []*Entity)
}

// Unfiltered can be embedded in systems that want every entity.
type Unfiltered struct{}

func (Unfiltered) RequiredComponents() []ComponentType {
	return nil
}
