package ecs

type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Manager   *EntityManager
}

func newUpdateFrame(dt float64, manager *EntityManager) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Manager:   manager,
	}
}
