package reconcile

import (
	"context"

	"github.com/harrisonrobin/ntsync/pkg/todoist"
)

// Snapshot is Todoist's state as of the start of a run. It is never
// refreshed, so entities created during the run are not in it.
type Snapshot struct {
	Projects []todoist.Project
	Tasks    []todoist.Task
	taskIDs  map[string]struct{}
}

// TakeSnapshot lists every Todoist project and active task once.
func TakeSnapshot(ctx context.Context, svc TaskService) (*Snapshot, error) {
	projects, err := svc.GetProjects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := svc.GetTasks(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(projects, tasks), nil
}

func NewSnapshot(projects []todoist.Project, tasks []todoist.Task) *Snapshot {
	ids := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		ids[t.ID] = struct{}{}
	}
	return &Snapshot{Projects: projects, Tasks: tasks, taskIDs: ids}
}

// HasTask reports whether id was an active Todoist task when the snapshot was taken.
func (s *Snapshot) HasTask(id string) bool {
	_, ok := s.taskIDs[id]
	return ok
}
